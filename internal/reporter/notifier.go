package reporter

import (
	"context"
	"fmt"
	"io"
)

// Notifier delivers a rendered report to its destination.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// ConsoleNotifier writes the report to the given writer (normally stdout).
type ConsoleNotifier struct {
	Out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{Out: out}
}

func (c *ConsoleNotifier) Notify(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.Out, text)
	return err
}
