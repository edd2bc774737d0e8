package model

// IndicatorSnapshot holds the derived technical state of a ticker as of the
// latest daily bar.
type IndicatorSnapshot struct {
	Price        float64
	RSI14        float64
	SMA50        float64
	SMA200       float64
	VolumeStrong bool
}
