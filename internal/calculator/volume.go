package calculator

import "github.com/Yang0427/stocks/internal/model"

const (
	volumeAvgPeriod   = 20
	volumeStrongRatio = 1.2
)

// VolumeStrong reports whether the latest bar's volume exceeds 1.2x the
// trailing 20-bar average volume (latest bar included in the average).
func VolumeStrong(bars []model.PriceBar) bool {
	if len(bars) < volumeAvgPeriod {
		return false
	}
	sum := 0.0
	for i := len(bars) - volumeAvgPeriod; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	avg := sum / float64(volumeAvgPeriod)
	return bars[len(bars)-1].Volume > avg*volumeStrongRatio
}
