package assessment

import "math"

// Progress returns the completion percentage, rounded to the nearest
// whole number. A zero question total reads as zero progress.
func Progress(answered, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(answered) / float64(total) * 100))
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}
