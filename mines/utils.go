package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
