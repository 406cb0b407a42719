// Package timeutil handles the millisecond timestamps notes are stamped with.
package timeutil

import (
	"fmt"
	"time"
)

// NowMillis returns the current wall clock as milliseconds since the epoch,
// the resolution notes persist.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FromMillis converts a stored timestamp back to a time.Time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// Relative renders a stored timestamp as a short "how long ago" label for
// list output.
func Relative(ms int64, now time.Time) string {
	d := now.Sub(FromMillis(ms))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return FromMillis(ms).Format("2006-01-02")
	}
}
