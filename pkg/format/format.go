// Package format renders durations and windows as the short human-readable
// strings the widget displays. All functions floor to whole seconds.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/chime/pkg/schedule"
)

// Countdown formats the time remaining until the next scheduled play as
// "3m 12s", or "45s" when under a minute. Negative durations render as "0s".
func Countdown(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// Ago formats the time since the last scheduled play as "12s ago" or
// "3m 12s ago".
func Ago(d time.Duration) string {
	return Countdown(d) + " ago"
}

// WindowRange formats a delay window as "1–5 min". Bounds that are not
// whole minutes keep one decimal ("0.5–5 min").
func WindowRange(w schedule.Window) string {
	return minutes(w.Min) + "–" + minutes(w.Max) + " min"
}

// minutes renders a duration in minutes, dropping the fraction when whole.
func minutes(d time.Duration) string {
	secs := int(d / time.Second)
	if secs%60 == 0 {
		return strconv.Itoa(secs / 60)
	}
	s := strconv.FormatFloat(float64(secs)/60, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
