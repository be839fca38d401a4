package timefmt

import (
	"fmt"
	"time"
)

// Age returns a compact description of how long before now t occurred,
// suitable for a narrow table column. Zero times and future times collapse
// to fixed strings rather than guessing.
func Age(t, now time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	if t.IsZero() {
		return "unknown"
	}
	if t.After(now) {
		return "just now"
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 14*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
	if t.Year() == now.Year() {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2 2006")
}

// Stamp renders the absolute timestamp shown beside the age.
func Stamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
