package format

import (
	"fmt"
	"time"
)

// Expired is shown instead of a countdown once the deadline has passed.
const Expired = "Expired"

// TimeLeft renders the remaining time until expiry as "4m 12s", or "12s"
// under a minute, or Expired.
func TimeLeft(expiry, now time.Time) string {
	diff := expiry.Sub(now)
	if diff <= 0 {
		return Expired
	}

	minutes := int64(diff / time.Minute)
	seconds := int64((diff % time.Minute) / time.Second)
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatDateTime renders an upload timestamp like "Mar 4, 9:07 PM" in the
// local zone.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("Jan 2, 3:04 PM")
}

// FormatExpiry renders the link expiry timestamp with date and seconds.
func FormatExpiry(t time.Time) string {
	return t.Local().Format("1/2/2006, 3:04:05 PM")
}
