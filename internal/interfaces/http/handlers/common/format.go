package common

import "time"

const displayTimeLayout = "Jan 2, 2006 15:04"

// FormatTime renders a timestamp for the templates, always in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(displayTimeLayout)
}
