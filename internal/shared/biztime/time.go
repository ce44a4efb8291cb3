// Package biztime centralizes time handling. All persisted timestamps are UTC.
package biztime

import "time"

func NowUTC() time.Time {
	return time.Now().UTC()
}

func UnixMilliToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func TimeToUnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}
