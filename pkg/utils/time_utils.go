package utils

import "time"

// Tours are sold from Taiwan; display times use Taipei (CST, +08:00).
var twLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Taipei"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

// Use seconds for DB storage.
func NowUnixSeconds() int64 { return time.Now().Unix() }

func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// FormatUnixSeconds renders a stored timestamp in Taipei time. Zero or
// negative values render as "".
func FormatUnixSeconds(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).In(twLoc).Format(time.RFC3339)
}
