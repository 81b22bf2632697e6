package format

import "time"

// timestampLayout renders a full date-time with seconds, e.g.
// "October 14, 1983 at 1:30:23 PM UTC".
const timestampLayout = "January 2, 2006 at 3:04:05 PM MST"

// StringFromTimestamp formats a unix millisecond timestamp in the local time zone.
func StringFromTimestamp(ms int64) string {
	return StringFromTimestampIn(ms, time.Local)
}

// StringFromTimestampIn formats a unix millisecond timestamp in loc.
func StringFromTimestampIn(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format(timestampLayout)
}
