package services

import "time"

// TimestampLayout is the ISO-8601 form used for createdAt and timestamp fields
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func timestamp(now time.Time) string {
	return now.UTC().Format(TimestampLayout)
}
