package domain

import (
	"strconv"
	"time"
)

// ISO 8601 weekday numbers, as stored in scheduler_configs.active_days.
const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DefaultActiveDays posts the daily menu on school days only.
var DefaultActiveDays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// DefaultNotificationTime is when the daily menu is posted, in civil time.
const DefaultNotificationTime = "07:00"

// DefaultGridConcurrency bounds the slot reads of one grid refresh.
const DefaultGridConcurrency = 4

// ParseISOWeekday reads "1" to "7".
func ParseISOWeekday(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < Monday || n > Sunday {
		return 0, false
	}
	return n, true
}

// ISOWeekdayName returns the English name of an ISO weekday number.
func ISOWeekdayName(day int) string {
	if day < Monday || day > Sunday {
		return ""
	}
	return time.Weekday(day % 7).String()
}
