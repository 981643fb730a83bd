package recommend

import "time"

const (
	lunchOpenHour  = 11
	lunchCloseHour = 15
)

// IsLunchWindowActive reports whether lunch specials may be recommended
// at the given instant. The window is Monday through Friday, 11:00
// inclusive to 15:00 exclusive, in the restaurant's local timezone.
// Callers evaluate this once per request at arrival so the answer stays
// consistent even if the boundary is crossed mid-request.
func IsLunchWindowActive(now time.Time, loc *time.Location) bool {
	local := now.In(loc)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	hour := local.Hour()
	return hour >= lunchOpenHour && hour < lunchCloseHour
}
