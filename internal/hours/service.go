package hours

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var dayNames = []string{
	"sunday", "monday", "tuesday", "wednesday",
	"thursday", "friday", "saturday",
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Business hour check
// --------------------------------------------------
func (s *Service) IsInBusinessHour(ctx context.Context, restaurantID string, now time.Time) (*HourCheck, error) {
	sh, err := s.repo.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return checkWindow(sh.BusinessHours, sh.Timezone, now, "no business hours configured for this day", "restaurant is closed today")
}

// --------------------------------------------------
// Lunch hour check
// --------------------------------------------------
func (s *Service) IsInLunchHour(ctx context.Context, restaurantID string, now time.Time) (*HourCheck, error) {
	sh, err := s.repo.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return checkWindow(sh.LunchHours, sh.Timezone, now, "no lunch hours configured for this day", "no lunch service today")
}

// --------------------------------------------------
// Configuration
// --------------------------------------------------
func (s *Service) GetStoreHours(ctx context.Context, restaurantID string) (StoreHours, error) {
	return s.repo.Get(ctx, restaurantID)
}

func (s *Service) UpdateStoreHours(ctx context.Context, restaurantID string, sh StoreHours) error {
	if len(sh.BusinessHours) == 0 {
		return errors.New("business_hours must not be empty")
	}
	for day, dh := range sh.BusinessHours {
		if err := validateDay(day, dh); err != nil {
			return err
		}
	}
	for day, dh := range sh.LunchHours {
		if err := validateDay(day, dh); err != nil {
			return err
		}
	}
	if _, err := time.LoadLocation(sh.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q", sh.Timezone)
	}
	return s.repo.Put(ctx, restaurantID, sh)
}

func validateDay(day string, dh DayHours) error {
	known := false
	for _, d := range dayNames {
		if d == day {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown day %q", day)
	}
	if dh.IsClosed {
		return nil
	}
	if _, err := parseClock(dh.OpenTime); err != nil {
		return fmt.Errorf("day %q: invalid open_time %q", day, dh.OpenTime)
	}
	if _, err := parseClock(dh.CloseTime); err != nil {
		return fmt.Errorf("day %q: invalid close_time %q", day, dh.CloseTime)
	}
	return nil
}

// --------------------------------------------------
// Window evaluation
// --------------------------------------------------
func checkWindow(days map[string]DayHours, tz string, now time.Time, noConfigMsg, closedMsg string) (*HourCheck, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		// Misconfigured timezone degrades to UTC rather than failing
		// the request.
		loc = time.UTC
	}
	local := now.In(loc)
	day := dayNames[local.Weekday()]

	check := &HourCheck{
		CurrentTime: local.Format("15:04"),
		Day:         strings.ToUpper(day[:1]) + day[1:],
	}

	dh, ok := days[day]
	if !ok {
		check.Message = noConfigMsg
		return check, nil
	}
	if dh.IsClosed {
		check.Message = closedMsg
		return check, nil
	}

	check.Window = fmt.Sprintf("%s - %s", dh.OpenTime, dh.CloseTime)
	check.Active = timeInRange(local, dh.OpenTime, dh.CloseTime)
	return check, nil
}

// timeInRange reports whether the local time of day falls inside
// [start, end]. Ranges where start > end wrap past midnight
// (e.g. 22:00 to 02:00).
func timeInRange(local time.Time, start, end string) bool {
	startMin, err1 := parseClock(start)
	endMin, err2 := parseClock(end)
	if err1 != nil || err2 != nil {
		return false
	}

	nowMin := local.Hour()*60 + local.Minute()

	if startMin <= endMin {
		return nowMin >= startMin && nowMin <= endMin
	}
	return nowMin >= startMin || nowMin <= endMin
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
