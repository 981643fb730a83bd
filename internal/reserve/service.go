package reserve

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const openTableBase = "https://www.opentable.com/restref/client/"

type Service struct {
	restaurantRef string
}

func NewService(restaurantRef string) *Service {
	return &Service{restaurantRef: restaurantRef}
}

// --------------------------------------------------
// Reservation link
// --------------------------------------------------
// BuildLink produces an OpenTable deep link for the requested party
// size. reserveTime may be empty, in which case the link targets the
// next 30-minute slot after now. No booking is performed here.
func (s *Service) BuildLink(partySize int, reserveTime string, now time.Time) (string, error) {
	if partySize <= 0 {
		return "", errors.New("party_size must be positive")
	}

	slot := now
	if reserveTime != "" {
		parsed, err := time.Parse(time.RFC3339, reserveTime)
		if err != nil {
			return "", fmt.Errorf("invalid reserve_time, expected RFC 3339: %w", err)
		}
		slot = parsed
	}
	slot = roundToNext30Minutes(slot)

	q := url.Values{}
	q.Set("rid", s.restaurantRef)
	q.Set("restref", s.restaurantRef)
	q.Set("lang", "en-US")
	q.Set("partysize", fmt.Sprintf("%d", partySize))
	q.Set("datetime", slot.Format("2006-01-02T15:04"))
	q.Set("ot_source", "Restaurant website")

	return openTableBase + "?" + q.Encode(), nil
}

// roundToNext30Minutes snaps a time forward to the next half-hour
// boundary. A time already on a boundary moves to the following slot.
func roundToNext30Minutes(t time.Time) time.Time {
	candidate := t.Truncate(time.Minute)
	candidate = candidate.Add(-time.Duration(candidate.Minute()%30) * time.Minute)
	if !candidate.After(t) {
		candidate = candidate.Add(30 * time.Minute)
	}
	return candidate
}
