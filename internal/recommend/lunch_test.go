package recommend

import (
	"testing"
	"time"
)

func mustEastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}
	return loc
}

func TestIsLunchWindowActive(t *testing.T) {
	loc := mustEastern(t)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"wednesday noon", time.Date(2024, 1, 10, 12, 0, 0, 0, loc), true},
		{"opening boundary included", time.Date(2024, 1, 10, 11, 0, 0, 0, loc), true},
		{"just before opening", time.Date(2024, 1, 10, 10, 59, 59, 0, loc), false},
		{"last second of window", time.Date(2024, 1, 10, 14, 59, 59, 0, loc), true},
		{"closing boundary excluded", time.Date(2024, 1, 10, 15, 0, 0, 0, loc), false},
		{"monday start of week", time.Date(2024, 1, 8, 13, 30, 0, 0, loc), true},
		{"friday end of week", time.Date(2024, 1, 12, 11, 15, 0, 0, loc), true},
		{"saturday noon", time.Date(2024, 1, 13, 12, 0, 0, 0, loc), false},
		{"sunday noon", time.Date(2024, 1, 14, 12, 0, 0, 0, loc), false},
		{"weekday evening", time.Date(2024, 1, 10, 19, 0, 0, 0, loc), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLunchWindowActive(tc.now, loc); got != tc.want {
				t.Errorf("IsLunchWindowActive(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestIsLunchWindowActiveConvertsToLocalTime(t *testing.T) {
	loc := mustEastern(t)

	// 17:00 UTC on a January Wednesday is 12:00 EST.
	utcNoon := time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC)
	if !IsLunchWindowActive(utcNoon, loc) {
		t.Error("instant inside the window expressed in UTC should be active")
	}

	// 17:00 UTC in July is 13:00 EDT, still inside the window.
	summer := time.Date(2024, 7, 10, 17, 0, 0, 0, time.UTC)
	if !IsLunchWindowActive(summer, loc) {
		t.Error("DST conversion should keep the instant inside the window")
	}
}
