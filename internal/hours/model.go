package hours

// DayHours is the open window for one day of the week.
type DayHours struct {
	OpenTime  string `json:"open_time"`  // "HH:MM", 24-hour
	CloseTime string `json:"close_time"` // "HH:MM", 24-hour
	IsClosed  bool   `json:"is_closed"`
}

// StoreHours is one restaurant's full schedule configuration.
type StoreHours struct {
	BusinessHours map[string]DayHours `json:"business_hours"`
	LunchHours    map[string]DayHours `json:"lunch_hours,omitempty"`
	Timezone      string              `json:"timezone"`
}

// DefaultStoreHours is used for any restaurant without a stored
// configuration: 9-9 weekdays, lunch 11-3 except Sunday.
func DefaultStoreHours() StoreHours {
	weekday := DayHours{OpenTime: "09:00", CloseTime: "21:00"}
	lunch := DayHours{OpenTime: "11:00", CloseTime: "15:00"}

	return StoreHours{
		BusinessHours: map[string]DayHours{
			"monday":    weekday,
			"tuesday":   weekday,
			"wednesday": weekday,
			"thursday":  weekday,
			"friday":    weekday,
			"saturday":  {OpenTime: "10:00", CloseTime: "22:00"},
			"sunday":    {OpenTime: "10:00", CloseTime: "20:00"},
		},
		LunchHours: map[string]DayHours{
			"monday":    lunch,
			"tuesday":   lunch,
			"wednesday": lunch,
			"thursday":  lunch,
			"friday":    lunch,
			"saturday":  lunch,
			"sunday":    {OpenTime: "00:00", CloseTime: "00:00", IsClosed: true},
		},
		Timezone: "America/New_York",
	}
}

// HourCheck is the answer to an is-in-business-hour or is-in-lunch-hour
// query, with enough context for a caller to explain the result.
type HourCheck struct {
	Active      bool   `json:"active"`
	CurrentTime string `json:"current_time"`
	Window      string `json:"window,omitempty"`
	Day         string `json:"day"`
	Message     string `json:"message,omitempty"`
}
