package hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestIsInBusinessHour(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	loc := eastern(t)
	ctx := context.Background()

	t.Run("weekday noon is open", func(t *testing.T) {
		check, err := svc.IsInBusinessHour(ctx, "1", time.Date(2024, 1, 10, 12, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, check.Active)
		assert.Equal(t, "Wednesday", check.Day)
		assert.Equal(t, "09:00 - 21:00", check.Window)
	})

	t.Run("weekday late night is closed", func(t *testing.T) {
		check, err := svc.IsInBusinessHour(ctx, "1", time.Date(2024, 1, 10, 23, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.False(t, check.Active)
	})

	t.Run("saturday uses weekend hours", func(t *testing.T) {
		check, err := svc.IsInBusinessHour(ctx, "1", time.Date(2024, 1, 13, 21, 30, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, check.Active)
		assert.Equal(t, "10:00 - 22:00", check.Window)
	})
}

func TestIsInLunchHour(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	loc := eastern(t)
	ctx := context.Background()

	t.Run("weekday lunch window", func(t *testing.T) {
		check, err := svc.IsInLunchHour(ctx, "1", time.Date(2024, 1, 10, 12, 30, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, check.Active)
		assert.Equal(t, "11:00 - 15:00", check.Window)
	})

	t.Run("weekday after lunch", func(t *testing.T) {
		check, err := svc.IsInLunchHour(ctx, "1", time.Date(2024, 1, 10, 16, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.False(t, check.Active)
	})

	t.Run("sunday has no lunch service", func(t *testing.T) {
		check, err := svc.IsInLunchHour(ctx, "1", time.Date(2024, 1, 14, 12, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.False(t, check.Active)
		assert.Equal(t, "no lunch service today", check.Message)
	})
}

func TestOvernightWindowWrapsMidnight(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo)
	loc := eastern(t)
	ctx := context.Background()

	sh := DefaultStoreHours()
	sh.BusinessHours["wednesday"] = DayHours{OpenTime: "22:00", CloseTime: "02:00"}
	require.NoError(t, svc.UpdateStoreHours(ctx, "late", sh))

	check, err := svc.IsInBusinessHour(ctx, "late", time.Date(2024, 1, 10, 23, 30, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, check.Active, "23:30 falls inside the 22:00-02:00 window")

	check, err = svc.IsInBusinessHour(ctx, "late", time.Date(2024, 1, 10, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.False(t, check.Active, "noon falls outside the 22:00-02:00 window")
}

func TestUpdateStoreHoursValidation(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	t.Run("empty business hours rejected", func(t *testing.T) {
		err := svc.UpdateStoreHours(ctx, "1", StoreHours{Timezone: "UTC"})
		assert.Error(t, err)
	})

	t.Run("bad clock format rejected", func(t *testing.T) {
		err := svc.UpdateStoreHours(ctx, "1", StoreHours{
			BusinessHours: map[string]DayHours{
				"monday": {OpenTime: "9am", CloseTime: "21:00"},
			},
			Timezone: "UTC",
		})
		assert.Error(t, err)
	})

	t.Run("unknown day rejected", func(t *testing.T) {
		err := svc.UpdateStoreHours(ctx, "1", StoreHours{
			BusinessHours: map[string]DayHours{
				"funday": {OpenTime: "09:00", CloseTime: "21:00"},
			},
			Timezone: "UTC",
		})
		assert.Error(t, err)
	})

	t.Run("unknown timezone rejected", func(t *testing.T) {
		err := svc.UpdateStoreHours(ctx, "1", StoreHours{
			BusinessHours: map[string]DayHours{
				"monday": {OpenTime: "09:00", CloseTime: "21:00"},
			},
			Timezone: "Mars/Olympus",
		})
		assert.Error(t, err)
	})

	t.Run("valid config round-trips", func(t *testing.T) {
		sh := DefaultStoreHours()
		sh.BusinessHours["monday"] = DayHours{OpenTime: "08:00", CloseTime: "20:00"}
		require.NoError(t, svc.UpdateStoreHours(ctx, "2", sh))

		got, err := svc.GetStoreHours(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "08:00", got.BusinessHours["monday"].OpenTime)
	})
}

func TestRepositoryDefaultsForUnknownRestaurant(t *testing.T) {
	repo := NewInMemoryRepository()

	sh, err := repo.Get(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, DefaultStoreHours(), sh)
}
