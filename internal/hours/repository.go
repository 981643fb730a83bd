package hours

import "context"

// Repository stores per-restaurant schedule configuration.
type Repository interface {
	// Get returns the configuration for a restaurant, or defaults if
	// none has been stored yet.
	Get(ctx context.Context, restaurantID string) (StoreHours, error)

	// Put replaces the configuration for a restaurant.
	Put(ctx context.Context, restaurantID string, sh StoreHours) error
}
