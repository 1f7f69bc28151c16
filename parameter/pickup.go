package parameter

import "time"

// Pickup field limits
const (
	// MaxFoods is the concurrent food cap
	MaxFoods = 5

	// PickupLifetime is the fixed lifetime of every food and item
	PickupLifetime = 3 * time.Second

	// FoodMinValue and FoodMaxValue bound random food value
	FoodMinValue = 1
	FoodMaxValue = 6

	// MinFieldObjects is the total food+item count the spawn policy tops up to
	MinFieldObjects = 3
)
