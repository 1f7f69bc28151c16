package parameter

import "time"

// Strategy switching
const (
	// AIStrategySwitchInterval is the game time between strategy resamples
	AIStrategySwitchInterval = 5 * time.Second

	// AISurvivalMinLength is the body length a survival strategy requires (exclusive)
	AISurvivalMinLength = 50
)

// Stagnation and history
const (
	// AIStagnationMin and AIStagnationMax bound the randomized no-gain threshold (inclusive)
	AIStagnationMin = 8
	AIStagnationMax = 16

	// AIHistorySize is the head position history length
	AIHistorySize = 6

	// AILoopWindow is the tail of history inspected for loops
	AILoopWindow = 4

	// AILoopMaxDistinct is the distinct cell count at or below which the window is a loop
	AILoopMaxDistinct = 2

	// AITailChaseMaxCandidates is the candidate count at or below which tail chasing is checked
	AITailChaseMaxCandidates = 2

	// AITailChaseWindow is the positions that must lie near the own body
	AITailChaseWindow = 6

	// AITailChaseRadius is the Manhattan radius considered near the own body
	AITailChaseRadius = 2
)

// Scoring
const (
	AISpaceCap        = 20
	AISpaceFactor     = 2.0
	AIRiskCap         = 10
	AIRiskOverlap     = 10
	AIRiskRadius      = 2
	AIRiskHeadOn      = 5
	AIRiskWeightCalm  = 5.0
	AIRiskWeightForce = 1.0

	// AIStagnationMultiplier scales item and food terms while stagnating
	AIStagnationMultiplier = 10.0

	AIItemPriorityDefault   = 30.0
	AIItemPriorityRevive    = 50.0
	AIItemPriorityPenetrate = 60.0
	AIItemDistanceFactor    = 2.0

	AIFoodBase           = 20.0
	AIFoodDistanceFactor = 2.0
	AIFoodValueFactor    = 2.0

	AIAttackRadius = 2
	AIAttackFactor = 10.0
)

// Tie-break thresholds
const (
	// AILoopMinSpace is the space a loop-breaking move must exceed
	AILoopMinSpace = 5

	// AIHighRisk is the risk at or above which the top move is reconsidered
	AIHighRisk = 8

	// AISafeRisk is the risk below which a fallback move counts as safe
	AISafeRisk = 5
)
