// internal/prediction/tier/classifier.go
package tier

import "prediction-service/internal/models"

// Probability thresholds, inclusive at each lower bound.
const (
	safetyThreshold = 0.75
	targetThreshold = 0.50
	reachThreshold  = 0.25
)

// Classify maps a final admission probability onto its tier label.
func Classify(probability float64) string {
	switch {
	case probability >= safetyThreshold:
		return models.TierSafety
	case probability >= targetThreshold:
		return models.TierTarget
	case probability >= reachThreshold:
		return models.TierReach
	default:
		return models.TierFarReach
	}
}
