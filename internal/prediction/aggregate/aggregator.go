// internal/prediction/aggregate/aggregator.go
package aggregate

import (
	"math"
	"sort"

	"prediction-service/internal/models"
	"prediction-service/internal/prediction/scoring"
)

// Bucket names of the probability-range breakdown.
const (
	BucketHigh   = "high_chance"
	BucketMedium = "medium_chance"
	BucketLow    = "low_chance"
)

const topListSize = 5

// Rank sorts predictions in place by descending admission probability. The
// sort is stable so catalog order breaks ties, keeping output deterministic
// for identical inputs.
func Rank(predictions []models.UniversityPrediction) {
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].AdmissionProbability > predictions[j].AdmissionProbability
	})
}

// Summarize computes the summary statistics over an already-ranked
// prediction list.
func Summarize(predictions []models.UniversityPrediction) models.PredictionSummary {
	total := len(predictions)

	summary := models.PredictionSummary{
		TotalUniversities: total,
		TierDistribution:  map[string]int{},
		ProbabilityRanges: map[string]models.RangeBucket{},
		TopUniversities:   []models.TopUniversity{},
	}
	if total == 0 {
		summary.ProbabilityRanges[BucketHigh] = models.RangeBucket{}
		summary.ProbabilityRanges[BucketMedium] = models.RangeBucket{}
		summary.ProbabilityRanges[BucketLow] = models.RangeBucket{}
		return summary
	}

	probabilities := make([]float64, total)
	sum := 0.0
	high, medium, low := 0, 0, 0
	for i, p := range predictions {
		probabilities[i] = p.AdmissionProbability
		sum += p.AdmissionProbability
		summary.TierDistribution[p.Tier]++

		switch {
		case p.AdmissionProbability >= 0.7:
			high++
		case p.AdmissionProbability >= 0.4:
			medium++
		default:
			low++
		}
	}

	summary.AverageProbability = scoring.Round3(sum / float64(total))
	summary.MedianProbability = scoring.Round3(median(probabilities))
	summary.HighestProbability = probabilities[0]
	summary.LowestProbability = probabilities[total-1]

	summary.ProbabilityRanges[BucketHigh] = bucket(high, total)
	summary.ProbabilityRanges[BucketMedium] = bucket(medium, total)
	summary.ProbabilityRanges[BucketLow] = bucket(low, total)

	topN := topListSize
	if total < topN {
		topN = total
	}
	for _, p := range predictions[:topN] {
		summary.TopUniversities = append(summary.TopUniversities, models.TopUniversity{
			Name:        p.UniversityName,
			Probability: p.AdmissionProbability,
		})
	}

	return summary
}

func bucket(count, total int) models.RangeBucket {
	return models.RangeBucket{
		Count:      count,
		Percentage: round1(float64(count) / float64(total) * 100),
	}
}

// median assumes the slice is sorted (descending is fine, order symmetric).
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
