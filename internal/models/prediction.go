// internal/models/prediction.go
package models

// ==========================
// Prediction Result Models
// ==========================

// Tier labels ordered from most to least favourable.
const (
	TierSafety   = "safety"
	TierTarget   = "target"
	TierReach    = "reach"
	TierFarReach = "far_reach"
)

// ScoreBreakdown exposes the per-factor contributions making up the composite
// score, each already scaled by its weight and rounded to 3 decimals.
type ScoreBreakdown struct {
	GPAScore        float64 `json:"gpa_score"`
	GREScore        float64 `json:"gre_score"`
	LanguageScore   float64 `json:"language_score"`
	ResearchScore   float64 `json:"research_score"`
	ExperienceScore float64 `json:"experience_score"`
	FitScore        float64 `json:"fit_score"`
}

// UniversityPrediction is the scored outcome for a single university.
type UniversityPrediction struct {
	UniversityName       string          `json:"university_name"`
	Ranking              int             `json:"ranking"`
	Program              string          `json:"program"`
	AdmissionProbability float64         `json:"admission_probability"`
	Tier                 string          `json:"tier"`
	ScoreBreakdown       ScoreBreakdown  `json:"score_breakdown"`
	RequirementsMet      map[string]bool `json:"requirements_met"`
	Reasoning            string          `json:"reasoning"`
	UniversityInfo       UniversityInfo  `json:"university_info"`
	Recommendations      []string        `json:"recommendations"`
}

// RangeBucket holds a probability-range count with its share of the catalog.
type RangeBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TopUniversity is one entry of the top-5 list in the summary.
type TopUniversity struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

// PredictionSummary aggregates statistics over the full ranked prediction list.
type PredictionSummary struct {
	TotalUniversities  int                    `json:"total_universities"`
	AverageProbability float64                `json:"average_probability"`
	MedianProbability  float64                `json:"median_probability"`
	HighestProbability float64                `json:"highest_probability"`
	LowestProbability  float64                `json:"lowest_probability"`
	TierDistribution   map[string]int         `json:"tier_distribution"`
	ProbabilityRanges  map[string]RangeBucket `json:"probability_ranges"`
	TopUniversities    []TopUniversity        `json:"top_5_universities"`
}

// PredictionResult is the full bulk-prediction payload.
type PredictionResult struct {
	RequestID         string                 `json:"request_id"`
	Timestamp         string                 `json:"timestamp"`
	Profile           CandidateProfile       `json:"profile"`
	TotalUniversities int                    `json:"total_universities"`
	Predictions       []UniversityPrediction `json:"predictions"`
	Summary           PredictionSummary      `json:"summary"`
	OverallAssessment string                 `json:"overall_assessment"`
	Recommendations   []string               `json:"recommendations"`
	ProcessingTime    float64                `json:"processing_time"`
}

// SinglePredictionResult wraps the single-university variant.
type SinglePredictionResult struct {
	RequestID      string               `json:"request_id"`
	Timestamp      string               `json:"timestamp"`
	University     string               `json:"university"`
	Prediction     UniversityPrediction `json:"prediction"`
	ProcessingTime float64              `json:"processing_time"`
}

// CacheStats reports cache occupancy and traffic counters.
type CacheStats struct {
	Backend    string `json:"backend"`
	Entries    int    `json:"entries"`
	MaxEntries int    `json:"max_entries,omitempty"`
	Hits       int64  `json:"hits"`
	Misses     int64  `json:"misses"`
	Evictions  int64  `json:"evictions"`
}
