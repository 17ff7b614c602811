// internal/prediction/recommend/generator_test.go
package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prediction-service/internal/models"
	"prediction-service/internal/prediction/scoring"
)

func allMet() map[string]bool {
	return map[string]bool{
		scoring.ReqGPA:      true,
		scoring.ReqGRE:      true,
		scoring.ReqLanguage: true,
		scoring.ReqResearch: true,
		scoring.ReqWork:     true,
		scoring.ReqProgram:  true,
	}
}

func TestForUniversity_EmptyWhenAllMet(t *testing.T) {
	recommendations := ForUniversity(allMet())
	assert.Empty(t, recommendations)
	assert.NotNil(t, recommendations)
}

func TestForUniversity_UnmetGPA(t *testing.T) {
	met := allMet()
	met[scoring.ReqGPA] = false

	recommendations := ForUniversity(met)

	require.Len(t, recommendations, 1)
	assert.Contains(t, recommendations[0], "GPA")
}

func TestForUniversity_StableOrder(t *testing.T) {
	met := allMet()
	met[scoring.ReqProgram] = false
	met[scoring.ReqGPA] = false
	met[scoring.ReqLanguage] = false

	recommendations := ForUniversity(met)

	require.Len(t, recommendations, 3)
	assert.Contains(t, recommendations[0], "GPA")
	assert.Contains(t, recommendations[1], "TOEFL")
	assert.Contains(t, recommendations[2], "program")
}

func TestForUniversity_AllUnmetEmitsAllSix(t *testing.T) {
	recommendations := ForUniversity(map[string]bool{})
	assert.Len(t, recommendations, 6)
}

func TestReasoning(t *testing.T) {
	verbal, quant := 165, 168
	p := &models.CandidateProfile{
		GPA:                3.8,
		GREVerbal:          &verbal,
		GREQuantitative:    &quant,
		ResearchExperience: true,
		Publications:       2,
	}

	reasoning := Reasoning(p, allMet())

	assert.Contains(t, reasoning, "GPA of 3.8 meets requirements")
	assert.Contains(t, reasoning, "GRE scores are competitive")
	assert.Contains(t, reasoning, "Research experience strengthens application")
	assert.Contains(t, reasoning, "2 publications enhance research profile")
}

func TestReasoning_UnmetGPAAndGRE(t *testing.T) {
	verbal, quant := 150, 152
	p := &models.CandidateProfile{GPA: 2.9, GREVerbal: &verbal, GREQuantitative: &quant}

	met := allMet()
	met[scoring.ReqGPA] = false
	met[scoring.ReqGRE] = false
	met[scoring.ReqResearch] = false

	reasoning := Reasoning(p, met)

	assert.Contains(t, reasoning, "below minimum requirement")
	assert.Contains(t, reasoning, "below average for this university")
	assert.NotContains(t, reasoning, "Research experience")
}

func TestReasoning_SkipsGREClauseWhenScoresMissing(t *testing.T) {
	p := &models.CandidateProfile{GPA: 3.0}

	met := allMet()
	met[scoring.ReqGRE] = false

	reasoning := Reasoning(p, met)
	assert.NotContains(t, reasoning, "GRE")
}

func predictionsWithProbability(probs ...float64) []models.UniversityPrediction {
	out := make([]models.UniversityPrediction, len(probs))
	for i, p := range probs {
		out[i] = models.UniversityPrediction{AdmissionProbability: p, RequirementsMet: allMet()}
	}
	return out
}

func TestOverallAssessment(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		want  string
	}{
		{"strong", []float64{0.8, 0.7}, "Strong profile with excellent admission chances across top universities"},
		{"competitive", []float64{0.6, 0.5}, "Competitive profile with good chances at most target universities"},
		{"moderate", []float64{0.4, 0.3}, "Moderate profile that may need strengthening for top-tier universities"},
		{"weak", []float64{0.1, 0.2}, "Profile needs significant improvement to meet admission requirements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallAssessment(predictionsWithProbability(tt.probs...)))
		})
	}
}

func TestOverallAssessment_EmptyPredictions(t *testing.T) {
	assert.Equal(t, "No universities available for assessment", OverallAssessment(nil))
}

func TestForProfile_MajorityWeaknesses(t *testing.T) {
	p := &models.CandidateProfile{GPA: 2.8, ResearchExperience: true, Publications: 1}

	unmet := allMet()
	unmet[scoring.ReqGPA] = false
	unmet[scoring.ReqGRE] = false

	predictions := []models.UniversityPrediction{
		{RequirementsMet: unmet},
		{RequirementsMet: unmet},
		{RequirementsMet: allMet()},
	}

	recommendations := ForProfile(p, predictions)

	require.Len(t, recommendations, 2)
	assert.Contains(t, recommendations[0], "GPA")
	assert.Contains(t, recommendations[1], "GRE")
}

func TestForProfile_ResearchGaps(t *testing.T) {
	p := &models.CandidateProfile{GPA: 3.9}

	recommendations := ForProfile(p, predictionsWithProbability(0.8))

	require.Len(t, recommendations, 2)
	assert.Contains(t, recommendations[0], "research experience")
	assert.Contains(t, recommendations[1], "publishing")
}

func TestForProfile_NoWeaknesses(t *testing.T) {
	p := &models.CandidateProfile{GPA: 3.9, ResearchExperience: true, Publications: 2}
	assert.Empty(t, ForProfile(p, predictionsWithProbability(0.8, 0.9)))
}
