// internal/prediction/recommend/generator.go
package recommend

import (
	"fmt"
	"strings"

	"prediction-service/internal/models"
	"prediction-service/internal/prediction/scoring"
)

// ==========================
// Per-University Suggestions
// ==========================

// requirementAdvice pairs each requirement flag with its improvement
// suggestion, in the fixed emission order.
var requirementAdvice = []struct {
	flag   string
	advice string
}{
	{scoring.ReqGPA, "Consider taking additional coursework to improve GPA"},
	{scoring.ReqGRE, "Retake GRE exams to improve scores"},
	{scoring.ReqLanguage, "Take/retake TOEFL or IELTS to meet language requirements"},
	{scoring.ReqResearch, "Gain research experience through projects or publications"},
	{scoring.ReqWork, "Seek relevant internships or work experience"},
	{scoring.ReqProgram, "Target a program the university actually offers"},
}

// ForUniversity derives improvement suggestions from the unmet requirement
// flags. The output order is fixed; an all-met profile gets an empty list.
func ForUniversity(requirementsMet map[string]bool) []string {
	recommendations := []string{}
	for _, ra := range requirementAdvice {
		if !requirementsMet[ra.flag] {
			recommendations = append(recommendations, ra.advice)
		}
	}
	return recommendations
}

// Reasoning summarizes the drivers behind one university's prediction as a
// single "; "-joined sentence.
func Reasoning(p *models.CandidateProfile, requirementsMet map[string]bool) string {
	reasons := []string{}

	if requirementsMet[scoring.ReqGPA] {
		reasons = append(reasons, fmt.Sprintf("GPA of %v meets requirements", p.GPA))
	} else {
		reasons = append(reasons, fmt.Sprintf("GPA of %v is below minimum requirement", p.GPA))
	}

	if requirementsMet[scoring.ReqGRE] {
		reasons = append(reasons, "GRE scores are competitive")
	} else if _, ok := p.GRETotal(); ok {
		reasons = append(reasons, "GRE scores are below average for this university")
	}

	if requirementsMet[scoring.ReqResearch] {
		reasons = append(reasons, "Research experience strengthens application")
	}

	if p.Publications > 0 {
		reasons = append(reasons, fmt.Sprintf("%d publications enhance research profile", p.Publications))
	}

	return strings.Join(reasons, "; ")
}

// ==========================
// Profile-Level Summary
// ==========================

// OverallAssessment maps the mean admission probability onto a narrative
// verdict for the whole profile.
func OverallAssessment(predictions []models.UniversityPrediction) string {
	if len(predictions) == 0 {
		return "No universities available for assessment"
	}

	sum := 0.0
	for _, p := range predictions {
		sum += p.AdmissionProbability
	}
	avg := sum / float64(len(predictions))

	switch {
	case avg >= 0.7:
		return "Strong profile with excellent admission chances across top universities"
	case avg >= 0.5:
		return "Competitive profile with good chances at most target universities"
	case avg >= 0.3:
		return "Moderate profile that may need strengthening for top-tier universities"
	default:
		return "Profile needs significant improvement to meet admission requirements"
	}
}

// ForProfile derives profile-wide recommendations from weaknesses common
// across the prediction list.
func ForProfile(p *models.CandidateProfile, predictions []models.UniversityPrediction) []string {
	recommendations := []string{}
	if len(predictions) == 0 {
		return recommendations
	}

	lowGPA, lowGRE := 0, 0
	for _, pred := range predictions {
		if !pred.RequirementsMet[scoring.ReqGPA] {
			lowGPA++
		}
		if !pred.RequirementsMet[scoring.ReqGRE] {
			lowGRE++
		}
	}

	half := float64(len(predictions)) * 0.5
	if float64(lowGPA) > half {
		recommendations = append(recommendations, "Focus on improving academic performance and GPA")
	}
	if float64(lowGRE) > half {
		recommendations = append(recommendations, "Invest time in GRE preparation and retake if necessary")
	}
	if !p.ResearchExperience {
		recommendations = append(recommendations, "Gain research experience to strengthen your academic profile")
	}
	if p.Publications == 0 {
		recommendations = append(recommendations, "Consider publishing research work or conference papers")
	}

	return recommendations
}
