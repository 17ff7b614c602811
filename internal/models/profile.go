// internal/models/profile.go
package models

// ==========================
// Candidate Profile
// ==========================

// CandidateProfile is the normalized academic profile a prediction runs against.
// Optional test scores are pointers so "not taken" is distinguishable from zero.
type CandidateProfile struct {
	GPA                 float64  `json:"gpa"`
	GREVerbal           *int     `json:"gre_verbal,omitempty"`
	GREQuantitative     *int     `json:"gre_quantitative,omitempty"`
	GREAnalytical       *float64 `json:"gre_analytical,omitempty"`
	TOEFLScore          *int     `json:"toefl_score,omitempty"`
	IELTSScore          *float64 `json:"ielts_score,omitempty"`
	ResearchExperience  bool     `json:"research_experience"`
	Publications        int      `json:"publications"`
	WorkExperienceYears float64  `json:"work_experience_years"`
	Major               string   `json:"major"`
	TargetProgram       string   `json:"target_program"`
	Awards              []string `json:"awards,omitempty"`
	Internships         []string `json:"internships,omitempty"`
}

// GRETotal returns verbal+quant and whether both sections are present.
func (p *CandidateProfile) GRETotal() (int, bool) {
	if p.GREVerbal == nil || p.GREQuantitative == nil {
		return 0, false
	}
	return *p.GREVerbal + *p.GREQuantitative, true
}

// AnalyticalOrDefault returns the AWA score, defaulting to 4.0 when absent.
func (p *CandidateProfile) AnalyticalOrDefault() float64 {
	if p.GREAnalytical == nil {
		return 4.0
	}
	return *p.GREAnalytical
}
