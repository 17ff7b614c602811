// internal/models/university.go
package models

// ==========================
// University Catalog Models
// ==========================

// UniversityRequirement describes one catalog entry: admission thresholds plus
// descriptive metadata returned to clients.
type UniversityRequirement struct {
	Name           string   `json:"name"`
	Ranking        int      `json:"ranking"`
	MinGPA         float64  `json:"min_gpa"`
	MinGRETotal    int      `json:"min_gre_total"`
	MinTOEFL       int      `json:"min_toefl"`
	MinIELTS       float64  `json:"min_ielts"`
	AcceptanceRate float64  `json:"acceptance_rate"`
	Selectivity    float64  `json:"selectivity"`
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	Programs       []string `json:"programs"`
}

// UniversityInfo is the descriptive subset echoed in prediction payloads.
type UniversityInfo struct {
	AcceptanceRate float64 `json:"acceptance_rate"`
	Location       string  `json:"location"`
	Type           string  `json:"type"`
}

// Info projects the descriptive fields of the requirement.
func (u *UniversityRequirement) Info() UniversityInfo {
	return UniversityInfo{
		AcceptanceRate: u.AcceptanceRate,
		Location:       u.Location,
		Type:           u.Type,
	}
}
