// internal/prediction/profile/normalizer.go
package profile

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"prediction-service/internal/common/errors"
	"prediction-service/internal/models"
)

// ==========================
// Profile Schema
// ==========================

// profileSchema rejects structurally invalid input before typed range checks
// run. Range bounds live in the typed checks so the offending field name can
// be reported precisely.
const profileSchema = `{
	"type": "object",
	"properties": {
		"gpa": {"type": "number"},
		"gre_verbal": {"type": ["integer", "null"]},
		"gre_quantitative": {"type": ["integer", "null"]},
		"gre_analytical": {"type": ["number", "null"]},
		"toefl_score": {"type": ["integer", "null"]},
		"ielts_score": {"type": ["number", "null"]},
		"research_experience": {"type": "boolean"},
		"publications": {"type": "integer"},
		"work_experience_years": {"type": "number"},
		"major": {"type": "string"},
		"target_program": {"type": "string"},
		"awards": {"type": "array", "items": {"type": "string"}},
		"internships": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["gpa"]
}`

var schemaLoader = gojsonschema.NewStringLoader(profileSchema)

// Normalizer validates raw profile input and produces a CandidateProfile with
// defaults applied for every optional field.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize validates the raw payload and returns the typed profile. All
// failures carry the offending field name.
func (n *Normalizer) Normalize(raw map[string]interface{}) (*models.CandidateProfile, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("profile schema validation: %w", err))
	}
	if !result.Valid() {
		first := result.Errors()[0]
		field := first.Field()
		if field == "(root)" {
			if prop, ok := first.Details()["property"].(string); ok {
				field = prop
			}
		}
		return nil, errors.NewValidationError(field, first.Description())
	}

	var p models.CandidateProfile
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("profile encoding: %w", err))
	}
	if err := json.Unmarshal(encoded, &p); err != nil {
		return nil, errors.NewValidationError("profile", err.Error())
	}

	if err := n.checkRanges(&p); err != nil {
		return nil, err
	}

	if p.Awards == nil {
		p.Awards = []string{}
	}
	if p.Internships == nil {
		p.Internships = []string{}
	}

	return &p, nil
}

// checkRanges enforces the score bounds of each standardized test.
func (n *Normalizer) checkRanges(p *models.CandidateProfile) error {
	if p.GPA < 0.0 || p.GPA > 4.0 {
		return errors.NewValidationError("gpa", "GPA must be between 0.0 and 4.0")
	}
	if p.GREVerbal != nil && (*p.GREVerbal < 130 || *p.GREVerbal > 170) {
		return errors.NewValidationError("gre_verbal", "GRE verbal score must be between 130 and 170")
	}
	if p.GREQuantitative != nil && (*p.GREQuantitative < 130 || *p.GREQuantitative > 170) {
		return errors.NewValidationError("gre_quantitative", "GRE quantitative score must be between 130 and 170")
	}
	if p.GREAnalytical != nil && (*p.GREAnalytical < 0.0 || *p.GREAnalytical > 6.0) {
		return errors.NewValidationError("gre_analytical", "GRE analytical writing score must be between 0.0 and 6.0")
	}
	if p.TOEFLScore != nil && (*p.TOEFLScore < 0 || *p.TOEFLScore > 120) {
		return errors.NewValidationError("toefl_score", "TOEFL score must be between 0 and 120")
	}
	if p.IELTSScore != nil && (*p.IELTSScore < 0.0 || *p.IELTSScore > 9.0) {
		return errors.NewValidationError("ielts_score", "IELTS score must be between 0.0 and 9.0")
	}
	if p.Publications < 0 {
		return errors.NewValidationError("publications", "publications count must be non-negative")
	}
	if p.WorkExperienceYears < 0 {
		return errors.NewValidationError("work_experience_years", "work experience years must be non-negative")
	}
	return nil
}

// CacheKey derives the deterministic cache key for a normalized profile. Only
// the fields that influence scoring across all universities participate.
func CacheKey(p *models.CandidateProfile) string {
	greVerbal, greQuant := 0, 0
	if p.GREVerbal != nil {
		greVerbal = *p.GREVerbal
	}
	if p.GREQuantitative != nil {
		greQuant = *p.GREQuantitative
	}
	return fmt.Sprintf("%v_%d_%d_%t_%d_%v",
		p.GPA, greVerbal, greQuant, p.ResearchExperience, p.Publications, p.WorkExperienceYears)
}
