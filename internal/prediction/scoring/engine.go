// internal/prediction/scoring/engine.go
package scoring

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"prediction-service/internal/common/config"
	"prediction-service/internal/common/metrics"
	"prediction-service/internal/models"
)

// ==========================
// Requirement Flag Keys
// ==========================

// Wire names of the requirements_met map entries.
const (
	ReqGPA      = "gpa"
	ReqGRE      = "gre"
	ReqLanguage = "language_test"
	ReqResearch = "research_experience"
	ReqWork     = "work_experience"
	ReqProgram  = "program_match"
)

// Scale ceilings for the standardized tests.
const (
	gpaScaleMax   = 4.0
	greScaleMax   = 340.0
	awaScaleMax   = 6.0
	toeflScaleMax = 120.0
	ieltsScaleMax = 9.0
)

// Baseline weight shares the research and experience credit tables are
// denominated in. Configured weights rescale those tables so each factor's
// contribution stays bounded by its share.
const (
	baseResearchWeight   = 0.15
	baseExperienceWeight = 0.10
)

// Outcome is the raw scoring result for one profile/university pair, before
// tier classification and recommendation derivation.
type Outcome struct {
	Probability     float64
	Breakdown       models.ScoreBreakdown
	RequirementsMet map[string]bool
}

// Engine computes admission probabilities from the weighted factor model.
// It is stateless apart from the optional noise source and safe for
// concurrent use.
type Engine struct {
	weights         config.FactorWeights
	researchScale   float64
	experienceScale float64

	noiseMu sync.Mutex
	noise   *rand.Rand
	stdDev  float64
}

// NewEngine builds an engine from validated scoring configuration. The weight
// table must already satisfy the sum invariant.
func NewEngine(cfg config.ScoringConfig) *Engine {
	e := &Engine{
		weights:         cfg.Weights,
		researchScale:   cfg.Weights.Research / baseResearchWeight,
		experienceScale: cfg.Weights.Experience / baseExperienceWeight,
	}
	if cfg.Noise.Enabled {
		e.stdDev = cfg.Noise.StdDev
		e.noise = rand.New(rand.NewSource(cfg.Noise.Seed))
	}
	return e
}

// Score evaluates one profile against one university. The composite is the
// sum of the six weighted factor contributions, discounted by selectivity,
// optionally perturbed, and clamped into [0,1].
func (e *Engine) Score(p *models.CandidateProfile, u *models.UniversityRequirement) Outcome {
	metrics.ScoringInvocations.Inc()

	met := make(map[string]bool, 6)

	gpaScore := e.scoreGPA(p, u, met)
	greScore := e.scoreGRE(p, u, met)
	languageScore := e.scoreLanguage(p, u, met)
	researchScore := e.scoreResearch(p, met)
	experienceScore := e.scoreExperience(p, met)
	fitScore := e.scoreProgramFit(p, u, met)

	composite := gpaScore + greScore + languageScore + researchScore + experienceScore + fitScore
	adjusted := composite * (1.0 - u.Selectivity*0.3)

	final := adjusted + e.sampleNoise()
	final = math.Max(0.0, math.Min(1.0, final))

	return Outcome{
		Probability: Round3(final),
		Breakdown: models.ScoreBreakdown{
			GPAScore:        Round3(gpaScore),
			GREScore:        Round3(greScore),
			LanguageScore:   Round3(languageScore),
			ResearchScore:   Round3(researchScore),
			ExperienceScore: Round3(experienceScore),
			FitScore:        Round3(fitScore),
		},
		RequirementsMet: met,
	}
}

// scoreGPA gives full weighted credit above the minimum, scaled toward the
// 4.0 ceiling, and half-weighted partial credit between 2.0 and the minimum.
func (e *Engine) scoreGPA(p *models.CandidateProfile, u *models.UniversityRequirement, met map[string]bool) float64 {
	if p.GPA >= u.MinGPA {
		met[ReqGPA] = true
		factor := math.Min((p.GPA-u.MinGPA)/(gpaScaleMax-u.MinGPA), 1.0)
		return factor * e.weights.GPA
	}
	met[ReqGPA] = false
	return math.Max(0, (p.GPA-2.0)/(u.MinGPA-2.0)) * e.weights.GPA * 0.5
}

// scoreGRE requires both sections. The met branch blends the total against
// the 340 ceiling with the analytical writing score; the unmet branch gives
// discounted proportional credit.
func (e *Engine) scoreGRE(p *models.CandidateProfile, u *models.UniversityRequirement, met map[string]bool) float64 {
	total, ok := p.GRETotal()
	if !ok {
		met[ReqGRE] = false
		return 0
	}

	if total >= u.MinGRETotal {
		met[ReqGRE] = true
		greFactor := math.Min(float64(total-u.MinGRETotal)/(greScaleMax-float64(u.MinGRETotal)), 1.0)
		awaFactor := math.Min(p.AnalyticalOrDefault()/awaScaleMax, 1.0)
		return (greFactor*0.8 + awaFactor*0.2) * e.weights.GRE
	}
	met[ReqGRE] = false
	return math.Max(0, float64(total)/float64(u.MinGRETotal)) * e.weights.GRE * 0.6
}

// scoreLanguage checks TOEFL first, then IELTS. A score below its minimum
// earns nothing.
func (e *Engine) scoreLanguage(p *models.CandidateProfile, u *models.UniversityRequirement, met map[string]bool) float64 {
	if p.TOEFLScore != nil && float64(*p.TOEFLScore) >= float64(u.MinTOEFL) {
		met[ReqLanguage] = true
		return math.Min(float64(*p.TOEFLScore-u.MinTOEFL)/(toeflScaleMax-float64(u.MinTOEFL)), 1.0) * e.weights.Language
	}
	if p.IELTSScore != nil && *p.IELTSScore >= u.MinIELTS {
		met[ReqLanguage] = true
		return math.Min((*p.IELTSScore-u.MinIELTS)/(ieltsScaleMax-u.MinIELTS), 1.0) * e.weights.Language
	}
	met[ReqLanguage] = false
	return 0
}

// scoreResearch grants a flat credit for research experience plus a capped
// per-publication bonus, rescaled to the configured research share.
func (e *Engine) scoreResearch(p *models.CandidateProfile, met map[string]bool) float64 {
	score := 0.0
	if p.ResearchExperience {
		score += 0.08
	}
	if p.Publications > 0 {
		score += math.Min(float64(p.Publications)*0.02, 0.07)
	}
	met[ReqResearch] = p.ResearchExperience
	return score * e.researchScale
}

// scoreExperience scales work years toward a 3-year ceiling and adds a capped
// per-internship bonus, rescaled to the configured experience share.
func (e *Engine) scoreExperience(p *models.CandidateProfile, met map[string]bool) float64 {
	score := 0.0
	if p.WorkExperienceYears > 0 {
		score += math.Min(p.WorkExperienceYears/3.0, 1.0) * 0.05
	}
	if len(p.Internships) > 0 {
		score += math.Min(float64(len(p.Internships))*0.02, 0.05)
	}
	met[ReqWork] = p.WorkExperienceYears > 0
	return score * e.experienceScale
}

// scoreProgramFit grants the full fit weight on case-insensitive membership
// of the target program in the university's program list.
func (e *Engine) scoreProgramFit(p *models.CandidateProfile, u *models.UniversityRequirement, met map[string]bool) float64 {
	if p.TargetProgram == "" {
		met[ReqProgram] = false
		return 0
	}
	target := strings.ToLower(p.TargetProgram)
	for _, program := range u.Programs {
		if strings.ToLower(program) == target {
			met[ReqProgram] = true
			return e.weights.ProgramFit
		}
	}
	met[ReqProgram] = false
	return 0
}

func (e *Engine) sampleNoise() float64 {
	if e.noise == nil {
		return 0
	}
	e.noiseMu.Lock()
	defer e.noiseMu.Unlock()
	return e.noise.NormFloat64() * e.stdDev
}

// Round3 rounds to 3 decimal places, the precision of all reported
// probabilities and factor scores.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
