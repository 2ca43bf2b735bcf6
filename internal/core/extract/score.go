package extract

import "strings"

// Warning codes surfaced alongside the confidence score. Advisory only,
// never fatal
const (
	WarnNoDateRange = "NO_DATE_RANGE_DETECTED"
	WarnNoCompany   = "NO_COMPANY_DETECTED"
	WarnWeakTitle   = "WEAK_TITLE_DETECTED"
)

// ScoreConfig holds the additive confidence weights. The defaults are the
// published values; deployments may tune them via config
type ScoreConfig struct {
	DateWeight    float64
	TitleWeight   float64
	CompanyWeight float64

	// titles shorter than this many characters count as weak
	WeakTitleLen int
}

// DefaultScoreConfig returns the published scoring weights
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		DateWeight:    0.35,
		TitleWeight:   0.30,
		CompanyWeight: 0.30,
		WeakTitleLen:  3,
	}
}

// Evaluate scores an extraction and collects its warning codes.
// Each contribution is independent; the sum is clamped to [0, 1]
func (c ScoreConfig) Evaluate(f Fields) (float64, []string) {
	var score float64
	var warnings []string

	if f.DateRange != "" {
		score += c.DateWeight
	} else {
		warnings = append(warnings, WarnNoDateRange)
	}

	if len(strings.Fields(f.Title)) >= 2 {
		score += c.TitleWeight
	}
	if len([]rune(f.Title)) < c.WeakTitleLen {
		warnings = append(warnings, WarnWeakTitle)
	}

	if n := len([]rune(f.CompanyQuery)); n >= 2 {
		score += c.CompanyWeight
	}
	if f.CompanyQuery == "" {
		warnings = append(warnings, WarnNoCompany)
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, warnings
}
