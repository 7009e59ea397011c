package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ReportSchemaVersion is the current Report shape. Bump it on any breaking change.
const ReportSchemaVersion = 1

// SectionCount is the number of fixed analysis dimensions in a Report.
const SectionCount = 10

// Report is the structured audit result for one target URL.
// A stored Report is never mutated; a new audit replaces it.
type Report struct {
	SchemaVersion      int                  `json:"schemaVersion"`
	TargetURL          string               `json:"targetUrl" validate:"required,httpurl"`
	OverallScore       int                  `json:"overallScore" validate:"gte=0,lte=100"`
	Niche              string               `json:"niche"`
	UserPerception     string               `json:"userPerception"`
	ExecutiveSummary   string               `json:"executiveSummary" validate:"required"`
	QuickWins          []string             `json:"quickWins"`
	ROIEstimate        ROIEstimate          `json:"roiEstimate"`
	ImplementationPlan []ImplementationStep `json:"implementationPlan" validate:"dive"`
	Keywords           []string             `json:"keywords"`
	KeyPhrases         []string             `json:"keyPhrases"`
	ContentStrategy    *ContentStrategy     `json:"contentStrategy,omitempty"`
	KeywordStrategy    string               `json:"keywordStrategy"`
	Sections           []Section            `json:"sections" validate:"len=10,dive"`
	ScanDate           string               `json:"scanDate"`
}

// ROIEstimate holds the three free text projections.
type ROIEstimate struct {
	TrafficGain       string `json:"trafficGain"`
	LeadIncrease      string `json:"leadIncrease"`
	RevenueProjection string `json:"revenueProjection"`
}

// IsZero reports whether no projection is set.
func (r ROIEstimate) IsZero() bool {
	return r.TrafficGain == "" && r.LeadIncrease == "" && r.RevenueProjection == ""
}

// ImplementationStep is one week of the roadmap.
type ImplementationStep struct {
	Week  int      `json:"week" validate:"gte=0"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// ContentStrategy is optional; older reports do not carry it.
type ContentStrategy struct {
	TopicClusters []string `json:"topicClusters"`
	BlogTitles    []string `json:"blogTitles"`
}

// Section is one of the ten analysis dimensions.
type Section struct {
	ID              SectionID        `json:"id" validate:"required"`
	Title           string           `json:"title" validate:"required"`
	Score           int              `json:"score" validate:"gte=1,lte=10"`
	Summary         string           `json:"summary"`
	Findings        []string         `json:"findings"`
	Recommendations []Recommendation `json:"recommendations" validate:"dive"`
}

// SectionID is "1".."10". Numeric ids in model output are accepted.
type SectionID string

// UnmarshalJSON accepts both "3" and 3.
func (id *SectionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SectionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("section id: %w", err)
	}
	if _, err := strconv.Atoi(n.String()); err != nil {
		return fmt.Errorf("section id %q is not an integer", n.String())
	}
	*id = SectionID(n.String())
	return nil
}

// Number returns the numeric id, or 0 when it is not a number.
func (id SectionID) Number() int {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0
	}
	return n
}

// Recommendation is one actionable fix within a Section.
type Recommendation struct {
	Issue      string     `json:"issue" validate:"required"`
	Fix        string     `json:"fix" validate:"required"`
	Impact     Impact     `json:"impact" validate:"oneof=High Medium Low"`
	Difficulty Difficulty `json:"difficulty" validate:"oneof=Easy Medium Hard"`
	Keywords   []string   `json:"keywords"`
}

// Impact is the expected effect of a Recommendation.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Valid reports whether i is a known impact.
func (i Impact) Valid() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	}
	return false
}

// Difficulty is the implementation effort of a Recommendation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// FindingCount is the total number of findings across all sections.
func (r Report) FindingCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Findings)
	}
	return n
}

// TopFindings returns up to n findings, taken in section order.
func (r Report) TopFindings(n int) []string {
	out := make([]string, 0, n)
	for _, s := range r.Sections {
		for _, f := range s.Findings {
			if len(out) == n {
				return out
			}
			out = append(out, f)
		}
	}
	return out
}
