package usecase

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/model"
	"webaudit-srv/pkg/extract"
)

// legacyReport holds fields of unversioned payloads that were renamed in version 1.
type legacyReport struct {
	BusinessImpact string `json:"businessImpact"`
	Sections       []struct {
		Weaknesses []string `json:"weaknesses"`
	} `json:"sections"`
}

// parseReport turns raw model text into a validated Report.
// Extraction, decoding and validation failures all keep the raw text.
func (uc *implUseCase) parseReport(raw, targetURL string) (model.Report, error) {
	payload, err := uc.extractor.Extract(raw)
	if err != nil {
		return model.Report{}, err
	}

	report, err := decodeReport(payload)
	if err != nil {
		return model.Report{}, &extract.MalformedError{Raw: raw, Err: err}
	}

	if !audit.IsHTTPURL(report.TargetURL) {
		report.TargetURL = targetURL
	}
	if strings.TrimSpace(report.ScanDate) == "" {
		report.ScanDate = uc.now().Format(scanDateFormat)
	}

	if err := validateReport(&report); err != nil {
		return model.Report{}, &extract.MalformedError{Raw: raw, Err: err}
	}
	return report, nil
}

// decodeReport decodes a payload and upgrades unversioned shapes to the current schema.
func decodeReport(payload []byte) (model.Report, error) {
	var report model.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return model.Report{}, err
	}

	switch {
	case report.SchemaVersion == model.ReportSchemaVersion:
	case report.SchemaVersion == 0:
		var legacy legacyReport
		if err := json.Unmarshal(payload, &legacy); err != nil {
			return model.Report{}, err
		}
		upgradeLegacy(&report, legacy)
	default:
		return model.Report{}, fmt.Errorf("%w: %d", audit.ErrUnsupportedSchema, report.SchemaVersion)
	}

	normalizeReport(&report)
	return report, nil
}

func upgradeLegacy(r *model.Report, legacy legacyReport) {
	for i := range r.Sections {
		if r.Sections[i].Findings == nil && i < len(legacy.Sections) {
			r.Sections[i].Findings = legacy.Sections[i].Weaknesses
		}
	}
	if r.ROIEstimate.IsZero() && legacy.BusinessImpact != "" {
		r.ROIEstimate.RevenueProjection = legacy.BusinessImpact
	}
	r.SchemaVersion = model.ReportSchemaVersion
}

func normalizeReport(r *model.Report) {
	r.TargetURL = strings.TrimSpace(r.TargetURL)
	for i := range r.Sections {
		s := &r.Sections[i]
		s.ID = model.SectionID(strings.TrimSpace(string(s.ID)))
		if n := s.ID.Number(); n > 0 {
			s.ID = model.SectionID(strconv.Itoa(n))
		}
		for j := range s.Recommendations {
			rec := &s.Recommendations[j]
			rec.Impact = model.Impact(titleCase(string(rec.Impact)))
			rec.Difficulty = model.Difficulty(titleCase(string(rec.Difficulty)))
		}
	}
	sort.SliceStable(r.Sections, func(i, j int) bool {
		return r.Sections[i].ID.Number() < r.Sections[j].ID.Number()
	})
}

func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
