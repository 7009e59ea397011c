package export

import (
	"fmt"
	"strings"

	"webaudit-srv/internal/model"
)

const (
	brandTitle    = "WEB OPTIMIZER PRO"
	brandSubtitle = "DEEP AUDIT PROTOCOL v2.0"
	footerBrand   = "Web Optimizer Pro Audit"
)

type blockKind int

const (
	kindPageBreak blockKind = iota
	kindBanner
	kindTitle
	kindHeading
	kindField
	kindParagraph
	kindBullets
	kindScore
	kindSectionHeader
	kindTable
)

// block is one layout element. The PDF renderer draws blocks in order.
type block struct {
	kind    blockKind
	text    string
	label   string
	items   []string
	score   int
	max     int
	headers []string
	widths  []float64
	rows    [][]string
}

// strings returns every piece of text the block puts on the page.
func (b block) strings() []string {
	out := []string{b.text, b.label}
	out = append(out, b.items...)
	out = append(out, b.headers...)
	for _, row := range b.rows {
		out = append(out, row...)
	}
	if b.kind == kindScore || b.kind == kindSectionHeader {
		out = append(out, fmt.Sprintf("%d/%d", b.score, b.max))
	}
	return out
}

func buildDocument(r model.Report) []block {
	doc := coverPage(r)
	doc = append(doc, block{kind: kindPageBreak})
	doc = append(doc, strategyPage(r)...)
	doc = append(doc, block{kind: kindPageBreak})
	doc = append(doc, sectionPages(r)...)
	return doc
}

func coverPage(r model.Report) []block {
	doc := []block{
		{kind: kindBanner, text: brandTitle, label: brandSubtitle},
		{kind: kindField, label: "Scan date", text: r.ScanDate},
		{kind: kindField, label: "Target", text: r.TargetURL},
		{kind: kindField, label: "Niche", text: orDash(r.Niche)},
		{kind: kindField, label: "Schema version", text: fmt.Sprint(r.SchemaVersion)},
		{kind: kindScore, score: r.OverallScore, max: 100, text: "Overall Score"},
		{kind: kindHeading, text: "Projected Impact"},
		{
			kind:    kindTable,
			headers: []string{"Traffic Gain", "Lead Increase", "Est. Revenue"},
			widths:  []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
			rows: [][]string{{
				orDash(r.ROIEstimate.TrafficGain),
				orDash(r.ROIEstimate.LeadIncrease),
				orDash(r.ROIEstimate.RevenueProjection),
			}},
		},
	}
	if r.UserPerception != "" {
		doc = append(doc,
			block{kind: kindHeading, text: "User Perception"},
			block{kind: kindParagraph, text: r.UserPerception})
	}
	doc = append(doc,
		block{kind: kindHeading, text: "Executive Summary"},
		block{kind: kindParagraph, text: r.ExecutiveSummary})
	if len(r.QuickWins) > 0 {
		doc = append(doc,
			block{kind: kindHeading, text: "Quick Wins"},
			block{kind: kindBullets, items: r.QuickWins})
	}
	return doc
}

func strategyPage(r model.Report) []block {
	doc := []block{{kind: kindTitle, text: "Keyword & Content Strategy"}}
	if r.KeywordStrategy != "" {
		doc = append(doc, block{kind: kindParagraph, text: r.KeywordStrategy})
	}

	var blogTitles []string
	if r.ContentStrategy != nil {
		blogTitles = r.ContentStrategy.BlogTitles
	}
	n := max(len(r.Keywords), len(blogTitles))
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{at(r.Keywords, i), at(blogTitles, i)})
	}
	doc = append(doc, block{
		kind:    kindTable,
		headers: []string{"High-Intent Commercial Keywords", "Content Topics (Blog)"},
		widths:  []float64{0.4, 0.6},
		rows:    rows,
	})

	if len(r.KeyPhrases) > 0 {
		doc = append(doc,
			block{kind: kindHeading, text: "Secondary Key Phrases"},
			block{kind: kindBullets, items: r.KeyPhrases})
	}
	if r.ContentStrategy != nil && len(r.ContentStrategy.TopicClusters) > 0 {
		doc = append(doc,
			block{kind: kindHeading, text: "Topic Clusters"},
			block{kind: kindBullets, items: r.ContentStrategy.TopicClusters})
	}

	if len(r.ImplementationPlan) > 0 {
		rows := make([][]string, 0, len(r.ImplementationPlan))
		for _, step := range r.ImplementationPlan {
			rows = append(rows, []string{
				fmt.Sprintf("Week %d: %s", step.Week, step.Focus),
				"- " + strings.Join(step.Tasks, "\n- "),
			})
		}
		doc = append(doc,
			block{kind: kindHeading, text: "4-Week Implementation Roadmap"},
			block{kind: kindTable, headers: []string{"Phase", "Action Items"}, widths: []float64{0.3, 0.7}, rows: rows})
	}
	return doc
}

func sectionPages(r model.Report) []block {
	doc := []block{{kind: kindTitle, text: "Detailed Audit Findings"}}
	for _, s := range r.Sections {
		doc = append(doc,
			block{kind: kindSectionHeader, text: fmt.Sprintf("%s. %s", s.ID, s.Title), score: s.Score, max: 10},
			block{kind: kindParagraph, text: s.Summary})
		if len(s.Findings) > 0 {
			doc = append(doc, block{kind: kindBullets, label: "Findings", items: s.Findings})
		}
		if len(s.Recommendations) == 0 {
			continue
		}
		rows := make([][]string, 0, len(s.Recommendations))
		for _, rec := range s.Recommendations {
			fix := rec.Fix
			if len(rec.Keywords) > 0 {
				fix += "\nKeywords: " + strings.Join(rec.Keywords, ", ")
			}
			rows = append(rows, []string{rec.Issue, fix, string(rec.Impact), string(rec.Difficulty)})
		}
		doc = append(doc, block{
			kind:    kindTable,
			headers: []string{"Issue identified", "Recommended Fix", "Impact", "Difficulty"},
			widths:  []float64{0.3, 0.46, 0.12, 0.12},
			rows:    rows,
		})
	}
	return doc
}

func at(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return "-"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
