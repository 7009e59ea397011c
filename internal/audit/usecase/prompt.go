package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const auditSystemInstruction = `You are "Web Optimizer Pro", a senior technical SEO, conversion and AI-visibility auditor.
Audit the target website across exactly ten dimensions, in this order and with these ids:
1 Initial Site Overview & Design
2 Technical & Performance
3 AI Visibility (LLM Optimization)
4 Voice Search Readiness
5 User Intent & Conversion
6 Trust & Social Proof
7 Local SEO
8 Content Depth
9 Competitor Differentiation
10 Overall Scoring & Priorities

Rules:
- Be specific to the site. Name pages, elements and phrases you saw or inferred.
- Every recommendation states the issue, a concrete fix, impact (High, Medium or Low) and difficulty (Easy, Medium or Hard).
- Keywords are high-intent commercial terms a buyer would search for.
- Respond with a single JSON object and nothing else. No markdown, no commentary.

JSON shape:
{
  "schemaVersion": 1,
  "targetUrl": string,
  "overallScore": integer 0-100,
  "niche": string,
  "userPerception": string,
  "executiveSummary": string,
  "quickWins": [string],
  "roiEstimate": {"trafficGain": string, "leadIncrease": string, "revenueProjection": string},
  "implementationPlan": [{"week": integer, "focus": string, "tasks": [string]}],
  "keywords": [string],
  "keyPhrases": [string],
  "contentStrategy": {"topicClusters": [string], "blogTitles": [string]},
  "keywordStrategy": string,
  "sections": [{"id": "1".."10", "title": string, "score": integer 1-10, "summary": string,
    "findings": [string],
    "recommendations": [{"issue": string, "fix": string, "impact": "High|Medium|Low", "difficulty": "Easy|Medium|Hard", "keywords": [string]}]}],
  "scanDate": "YYYY-MM-DD"
}
The implementation plan covers 4 weeks.`

func (uc *implUseCase) searchPrompt(_ context.Context, targetURL string) string {
	return fmt.Sprintf(`Investigate %s using Google Search before writing anything.
Look at the homepage, key service or product pages, reviews, local listings and the main competitors.
Then produce the full audit JSON for %s. Today is %s.`,
		targetURL, targetURL, uc.now().Format(scanDateFormat))
}

func (uc *implUseCase) offlinePrompt(ctx context.Context, targetURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Live search is not available. Produce the full audit JSON for %s from the URL alone.\n", targetURL)
	b.WriteString("The site may be unreachable. Do not refuse: infer the niche from the domain and path, ")
	b.WriteString("assume degraded signals where you cannot verify something, and say so in the findings.\n")
	fmt.Fprintf(&b, "Today is %s.\n", uc.now().Format(scanDateFormat))

	if snapshot := uc.pageSnapshot(ctx, targetURL); snapshot != "" {
		b.WriteString("\nReadable text captured from the page:\n---\n")
		b.WriteString(snapshot)
		b.WriteString("\n---\n")
	}
	return b.String()
}

// pageSnapshot returns page text for the offline prompt when snapshots are enabled.
func (uc *implUseCase) pageSnapshot(ctx context.Context, targetURL string) string {
	if !uc.cfg.PageSnapshot || uc.fetcher == nil {
		return ""
	}
	text, err := uc.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		uc.l.Warnf(ctx, "audit.usecase.pageSnapshot: fetch %s failed: %v", targetURL, err)
		return "(The page could not be fetched. Treat the site as unreachable.)"
	}
	return truncate(strings.TrimSpace(text), uc.cfg.SnapshotMaxChars)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}

func adsPrompt(targetURL string, keywords []string) string {
	focus := "infer them from the site"
	if len(keywords) > 0 {
		focus = strings.Join(keywords, ", ")
	}
	return fmt.Sprintf(`Create a Google Search Ads campaign for %s.
Focus keywords: %s.
Respond with a single JSON object and nothing else:
{"headlines": [5 to 15 strings, each at most 30 characters],
 "descriptions": [2 to 4 strings, each at most 90 characters],
 "keywords": [10 to 20 targeting keywords]}`, targetURL, focus)
}
