package usecase

import (
	"fmt"
	"strings"

	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/model"
	"webaudit-srv/pkg/gemini"
)

const assistantRules = `You are "Web Optimizer Pro Assistant", a hands-on SEO and conversion consultant.
Rules:
- When asked for code (schema markup, meta tags, HTML, CSS, robots.txt), write it in full.
- Be concise and practical.
- Ground every answer in the audit findings below.
- When recommending keywords, explain why each one fits the site's niche and intent.`

// buildSystemInstruction condenses the report into the chat system instruction.
func buildSystemInstruction(r model.Report) string {
	var b strings.Builder
	b.WriteString(assistantRules)
	b.WriteString("\n\nAudit context:\n")
	fmt.Fprintf(&b, "- Website: %s\n", r.TargetURL)
	fmt.Fprintf(&b, "- Overall score: %d/100\n", r.OverallScore)
	if r.Niche != "" {
		fmt.Fprintf(&b, "- Niche: %s\n", r.Niche)
	}
	fmt.Fprintf(&b, "- Projected ROI: traffic %s, leads %s, revenue %s\n",
		orNA(r.ROIEstimate.TrafficGain), orNA(r.ROIEstimate.LeadIncrease), orNA(r.ROIEstimate.RevenueProjection))
	if r.ExecutiveSummary != "" {
		fmt.Fprintf(&b, "- Summary: %s\n", r.ExecutiveSummary)
	}
	if findings := r.TopFindings(chat.TopFindings); len(findings) > 0 {
		b.WriteString("- Key issues:\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "  * %s\n", f)
		}
	}
	if len(r.Keywords) > 0 {
		fmt.Fprintf(&b, "- Target keywords: %s\n", strings.Join(r.Keywords, ", "))
	}
	return b.String()
}

// buildHistory keeps the last MaxHistoryMessages turns and drops leading model turns,
// so the conversation sent upstream starts with the user.
func buildHistory(history []model.ChatMessage) []gemini.Content {
	if len(history) > chat.MaxHistoryMessages {
		history = history[len(history)-chat.MaxHistoryMessages:]
	}
	for len(history) > 0 && history[0].Role != model.ChatRoleUser {
		history = history[1:]
	}

	contents := make([]gemini.Content, 0, len(history))
	for _, m := range history {
		role := gemini.RoleUser
		if m.Role == model.ChatRoleModel {
			role = gemini.RoleModel
		}
		contents = append(contents, gemini.Content{Role: role, Parts: []gemini.Part{{Text: m.Text}}})
	}
	return contents
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
