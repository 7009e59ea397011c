package http

import (
	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/model"
)

type auditReq struct {
	URL string `json:"url" binding:"required"`
}

func (r auditReq) toInput() audit.AuditInput {
	return audit.AuditInput{URL: r.URL}
}

type auditResp struct {
	Report           model.Report `json:"report"`
	Strategy         string       `json:"strategy"`
	Attempts         int          `json:"attempts"`
	GroundingSources []string     `json:"grounding_sources"`
	DurationMs       int64        `json:"duration_ms"`
}

func (h *handler) newAuditResp(o audit.AuditOutput) auditResp {
	sources := o.GroundingSources
	if sources == nil {
		sources = []string{}
	}
	return auditResp{
		Report:           o.Report,
		Strategy:         o.Strategy,
		Attempts:         o.Attempts,
		GroundingSources: sources,
		DurationMs:       o.Duration.Milliseconds(),
	}
}

type adsReq struct {
	URL      string   `json:"url" binding:"required"`
	Keywords []string `json:"keywords"`
}

func (r adsReq) toInput() audit.AdsInput {
	return audit.AdsInput{URL: r.URL, Keywords: r.Keywords}
}

type exportReq struct {
	Format string
	Report model.Report
}
