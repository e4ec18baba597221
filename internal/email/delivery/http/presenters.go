package http

import (
	"strings"

	"rag-assistant/internal/email"
	"rag-assistant/internal/model"
	"rag-assistant/pkg/response"
)

// --- Request DTOs ---

type latestReq struct {
	Sender string `form:"sender"`
}

func (r latestReq) validate() error {
	if strings.TrimSpace(r.Sender) == "" {
		return email.ErrEmptySender
	}
	return nil
}

type recentReq struct {
	Limit int `form:"limit"`
}

func (r recentReq) validate() error { return nil }

// --- Response DTOs ---

type sourceResp struct {
	Sender      string            `json:"sender"`
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	Date        response.DateTime `json:"date"`
	BodyPreview string            `json:"body_preview"`
	Provider    string            `json:"provider"`
}

type latestResp struct {
	Answer  string       `json:"answer"`
	Sources []sourceResp `json:"sources"`
}

func (h *handler) newLatestResp(out email.LatestOutput) latestResp {
	sources := make([]sourceResp, len(out.Sources))
	for i, s := range out.Sources {
		sources[i] = sourceResp{
			Sender:      s.Sender,
			To:          s.To,
			Subject:     s.Subject,
			Date:        response.DateTime(s.Date),
			BodyPreview: s.BodyPreview,
			Provider:    s.Provider,
		}
	}
	return latestResp{Answer: out.Answer, Sources: sources}
}

type emailResp struct {
	ID       string            `json:"id"`
	Sender   string            `json:"sender"`
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Date     response.DateTime `json:"date"`
	Provider string            `json:"provider"`
}

type recentResp struct {
	Emails []emailResp `json:"emails"`
}

func (h *handler) newRecentResp(emails []model.Email) recentResp {
	out := make([]emailResp, len(emails))
	for i, e := range emails {
		out[i] = emailResp{
			ID:       e.ID,
			Sender:   e.Sender,
			To:       e.To,
			Subject:  e.Subject,
			Date:     response.DateTime(e.Date),
			Provider: e.Provider,
		}
	}
	return recentResp{Emails: out}
}
