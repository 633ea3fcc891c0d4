package handler

import (
	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
)

// --- Request → Service input ---

func toBugReport(req bugReportRequest) domain.BugReport {
	return domain.BugReport{
		Title:       req.Title,
		Description: req.Description,
	}
}

func toWebVital(req webVitalRequest) domain.WebVital {
	v := domain.WebVital{
		Name:      req.Name,
		Delta:     req.Delta,
		ID:        req.ID,
		URL:       req.URL,
		UserAgent: req.UserAgent,
		Timestamp: req.Timestamp,
	}
	if req.Value != nil {
		v.Value = *req.Value
	}
	return v
}

// --- Service output → Response ---

func toProviderResponse(p ports.ProviderInfo) providerResponse {
	return providerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        "oauth",
		SignInURL:   "/api/auth/signin/" + p.ID,
		CallbackURL: "/api/auth/callback/" + p.ID,
	}
}

// greeting mirrors the login page welcome line: name first, email otherwise.
func greeting(s *domain.Session) string {
	if s == nil {
		return ""
	}
	who := s.User.Name
	if who == "" {
		who = s.User.Email
	}
	return "환영합니다, " + who + "님"
}
