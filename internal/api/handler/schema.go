package handler

import (
	"time"

	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type bugReportRequest struct {
	Title       string `json:"title"       form:"title"`
	Description string `json:"description" form:"description"`
}

type fieldValidationRequest struct {
	Field string `json:"field" form:"field" validate:"required"`
	Value string `json:"value" form:"value"`
}

type webVitalRequest struct {
	Name      string    `json:"name"      validate:"required"`
	Value     *float64  `json:"value"     validate:"required"`
	Rating    string    `json:"rating"`
	Delta     float64   `json:"delta"`
	ID        string    `json:"id"        validate:"required"`
	URL       string    `json:"url"`
	UserAgent string    `json:"userAgent"`
	Timestamp time.Time `json:"timestamp"`
}

type webVitalResponse struct {
	Name   string        `json:"name"`
	Rating domain.Rating `json:"rating"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

type roleResponse struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

type providerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	SignInURL   string `json:"signinUrl"`
	CallbackURL string `json:"callbackUrl"`
}

// --- Page view models ---

type featureLink struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

type homePage struct {
	Title    string        `json:"title"`
	Features []featureLink `json:"features"`
}

type formField struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	MinLength int    `json:"minLength"`
	MaxLength int    `json:"maxLength"`
}

type formPage struct {
	Title       string      `json:"title"`
	Fields      []formField `json:"fields"`
	SubmitURL   string      `json:"submitUrl"`
	ValidateURL string      `json:"validateUrl"`
	BackHref    string      `json:"backHref"`
}

type loginPage struct {
	Title       string               `json:"title"`
	Session     *domain.Session      `json:"session"`
	Greeting    string               `json:"greeting,omitempty"`
	CallbackURL string               `json:"callbackUrl"`
	Providers   []ports.ProviderInfo `json:"providers"`
	SignOutURL  string               `json:"signoutUrl,omitempty"`
	BackHref    string               `json:"backHref"`
}
