package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hellostack/portal/internal/api/middleware"
	"github.com/hellostack/portal/internal/core/ports"
	"github.com/hellostack/portal/internal/core/service"
)

// PageHandler serves the view models of the feature pages.
type PageHandler struct {
	authService ports.AuthService
}

func NewPageHandler(authService ports.AuthService) *PageHandler {
	return &PageHandler{authService: authService}
}

// Home is the public landing page.
//
// @Summary      Home page
// @Tags         pages
// @Produce      json
// @Success      200  {object}  homePage
// @Router       / [get]
func (h *PageHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, homePage{
		Title: "기능",
		Features: []featureLink{
			{
				Title:       "로그인 (Google OAuth)",
				Description: "Google 계정으로 로그인하고 사용자 정보를 확인하는 흐름을 체험해보세요.",
				Href:        "/features/login",
			},
			{
				Title:       "폼 검증",
				Description: "스키마 기반 검증으로 버그 리포트 폼을 제출해보세요.",
				Href:        "/features/form",
			},
		},
	})
}

// Form is the public bug report form page.
//
// @Summary      Bug report form page
// @Tags         pages
// @Produce      json
// @Success      200  {object}  formPage
// @Router       /features/form [get]
func (h *PageHandler) Form(c echo.Context) error {
	return c.JSON(http.StatusOK, formPage{
		Title: "폼 검증 기능",
		Fields: []formField{
			{Name: "title", Label: "버그 제목", MinLength: 10, MaxLength: 32},
			{Name: "description", Label: "설명", MinLength: 10, MaxLength: 100},
		},
		SubmitURL:   "/api/bug-report",
		ValidateURL: "/api/bug-report/validate",
		BackHref:    "/",
	})
}

// Login shows the sign-in state: the session when present, the providers
// otherwise.
//
// @Summary      Login page
// @Tags         pages
// @Produce      json
// @Param        callbackUrl  query     string  false  "Where to return after sign-in"
// @Success      200          {object}  loginPage
// @Router       /features/login [get]
func (h *PageHandler) Login(c echo.Context) error {
	session, err := h.authService.Session(c.Request().Context(), middleware.SessionToken(c))
	if err != nil {
		return err
	}

	page := loginPage{
		Title:       "로그인 기능",
		Session:     session,
		CallbackURL: service.SafeRedirect(c.QueryParam("callbackUrl")),
		BackHref:    "/",
	}
	if session != nil {
		page.Greeting = greeting(session)
		page.SignOutURL = "/api/auth/signout"
	} else {
		page.Providers = h.authService.Providers()
	}
	return c.JSON(http.StatusOK, page)
}
