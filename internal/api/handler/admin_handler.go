package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
)

// AdminHandler exposes identity administration.
type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// Identity returns one identity.
//
// @Summary      Get an identity
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Identity id"
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/identities/{id} [get]
func (h *AdminHandler) Identity(c echo.Context) error {
	identity, err := h.authService.Identity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// SetRole assigns a role to an identity. The new role is carried by tokens
// minted from the next sign-in on.
//
// @Summary      Assign an identity role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Identity id"
// @Param        body  body      roleRequest  true  "Role"
// @Success      200   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/identities/{id}/role [put]
func (h *AdminHandler) SetRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	role := domain.Role(req.Role)
	if err := h.authService.SetRole(c.Request().Context(), id, role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{ID: id, Role: role})
}
