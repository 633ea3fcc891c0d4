package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hellostack/portal/internal/api/metrics"
	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
	"github.com/hellostack/portal/internal/core/service"
)

// BugReportHandler serves the bug report form actions.
type BugReportHandler struct {
	submissions ports.SubmissionService
}

func NewBugReportHandler(submissions ports.SubmissionService) *BugReportHandler {
	return &BugReportHandler{submissions: submissions}
}

// Submit validates and accepts a bug report.
//
// @Summary      Submit a bug report
// @Tags         bug-report
// @Accept       json
// @Produce      json
// @Param        body  body      bugReportRequest  true  "Bug report"
// @Success      200   {object}  domain.SubmissionResult
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  domain.SubmissionResult
// @Failure      500   {object}  domain.SubmissionResult
// @Router       /api/bug-report [post]
func (h *BugReportHandler) Submit(c echo.Context) error {
	var req bugReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res := h.submissions.Submit(c.Request().Context(), toBugReport(req))
	status, result := submissionStatus(res)
	metrics.SubmissionsTotal.WithLabelValues(result).Inc()
	return c.JSON(status, res)
}

func submissionStatus(res domain.SubmissionResult) (int, string) {
	switch {
	case res.Success:
		return http.StatusOK, "accepted"
	case res.Message == service.MsgValidationFailed:
		return http.StatusUnprocessableEntity, "invalid"
	default:
		return http.StatusInternalServerError, "error"
	}
}

// ValidateField runs the advisory check for a single field.
//
// @Summary      Validate one bug report field
// @Tags         bug-report
// @Accept       json
// @Produce      json
// @Param        body  body      fieldValidationRequest  true  "Field and value"
// @Success      200   {object}  domain.FieldResult
// @Failure      400   {object}  errorResponse
// @Router       /api/bug-report/validate [post]
func (h *BugReportHandler) ValidateField(c echo.Context) error {
	var req fieldValidationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.submissions.ValidateField(req.Field, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
