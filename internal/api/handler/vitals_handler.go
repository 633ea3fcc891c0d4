package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/api/metrics"
	"github.com/hellostack/portal/internal/core/service"
)

// VitalsHandler ingests web vitals beacons.
type VitalsHandler struct {
	log zerolog.Logger
}

func NewVitalsHandler(log zerolog.Logger) *VitalsHandler {
	return &VitalsHandler{log: log}
}

// Receive records one web vital sample. The rating sent by the client is
// ignored and recomputed.
//
// @Summary      Ingest a web vital sample
// @Tags         vitals
// @Accept       json
// @Produce      json
// @Param        body  body      webVitalRequest  true  "Web vital"
// @Success      202   {object}  webVitalResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/vitals [post]
func (h *VitalsHandler) Receive(c echo.Context) error {
	var req webVitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	vital := toWebVital(req)
	rating := service.Rate(vital.Name, vital.Value)

	// Unknown names share one label so clients cannot grow the series set.
	label := vital.Name
	if !service.KnownVital(label) {
		label = "other"
	}
	metrics.WebVitals.WithLabelValues(label).Observe(vital.Value)
	metrics.WebVitalsRatingTotal.WithLabelValues(label, string(rating)).Inc()

	h.log.Debug().
		Str("name", vital.Name).
		Float64("value", vital.Value).
		Str("rating", string(rating)).
		Float64("delta", vital.Delta).
		Str("id", vital.ID).
		Msg("web vital")

	return c.JSON(http.StatusAccepted, webVitalResponse{Name: vital.Name, Rating: rating})
}
