package api

import (
	"context"
	"time"

	models "CricPull/internal/domain/models"
	domrepo "CricPull/internal/domain/repository"
	"CricPull/internal/usecase"
	xhttp "CricPull/pkg/http"
	xlogger "CricPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictHandler serves final-score predictions and health over Echo.
type PredictHandler struct {
	logger    *xlogger.Logger
	predictor *usecase.Predictor
	events    domrepo.EventStore
	live      *LiveHandler
}

func NewPredictHandler(
	logger *xlogger.Logger,
	predictor *usecase.Predictor,
	events domrepo.EventStore,
	live *LiveHandler,
) *PredictHandler {
	return &PredictHandler{
		logger:    logger,
		predictor: predictor,
		events:    events,
		live:      live,
	}
}

func (h *PredictHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/predict", h.Predict)
	g.GET("/health", h.Health)
	if h.live != nil {
		g.GET("/live", h.live.Session)
	}
}

func (h *PredictHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.predictor.Predict(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("predict usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("prediction unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PredictHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	if h.events != nil {
		if err := h.events.Health(ctx); err != nil {
			h.logger.Warn("event store unhealthy", xlogger.Error(err))
			status["status"] = "degraded"
			status["event_store"] = err.Error()
		}
	}
	return xhttp.SuccessResponse(c, status)
}
