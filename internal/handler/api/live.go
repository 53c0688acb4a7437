package api

import (
	"net/http"
	"time"

	models "CricPull/internal/domain/models"
	"CricPull/internal/usecase"
	xlogger "CricPull/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	liveWriteTimeout = 10 * time.Second
	liveReadLimit    = 1 << 16
)

// LiveHandler runs a live-scoring session over a websocket: the client
// streams match states as it scores a game, and gets a fresh prediction
// back for each one. One connection is one session; errors on a message
// are reported in-band and the session continues.
type LiveHandler struct {
	logger    *xlogger.Logger
	predictor *usecase.Predictor
	upgrader  websocket.Upgrader
}

type liveReply struct {
	Prediction *models.Prediction `json:"prediction,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func NewLiveHandler(logger *xlogger.Logger, predictor *usecase.Predictor) *LiveHandler {
	return &LiveHandler{
		logger:    logger,
		predictor: predictor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *LiveHandler) Session(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	conn.SetReadLimit(liveReadLimit)

	ctx := c.Request().Context()
	for {
		req := &models.PredictRequest{}
		if err := conn.ReadJSON(req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("live session read error", xlogger.Error(err))
			}
			return nil
		}

		reply := liveReply{}
		res, err := h.predictor.Predict(ctx, req)
		if err != nil {
			h.logger.Error("live prediction error", xlogger.Error(err))
			reply.Error = "prediction unavailable"
		} else {
			reply.Prediction = &res
		}

		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			h.logger.Warn("live session write error", xlogger.Error(err))
			return nil
		}
	}
}
