package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/response"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// EventSource is the subscription side of the change-event broker
type EventSource interface {
	Subscribe() (<-chan domain.ChangeEvent, func())
	SubscriberCount() int
}

type EventHandler struct {
	source  EventSource
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewEventHandler(source EventSource, m *metrics.Metrics, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		source:  source,
		metrics: m,
		logger:  logger,
	}
}

// StreamEvents godoc
// @Summary      변경 이벤트 스트림
// @Description  필드, 옵션, 값 변경 이벤트를 WebSocket JSON 텍스트 프레임으로 전달합니다
// @Tags         events
// @Param        entityType query string false "Entity Type 필터" Enums(equipment, maintenance, site)
// @Success      101 {object} domain.ChangeEvent "WebSocket 업그레이드"
// @Failure      400 {object} response.ErrorResponse "잘못된 엔티티 타입"
// @Router       /events/ws [get]
func (h *EventHandler) StreamEvents(c *gin.Context) {
	var filter *domain.EntityType
	if raw := c.Query("entityType"); raw != "" {
		et, ok := domain.ParseEntityType(raw)
		if !ok {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entity type: "+raw)
			return
		}
		filter = &et
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, unsubscribe := h.source.Subscribe()
	h.metrics.SetEventSubscribers(h.source.SubscriberCount())
	h.logger.Info("Event stream opened", zap.String("remote", c.ClientIP()))

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, events, done, filter)

	unsubscribe()
	h.metrics.SetEventSubscribers(h.source.SubscriberCount())
	h.logger.Info("Event stream closed", zap.String("remote", c.ClientIP()))
}

// readPump only services control frames; it closes done when the peer goes away
func (h *EventHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("Event stream read error", zap.Error(err))
			}
			return
		}
	}
}

func (h *EventHandler) writePump(conn *websocket.Conn, events <-chan domain.ChangeEvent, done <-chan struct{}, filter *domain.EntityType) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if filter != nil && event.EntityType != *filter {
				continue
			}
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("Event stream write failed", zap.Error(err))
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
