package ws

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/notify"
)

const defaultSendBuffer = 16

type Registry interface {
	Register(channel notify.Channel)
	Unregister(channel notify.Channel)
}

type Handler struct {
	registry Registry
	upgrader websocket.Upgrader
	buffer   int
}

func New(registry Registry, buffer int) *Handler {
	if buffer <= 0 {
		buffer = defaultSendBuffer
	}

	return &Handler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		buffer: buffer,
	}
}

// Connect upgrades the request and registers the connection as a push
// channel named by the {sid} path parameter.
func (h *Handler) Connect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := chi.URLParam(r, "sid")
		if len(sid) == 0 {
			sid = uuid.NewString()
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			zap.L().Error("error while upgrading push channel", zap.String("sid", sid), zap.Error(err))
			return
		}

		client := newClient(sid, conn, h.buffer)
		h.registry.Register(client)

		go client.writePump()
		go func() {
			client.readPump()
			h.registry.Unregister(client)
			_ = client.Close()
		}()
	}
}
