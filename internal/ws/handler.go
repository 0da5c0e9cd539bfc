package ws

import (
	"net/http"
	"strings"

	"skillseeker/internal/pkg/jwt"
	"skillseeker/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub *Hub
	jwt jwt.Service
	log *logger.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, log *logger.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, log: log}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleEvents upgrades the connection and binds it to the token's user.
// Browsers cannot set headers on websocket requests, so the access token
// is also accepted as a ?token= query parameter.
func (h *Handler) HandleEvents(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := tokenFromRequest(c)
	if token == "" {
		return fiber.ErrUnauthorized
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil || h.jwt.IsRefreshToken(claims) {
		return fiber.ErrUnauthorized
	}
	userID := claims.UserID

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Warn("ws upgrade failed", "error", err)
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func tokenFromRequest(c fiber.Ctx) string {
	if t := strings.TrimSpace(c.Query("token")); t != "" {
		return t
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
