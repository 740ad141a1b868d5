package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/TanmayElinje/inventory-pro/internal/infrastructure/realtime"
	"github.com/TanmayElinje/inventory-pro/pkg/jwt"
)

// WSUpgrade gates the websocket endpoint: the request must be an upgrade and
// must carry a valid JWT in the token query parameter. Browsers cannot set
// an Authorization header on a websocket handshake, hence the query param.
func WSUpgrade(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		token := c.Query("token")
		if token == "" {
			return fiber.ErrUnauthorized
		}
		userID, _, _, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// ProductStream returns the websocket handler that attaches a connection to
// the broadcast hub. The server only pushes; inbound messages are read and
// discarded to service control frames and detect disconnects.
func ProductStream(hub *realtime.Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		hub.Register(c)
		defer func() {
			hub.Unregister(c)
			_ = c.Close()
		}()
		log.Debug().Int("clients", hub.Count()).Msg("websocket client connected")
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	})
}
