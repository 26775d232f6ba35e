package mockstore

import (
	"go-grocer-tab/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp assembles the development backend: collection routes plus a /ws
// endpoint streaming change events. The hub's Run loop must be started by
// the caller.
func NewApp(store *Store, hub *ws.Hub) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "GrocerTab Mock Store",
		DisableStartupMessage: true,
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS for the browser dashboard

	NewHandler(store, hub).RegisterRoutes(app)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	return app
}

// DemoUsers is the seed user list for a fresh store, matching the demo
// credentials the original dashboard shipped with.
func DemoUsers() []map[string]any {
	return []map[string]any{
		{"username": "admin", "password": "password123", "role": "Owner"},
		{"username": "clerk", "password": "clerk123", "role": "Clerk"},
	}
}
