// Package web provides a real-time monitor dashboard for a navigation
// session: a JSON state snapshot plus a live websocket event stream. It
// observes the decision engine only; it never feeds back into it.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/pathsense/go-pathsense/pkg/guidance"
	"github.com/pathsense/go-pathsense/pkg/hub"
)

// SnapshotFunc supplies the current session snapshot for /api/state.
type SnapshotFunc func() guidance.Snapshot

// Server is the monitor dashboard server.
type Server struct {
	app      *fiber.App
	port     string
	logger   *slog.Logger
	snapshot SnapshotFunc
	eventHub *hub.Hub
}

// NewServer creates a monitor server on the given port. snapshot supplies
// the state endpoint; events are pushed via Publish.
func NewServer(port string, snapshot SnapshotFunc) *Server {
	s := &Server{
		port:     port,
		logger:   slog.Default().With("component", "web.monitor"),
		snapshot: snapshot,
		eventHub: hub.New("events"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "pathsense monitor",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/health", s.handleHealth)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(s.handleEventsWS))

	s.app = app
	return s
}

// Publish broadcasts one guidance event to all dashboard clients.
// Safe to hand directly to guidance.WithEventHandler: it never blocks.
func (s *Server) Publish(ev guidance.Event) {
	if err := s.eventHub.BroadcastJSON(ev); err != nil {
		s.logger.Warn("event encode failed", "error", err)
	}
}

// Start runs the hub and serves HTTP. Blocks.
func (s *Server) Start() error {
	s.logger.Info("monitor listening", "addr", "http://localhost:"+s.port)
	go s.eventHub.Run()
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("monitor server error", "error", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.snapshot())
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"clients": s.eventHub.ClientCount(),
	})
}

func (s *Server) handleEventsWS(conn *websocket.Conn) {
	client := hub.NewClient(s.eventHub, conn)
	client.Run()
}
