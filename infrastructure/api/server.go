package api

import (
	"context"
	"fmt"
	"log/slog"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/infrastructure/ws"
	"tienda-live/observability"
	"tienda-live/services"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ConnectionStats interface {
	Stats() domain.ConnectionStats
}

type ProcessStats interface {
	GetLatest() observability.ProcessStats
}

type RecentNotifications interface {
	Recent(storeID domain.StoreID, limit int) []event.Notification
}

type Dependencies struct {
	Orders      services.IOrderService
	Promotions  services.IPromotionService
	Redemption  contract.IRedemptionService
	Configs     services.IConfigService
	Reviews     services.IReviewService
	Connections ConnectionStats
	Process     ProcessStats
	Recent      RecentNotifications
	Gatherer    prometheus.Gatherer
	Socket      *ws.Handler
}

type Server struct {
	log  *slog.Logger
	app  *fiber.App
	addr string
	deps Dependencies
}

func NewServer(log *slog.Logger, addr string, allowedOrigins string, deps Dependencies) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "tienda-live",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestLogger(log))
	if allowedOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders: "Content-Type,Authorization",
		}))
	}

	s := &Server{log: log, app: app, addr: addr, deps: deps}
	s.routes()
	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) routes() {
	s.app.Get("/health", s.health)
	if s.deps.Gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))
	}
	if s.deps.Socket != nil {
		s.deps.Socket.Register(s.app)
	}

	api := s.app.Group("/api")
	api.Get("/socket/stats", s.socketStats)
	api.Get("/socket/recientes/:tiendaId", s.recentNotifications)

	orders := api.Group("/ordenes")
	orders.Post("/", s.createOrder)
	orders.Get("/numero/:numero", s.getOrder)
	orders.Get("/buscar/:tiendaId", s.searchOrders)
	orders.Get("/tienda/:tiendaId", s.listOrders)
	orders.Get("/stats/:tiendaId", s.orderStats)
	orders.Put("/:numero/estado", s.updateOrderStatus)
	orders.Post("/:numero/notificar", s.notifyStore)
	orders.Post("/:numero/notificar-cliente", s.notifyCustomers)

	config := api.Group("/configuracion")
	config.Get("/tienda/:tiendaId", s.getConfig)
	config.Put("/tienda/:tiendaId", s.updateConfig)
	config.Get("/eventos/:tiendaId", s.listPromotions)
	config.Get("/evento/:eventoId", s.getPromotion)
	config.Post("/evento", s.createPromotion)
	config.Put("/evento/:eventoId", s.updatePromotion)
	config.Delete("/evento/:eventoId", s.deletePromotion)
	config.Post("/validar-codigo", s.validateCode)
	config.Post("/usar-codigo", s.redeemCode)

	reviews := api.Group("/comentarios")
	reviews.Post("/", s.submitReview)
	reviews.Get("/tienda/:tiendaId", s.publishedReviews)
	reviews.Get("/pendientes/:tiendaId", s.pendingReviews)
	reviews.Get("/stats/:tiendaId", s.reviewStats)
	reviews.Put("/:id/aprobar", s.approveReview)
	reviews.Delete("/:id", s.deleteReview)
}

// Run serves until ctx is done, then drains open requests for at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "address", s.addr, "at", time.Now().UTC())
		if err := s.app.Listen(s.addr); err != nil {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	if s.deps.Socket != nil {
		s.deps.Socket.Close()
	}
	s.log.Info("Stopping HTTP server")
	return s.app.ShutdownWithTimeout(shutdownTimeout)
}

func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug("HTTP request", "method", c.Method(), "path", c.Path(), "status", c.Response().StatusCode(), "latency", time.Since(start))
		return err
	}
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().UTC()})
}

func (s *Server) socketStats(c *fiber.Ctx) error {
	body := fiber.Map{"timestamp": time.Now().UTC()}
	if s.deps.Connections != nil {
		stats := s.deps.Connections.Stats()
		body["totalConnections"] = stats.TotalConnections
		body["activeTiendas"] = stats.ActiveStores
		body["connectionsByTienda"] = stats.ConnectionsByStore
		body["adminsByTienda"] = stats.AdminsByStore
		body["clientesByTienda"] = stats.CustomersByStore
		body["ordenesSeguidas"] = stats.TrackedOrders
	}
	if s.deps.Process != nil {
		body["process"] = s.deps.Process.GetLatest()
	}
	return c.JSON(body)
}

const defaultRecentLimit = 20

// recentNotifications returns the last store broadcasts, in the same shape clients get on the socket.
func (s *Server) recentNotifications(c *fiber.Ctx) error {
	if s.deps.Recent == nil {
		return c.JSON([]fiber.Map{})
	}
	limit := c.QueryInt("limit", defaultRecentLimit)
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	recent := s.deps.Recent.Recent(storeID, limit)
	body := make([]fiber.Map, 0, len(recent))
	for _, n := range recent {
		body = append(body, fiber.Map{"event": n.Name, "data": n.Payload()})
	}
	return c.JSON(body)
}
