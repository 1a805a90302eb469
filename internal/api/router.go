package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"motel-admin-backend/internal/booking"
	bookingHttp "motel-admin-backend/internal/booking/http"
	"motel-admin-backend/internal/customer"
	customerHttp "motel-admin-backend/internal/customer/http"
	"motel-admin-backend/internal/extension"
	extensionHttp "motel-admin-backend/internal/extension/http"
	"motel-admin-backend/internal/room"
	roomHttp "motel-admin-backend/internal/room/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	RoomService      room.Service
	BookingService   booking.Service
	CustomerService  customer.Service
	ExtensionService extension.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request logging, recovery, CORS) and registers
// routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	customerHandler := customerHttp.NewHandler(cfg.CustomerService)
	extensionHandler := extensionHttp.NewHandler(cfg.ExtensionService)

	roomHttp.RegisterRoutes(r, roomHandler)
	bookingHttp.RegisterRoutes(r, bookingHandler)
	customerHttp.RegisterRoutes(r, customerHandler)
	extensionHttp.RegisterRoutes(r, extensionHandler)

	return r
}
