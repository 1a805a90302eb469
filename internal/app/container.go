package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"motel-admin-backend/internal/api"
	"motel-admin-backend/internal/booking"
	"motel-admin-backend/internal/customer"
	"motel-admin-backend/internal/extension"
	"motel-admin-backend/internal/metrics"
	"motel-admin-backend/internal/pkg/listcache"
	"motel-admin-backend/internal/pricing"
	"motel-admin-backend/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	DBPool             *pgxpool.Pool
	Redis              *redis.Client // nil disables list caching
	ListCacheTTL       time.Duration
	ClampNegativeHours bool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	metrics.Register()

	calc := pricing.Calculator{ClampNonNegative: cfg.ClampNegativeHours}

	cache := listcache.Disabled()
	if cfg.Redis != nil {
		cache = listcache.NewRedis(cfg.Redis, cfg.ListCacheTTL)
	}

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, cache)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, calc, cache)

	// Customer Module
	customerRepo := customer.NewPgxRepository(cfg.DBPool)
	customerService := customer.NewService(customerRepo)

	// Extension Module
	extRepo := extension.NewPgxRepository(cfg.DBPool)
	extService := extension.NewService(extRepo, bookingService, calc, cache)

	router := api.NewRouter(api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		RoomService:      roomService,
		BookingService:   bookingService,
		CustomerService:  customerService,
		ExtensionService: extService,
	})

	return &Container{
		Router: router,
	}
}
