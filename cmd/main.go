package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	getDateAvailabilityHandler "github.com/m04kA/SMC-RouteAvailability/internal/api/handlers/get_date_availability"
	getScheduleHandler "github.com/m04kA/SMC-RouteAvailability/internal/api/handlers/get_schedule"
	getTimeSlotsHandler "github.com/m04kA/SMC-RouteAvailability/internal/api/handlers/get_time_slots"
	updateScheduleHandler "github.com/m04kA/SMC-RouteAvailability/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-RouteAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-RouteAvailability/internal/config"
	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	scheduleCache "github.com/m04kA/SMC-RouteAvailability/internal/infra/cache/schedule"
	organizationRepo "github.com/m04kA/SMC-RouteAvailability/internal/infra/storage/organization"
	routeRepo "github.com/m04kA/SMC-RouteAvailability/internal/infra/storage/route"
	getDateAvailabilityUC "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_date_availability"
	getScheduleUC "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_schedule"
	getTimeSlotsUC "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_time_slots"
	updateScheduleUC "github.com/m04kA/SMC-RouteAvailability/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-RouteAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-RouteAvailability/pkg/logger"
	"github.com/m04kA/SMC-RouteAvailability/pkg/metrics"
)

// organizationStore репозиторий расписаний, напрямую или через кэш
type organizationStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	Upsert(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
}

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RouteAvailability...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		organizationRepository *organizationRepo.Repository
		routeRepository        *routeRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		organizationRepository = organizationRepo.NewRepository(wrappedDB)
		routeRepository = routeRepo.NewRepository(wrappedDB)
	} else {
		organizationRepository = organizationRepo.NewRepository(db)
		routeRepository = routeRepo.NewRepository(db)
	}

	// Кэш расписаний в Redis (опционально)
	var organizations organizationStore = organizationRepository
	var redisClient *redis.Client

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, cache will fall back to database: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		organizations = scheduleCache.NewCache(organizationRepository, redisClient, cfg.Redis.TTL(), metricsCollector, log)
		log.Info("Schedule cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	}

	// Инициализируем use cases
	getDateAvailabilityUseCase := getDateAvailabilityUC.NewUseCase(organizations, location, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(organizations, routeRepository, metricsCollector, location, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(organizations, routeRepository, log)
	updateScheduleUseCase := updateScheduleUC.NewUseCase(organizations, log)

	// Инициализируем handlers
	getDateAvailability := getDateAvailabilityHandler.NewHandler(getDateAvailabilityUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Доступность дат на 15 дней вперед
	api.HandleFunc("/organizations/{organizationId}/availability",
		getDateAvailability.Handle).Methods(http.MethodGet)

	// Слоты маршрута на дату
	api.HandleFunc("/organizations/{organizationId}/routes/{routeId}/slots",
		getTimeSlots.Handle).Methods(http.MethodGet)

	// Расписание организации и активные маршруты
	api.HandleFunc("/organizations/{organizationId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/organizations/{organizationId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (timezone=%s)", addr, location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
