package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addEquipmentHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/add_equipment"
	checkAvailabilityHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/check_availability"
	createBookingHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/create_booking"
	getBookingHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/list_bookings"
	listCoachesHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/list_coaches"
	listCourtsHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/list_courts"
	listEquipmentHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/list_equipment"
	listPricingRulesHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/list_pricing_rules"
	previewPriceHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/preview_price"
	revenueReportHandler "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers/revenue_report"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/middleware"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/config"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/cache/refcache"
	bookingRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/booking"
	coachRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/coach"
	courtRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/court"
	equipmentRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/equipment"
	pricingRuleRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/pricingrule"
	availabilityService "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/availability"
	bookingsService "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/bookings"
	catalogService "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/catalog"
	pricingService "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/pricing"
	reportsService "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/reports"
	createBookingUC "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/usecase/create_booking"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/dbmetrics"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/logger"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/metrics"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/simpletxmanager"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/txmanager"
)

// Источники справочных данных: либо репозиторий напрямую, либо Redis декоратор
type courtSource interface {
	List(ctx context.Context) ([]*domain.Court, error)
	GetByID(ctx context.Context, id string) (*domain.Court, error)
}

type coachSource interface {
	List(ctx context.Context) ([]*domain.Coach, error)
	GetByID(ctx context.Context, id string) (*domain.Coach, error)
}

type equipmentSource interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

type ruleSource interface {
	List(ctx context.Context) ([]*domain.PricingRule, error)
}

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting Sport-Court-Booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		courtRepository       *courtRepo.Repository
		coachRepository       *coachRepo.Repository
		equipmentRepository   *equipmentRepo.Repository
		pricingRuleRepository *pricingRuleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		coachRepository = coachRepo.NewRepository(wrappedDB)
		equipmentRepository = equipmentRepo.NewRepository(wrappedDB)
		pricingRuleRepository = pricingRuleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		coachRepository = coachRepo.NewRepository(db)
		equipmentRepository = equipmentRepo.NewRepository(db)
		pricingRuleRepository = pricingRuleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Источники справочных данных: через Redis кэш, если он включен
	var (
		courts      courtSource     = courtRepository
		coaches     coachSource     = coachRepository
		equipment   equipmentSource = equipmentRepository
		rules       ruleSource      = pricingRuleRepository
		invalidator catalogService.CacheInvalidator
	)

	if cfg.Redis.Enabled {
		redisClient := refcache.NewClient(cfg.Redis)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache := refcache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		equipmentCache := refcache.NewEquipment(cache, equipmentRepository)

		courts = refcache.NewCourts(cache, courtRepository)
		coaches = refcache.NewCoaches(cache, coachRepository)
		equipment = equipmentCache
		rules = refcache.NewRules(cache, pricingRuleRepository)
		invalidator = equipmentCache

		log.Info("Reference data cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.TTLSeconds)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, log)
	pricingSvc := pricingService.NewService(courts, coaches, equipment, rules, log)
	catalogSvc := catalogService.NewService(courts, coaches, equipment, equipmentRepository, rules, invalidator, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	reportsSvc := reportsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		pricingSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	previewPrice := previewPriceHandler.NewHandler(pricingSvc, log)
	listCourts := listCourtsHandler.NewHandler(catalogSvc, log)
	listCoaches := listCoachesHandler.NewHandler(catalogSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(catalogSvc, log)
	listPricingRules := listPricingRulesHandler.NewHandler(catalogSvc, log)
	addEquipment := addEquipmentHandler.NewHandler(catalogSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	revenueReport := revenueReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов (если включено)
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочные данные
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coaches", listCoaches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing-rules", listPricingRules.Handle).Methods(http.MethodGet)

	// Проверка доступности слота
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Предварительный расчет цены (без записи)
	api.HandleFunc("/bookings/preview", previewPrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список всех бронирований (админская панель)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Управление каталогом и отчеты (для администраторов) ---
	// Добавление позиции инвентаря
	protected.HandleFunc("/equipment", addEquipment.Handle).Methods(http.MethodPost)

	// Отчет о выручке
	protected.HandleFunc("/reports/revenue", revenueReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/revenue/export", revenueReport.HandleExport).Methods(http.MethodGet)

	// Создаем HTTP сервер
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
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

	log.Info("Server stopped gracefully")
}
