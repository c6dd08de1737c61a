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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/book_slot"
	checkoutHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/checkout"
	completePaymentHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/complete_payment"
	getLotConfigHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_lot_config"
	getPaymentsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_payments"
	getSlotGridHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slot_grid"
	getSummaryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_summary"
	loginHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/login"
	recognizePlateHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/recognize_plate"
	registerHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	accountRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/account"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/platerecognizer"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/ticketexporter"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
	accountsService "github.com/m04kA/SMC-ParkingService/internal/service/accounts"
	reportingService "github.com/m04kA/SMC-ParkingService/internal/service/reporting"
	bookSlotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
	checkoutUC "github.com/m04kA/SMC-ParkingService/internal/usecase/checkout"
	completePaymentUC "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_payment"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml (slots=%d, price=%.2f %s/hour)",
		cfg.Parking.TotalSlots, cfg.Parking.PricePerHour, cfg.Parking.Currency)

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

	// Инициализируем интеграции
	ticketExporter := ticketexporter.NewExporter(cfg.Tickets.Dir, log)
	plateRecognizer := platerecognizer.NewClient(
		cfg.PlateRecognition.Enabled,
		cfg.PlateRecognition.URL,
		time.Duration(cfg.PlateRecognition.Timeout)*time.Second,
		log,
	)
	log.Info("Integrations initialized (tickets dir=%s, plate recognition available=%v)",
		cfg.Tickets.Dir, plateRecognizer.Available())

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		paymentRepository *paymentRepo.Repository
		accountRepository *accountRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		accountRepository = accountRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		accountRepository = accountRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	accountsSvc := accountsService.NewService(accountRepository, log)
	reportingSvc := reportingService.NewService(
		bookingRepository,
		paymentRepository,
		cfg.Parking.TotalSlots,
		log,
	)

	// Сидируем учетные записи по умолчанию (admin, user)
	if err := accountsSvc.EnsureDefaultAccounts(context.Background()); err != nil {
		log.Fatal("Failed to seed default accounts: %v", err)
	}

	// Инициализируем use cases
	tariff := pricing.Tariff{PricePerHour: cfg.Parking.PricePerHour}

	bookSlotUseCase := bookSlotUC.NewUseCase(
		bookingRepository,
		ticketExporter,
		txMgr,
		cfg.Parking.TotalSlots,
		log,
	)

	checkoutUseCase := checkoutUC.NewUseCase(
		bookingRepository,
		tariff,
		cfg.Parking.TotalSlots,
		log,
	)

	completePaymentUseCase := completePaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		txMgr,
		log,
	)

	// Инициализируем менеджер токенов
	tokens := middleware.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(accountsSvc, tokens, log)
	register := registerHandler.NewHandler(accountsSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	completePayment := completePaymentHandler.NewHandler(completePaymentUseCase, log)
	getSlotGrid := getSlotGridHandler.NewHandler(reportingSvc, log)
	getSummary := getSummaryHandler.NewHandler(reportingSvc, log)
	getPayments := getPaymentsHandler.NewHandler(reportingSvc, log)
	getLotConfig := getLotConfigHandler.NewHandler(
		cfg.Parking.TotalSlots,
		cfg.Parking.PricePerHour,
		cfg.Parking.Currency,
		plateRecognizer,
		log,
	)
	recognizePlate := recognizePlateHandler.NewHandler(plateRecognizer, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
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

	// Вход в систему
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Регистрация нового пользователя
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens))

	// --- Бронирование и выезд ---
	// Бронирование места
	protected.HandleFunc("/bookings", bookSlot.Handle).Methods(http.MethodPost)

	// Расчет стоимости стоянки перед выездом
	protected.HandleFunc("/slots/{slotNo}/checkout", checkout.Handle).Methods(http.MethodPost)

	// Подтверждение оплаты и освобождение места
	protected.HandleFunc("/slots/{slotNo}/payment", completePayment.Handle).Methods(http.MethodPost)

	// --- Просмотр состояния парковки ---
	// Состояние всех мест
	protected.HandleFunc("/slots", getSlotGrid.Handle).Methods(http.MethodGet)

	// Сводка занятости и выручки
	protected.HandleFunc("/summary", getSummary.Handle).Methods(http.MethodGet)

	// --- Распознавание номера машины ---
	protected.HandleFunc("/plates/recognize", recognizePlate.Handle).Methods(http.MethodPost)

	// --- Администрирование ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// История платежей
	admin.HandleFunc("/payments", getPayments.Handle).Methods(http.MethodGet)

	// Конфигурация парковки
	admin.HandleFunc("/lot/config", getLotConfig.Handle).Methods(http.MethodGet)

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
