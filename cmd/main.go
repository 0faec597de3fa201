package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	auditapp "github.com/aquatour/crm-backend/application/audit"
	authapp "github.com/aquatour/crm-backend/application/auth"
	clientapp "github.com/aquatour/crm-backend/application/client"
	contactapp "github.com/aquatour/crm-backend/application/contact"
	destinationapp "github.com/aquatour/crm-backend/application/destination"
	guardapp "github.com/aquatour/crm-backend/application/guard"
	paymentapp "github.com/aquatour/crm-backend/application/payment"
	providerapp "github.com/aquatour/crm-backend/application/provider"
	quoteapp "github.com/aquatour/crm-backend/application/quote"
	reservationapp "github.com/aquatour/crm-backend/application/reservation"
	packageapp "github.com/aquatour/crm-backend/application/travelpackage"
	"github.com/aquatour/crm-backend/application/uniqueness"
	userapp "github.com/aquatour/crm-backend/application/user"
	"github.com/aquatour/crm-backend/cmd/config"
	redisclient "github.com/aquatour/crm-backend/cmd/redis"
	auditRepo "github.com/aquatour/crm-backend/repository/audit"
	clientRepo "github.com/aquatour/crm-backend/repository/client"
	contactRepo "github.com/aquatour/crm-backend/repository/contact"
	destinationRepo "github.com/aquatour/crm-backend/repository/destination"
	lookupRepo "github.com/aquatour/crm-backend/repository/lookup"
	paymentRepo "github.com/aquatour/crm-backend/repository/payment"
	providerRepo "github.com/aquatour/crm-backend/repository/provider"
	quoteRepo "github.com/aquatour/crm-backend/repository/quote"
	redisRepo "github.com/aquatour/crm-backend/repository/redis"
	reservationRepo "github.com/aquatour/crm-backend/repository/reservation"
	packageRepo "github.com/aquatour/crm-backend/repository/travelpackage"
	txRepo "github.com/aquatour/crm-backend/repository/tx"
	userRepo "github.com/aquatour/crm-backend/repository/user"
	"github.com/aquatour/crm-backend/thirdparty/rabbitmq"
	"github.com/aquatour/crm-backend/transport"
	"github.com/aquatour/crm-backend/utils/logger"
	validatorx "github.com/aquatour/crm-backend/utils/validator"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis backs sessions and rate limiting; the service degrades
	// without it when disabled
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg.Redis); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// RabbitMQ fans audit events out to downstream consumers
	var publisher auditapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		rabbit, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer rabbit.Close()
		publisher = rabbit
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ClientRepo := clientRepo.NewClientRepository(db)
	ProviderRepo := providerRepo.NewProviderRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	DestinationRepo := destinationRepo.NewDestinationRepository(db)
	PackageRepo := packageRepo.NewPackageRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	QuoteRepo := quoteRepo.NewQuoteRepository(db)
	PaymentRepo := paymentRepo.NewPaymentRepository(db)
	LookupRepo := lookupRepo.NewLookupRepository(db)
	AuditRepo := auditRepo.NewAuditRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	Unique := uniqueness.NewValidator(LookupRepo)
	Guard := guardapp.NewGuard(QuoteRepo, ReservationRepo, PaymentRepo)
	Recorder := auditapp.NewRecorder(AuditRepo, UserRepo, publisher)
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo, Recorder)
	UserApp := userapp.NewUserApp(cfg, UserRepo, Unique, Recorder)
	ClientApp := clientapp.NewClientApp(ClientRepo, Unique, Guard, Recorder)
	ProviderApp := providerapp.NewProviderApp(ProviderRepo, Unique, Recorder)
	ContactApp := contactapp.NewContactApp(ContactRepo, Unique, Recorder)
	DestinationApp := destinationapp.NewDestinationApp(DestinationRepo, Recorder)
	PackageApp := packageapp.NewPackageApp(PackageRepo, Guard, Recorder)
	ReservationApp := reservationapp.NewReservationApp(ReservationRepo, Guard, Recorder)
	QuoteApp := quoteapp.NewQuoteApp(QuoteRepo, TxRepo, Recorder)
	PaymentApp := paymentapp.NewPaymentApp(PaymentRepo, ReservationRepo, QuoteRepo, Recorder)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:         cfg,
		AuthApp:        AuthApp,
		UserApp:        UserApp,
		ClientApp:      ClientApp,
		ProviderApp:    ProviderApp,
		ContactApp:     ContactApp,
		DestinationApp: DestinationApp,
		PackageApp:     PackageApp,
		ReservationApp: ReservationApp,
		QuoteApp:       QuoteApp,
		PaymentApp:     PaymentApp,
		Unique:         Unique,
		Recorder:       Recorder,
		RedisRepo:      RedisRepo,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
