package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	contragentapp "github.com/documentflow/backend/internal/application/contragent"
	docflowapp "github.com/documentflow/backend/internal/application/docflow"
	identityapp "github.com/documentflow/backend/internal/application/identity"
	"github.com/documentflow/backend/internal/infrastructure/auth"
	"github.com/documentflow/backend/internal/infrastructure/config"
	"github.com/documentflow/backend/internal/infrastructure/logger"
	"github.com/documentflow/backend/internal/infrastructure/persistence"
	"github.com/documentflow/backend/internal/interfaces/http/handler"
	"github.com/documentflow/backend/internal/interfaces/http/middleware"
	"github.com/documentflow/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Documentflow Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	personRepo := persistence.NewGormPersonRepository(db.DB)
	organizationRepo := persistence.NewGormOrganizationRepository(db.DB)
	contragentRepo := persistence.NewGormContragentRepository(db.DB)
	docInRepo := persistence.NewGormDocInRepository(db.DB)
	docOutRepo := persistence.NewGormDocOutRepository(db.DB)
	stateRepo := persistence.NewGormStateRepository(db.DB)
	docTypeRepo := persistence.NewGormDocTypeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)

	contragentScope := persistence.NewGormContragentTransactionScope(db)
	docflowScope := persistence.NewGormDocflowTransactionScope(db)

	// Auth infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			_ = redisBlacklist.Close()
		}()
	}

	// Application services
	contragentService := contragentapp.NewContragentService(addressRepo, personRepo, organizationRepo, contragentRepo, contragentScope)
	personService := contragentapp.NewPersonService(personRepo, addressRepo, contragentRepo, contragentScope)
	organizationService := contragentapp.NewOrganizationService(organizationRepo, personRepo, addressRepo, contragentRepo, contragentScope)
	addressService := contragentapp.NewAddressService(addressRepo, contragentRepo, contragentScope)
	docInService := docflowapp.NewDocInService(docInRepo, stateRepo, docTypeRepo, docflowScope)
	docOutService := docflowapp.NewDocOutService(docOutRepo, stateRepo, docTypeRepo, docflowScope)
	lookupService := docflowapp.NewLookupService(stateRepo, docTypeRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist)
	userService := identityapp.NewUserService(userRepo, departmentRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.JWTAuth(middleware.JWTConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
	}))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	r := router.NewRouter(engine)
	r.Register(handler.NewContragentHandler(contragentService, personService, organizationService, addressService))
	r.Register(handler.NewDocsHandler(docInService, docOutService, lookupService))
	r.Register(handler.NewAuthHandler(authService))
	r.Register(handler.NewUserHandler(userService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}
