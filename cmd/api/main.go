package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nimasrn/money-management/internal/auth"
	"github.com/nimasrn/money-management/internal/config"
	"github.com/nimasrn/money-management/internal/handlers"
	"github.com/nimasrn/money-management/internal/idempotency"
	"github.com/nimasrn/money-management/internal/report"
	"github.com/nimasrn/money-management/internal/repository"
	"github.com/nimasrn/money-management/internal/services"
	xhttp "github.com/nimasrn/money-management/pkg/http"
	"github.com/nimasrn/money-management/pkg/logger"
	"github.com/nimasrn/money-management/pkg/pg"
	"github.com/nimasrn/money-management/pkg/prom"
	"github.com/nimasrn/money-management/pkg/redis"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	cfg := config.Get()
	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			logger.Warn("ignoring LOG_LEVEL", "value", cfg.LogLevel, "error", err)
		}
	}
	logger.Info("starting api", "version", version, "commit", commit, "date", date)
	defer logger.Sync()

	s := xhttp.CreateServer()
	s.Use(xhttp.CORSMiddleware(cfg.HttpCorsAllowOrigin))
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 10))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)

	db, err := pg.CreateReadWrite(cfg.ReadDB(), cfg.WriteDB(), cfg.AppDebug)
	if err != nil {
		logger.Error("failed connecting to database", "driver", cfg.DbDriver, "error", err)
		return
	}
	// postgres is migrated with cmd/cli, a local sqlite file is created in place
	if cfg.DbDriver == pg.DriverSqlite {
		if err := db.AutoMigrate(repository.Entities()...); err != nil {
			logger.Error("failed migrating sqlite database", "error", err)
			return
		}
	}

	var revocations *auth.RevocationStore
	var idempotent *idempotency.Store
	var redisPinger services.Pinger
	if cfg.RedisAddr != "" {
		redisAdap, err := redis.NewRedisAdapter("default", cfg.RedisUniversalKeyPrefix, &redis.Options{
			Addrs:      []string{cfg.RedisAddr},
			ClientName: cfg.AppName,
			DB:         cfg.RedisDatabase,
			Username:   cfg.RedisUsername,
			Password:   cfg.RedisPassword,
		})
		if err != nil {
			logger.Error("failed connecting to redis", "error", err)
			return
		}
		revocations = auth.NewRevocationStore(redisAdap)
		idempotent = idempotency.NewStore(redisAdap, idempotency.DefaultConfig())
		redisPinger = redisAdap
	} else {
		logger.Warn("REDIS_ADDR is empty, sign-out will not revoke tokens and Idempotency-Key is ignored")
	}

	if cfg.AppDebugMetricsAddr != "" {
		host, _ := os.Hostname()
		if err := prom.Create(host, cfg.AppEnv, cfg.PromNamespace); err != nil {
			logger.Error("failed registering metrics", "error", err)
		}
		go prom.ListenAndServer(cfg.AppDebugMetricsAddr, cfg.AppDebugMetricsURI)
	}

	clientRepo := repository.NewClientRepository(db)
	adjustmentRepo := repository.NewBalanceAdjustmentRepository(db)
	transactionRepo := repository.NewPaymentTransactionRepository(db)

	// services
	ledgerService := services.NewLedgerService(clientRepo, adjustmentRepo, transactionRepo)
	dashboardService := services.NewDashboardService(clientRepo, adjustmentRepo, transactionRepo, report.Renderer{LogoPath: cfg.ReportLogoPath})
	healthService := services.NewHealthService(db, redisPinger)

	// auth
	var authenticator *auth.Authenticator
	var authHandler *handlers.AuthHandler
	verifier := auth.NewVerifier(cfg.AuthJwtSecret, cfg.AuthJwtIssuer)
	if revocations != nil {
		authenticator = auth.NewAuthenticator(verifier, revocations)
		authHandler = handlers.NewAuthHandler(revocations)
	} else {
		authenticator = auth.NewAuthenticator(verifier, nil)
		authHandler = handlers.NewAuthHandler(nil)
	}
	guard := authenticator.Require
	if idempotent != nil {
		guard = func(next xhttp.RequestHandler) xhttp.RequestHandler {
			return authenticator.Require(idempotent.Middleware(next))
		}
	}

	// v1 handlers
	g := s.Router.Group(cfg.HttpBaseRequestUrl)
	handlers.RegisterHealthRoutes(g, handlers.NewHealthHandler(healthService))
	handlers.RegisterAuthRoutes(g, authHandler, guard)
	handlers.RegisterClientRoutes(g, handlers.NewClientHandler(ledgerService, dashboardService), guard)
	handlers.RegisterAdjustmentRoutes(g, handlers.NewAdjustmentHandler(ledgerService, dashboardService), guard)
	handlers.RegisterDashboardRoutes(g, handlers.NewDashboardHandler(dashboardService), guard)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(cfg.HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Stat(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
