package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"optiondesk/internal/config"
	cronrunner "optiondesk/internal/cron"
	"optiondesk/internal/handler"
	"optiondesk/internal/logger"
	"optiondesk/internal/repository/memory"
	"optiondesk/internal/service"

	_ "optiondesk/docs"
)

func main() {
	cfgPath := os.Getenv("OD_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("OD_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store := memory.Demo(
		cfg.Account.UserID,
		cfg.Account.BalanceID,
		decimal.NewFromFloat(cfg.Account.SeedBalance),
	)

	ledgerSvc := &service.LedgerService{
		Repo:      store,
		Logger:    logger,
		BalanceID: cfg.Account.BalanceID,
	}
	marketSvc := &service.MarketDataService{
		Repo: store,
		Band: decimal.NewFromFloat(cfg.Market.StrikeBand),
		Step: decimal.NewFromFloat(cfg.Market.StrikeStep),
	}
	accountSvc := &service.AccountService{Repo: store, Logger: logger}
	snapshotSvc := &service.PortfolioSnapshotService{
		Repo:      store,
		Logger:    logger,
		BalanceID: cfg.Account.BalanceID,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{Repo: store}
	healthHandler.Register(engine)
	positionHandler := &handler.PositionHandler{Ledger: ledgerSvc}
	positionHandler.Register(engine)
	marketHandler := &handler.MarketHandler{Market: marketSvc, Ledger: ledgerSvc}
	marketHandler.Register(engine)
	balanceHandler := &handler.BalanceHandler{Ledger: ledgerSvc}
	balanceHandler.Register(engine)
	userHandler := &handler.UserHandler{Account: accountSvc, UserID: cfg.Account.UserID}
	userHandler.Register(engine)
	portfolioHandler := &handler.PortfolioHandler{Snapshots: snapshotSvc}
	portfolioHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err = cronRunner.Add(cfg.Cron.PortfolioSnapshot, func(ctx context.Context) {
			if err := snapshotSvc.SnapshotPortfolio(ctx); err != nil {
				logger.Warn("portfolio snapshot failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register portfolio snapshot failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown failed", zap.Error(err))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
