package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/saad-anwar/custodial-vault-service/internal/api"
	"github.com/saad-anwar/custodial-vault-service/internal/config"
	"github.com/saad-anwar/custodial-vault-service/internal/events/kafka"
	interfaces "github.com/saad-anwar/custodial-vault-service/internal/interfaces"
	storagememory "github.com/saad-anwar/custodial-vault-service/internal/storage/memory"
	"github.com/saad-anwar/custodial-vault-service/internal/storage/postgres"
	"github.com/saad-anwar/custodial-vault-service/internal/transfer/httpapi"
	transfermemory "github.com/saad-anwar/custodial-vault-service/internal/transfer/memory"
	"github.com/saad-anwar/custodial-vault-service/internal/vault"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	var store interfaces.OperationStore
	switch cfg.Store {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("failed to open postgres", zap.Error(err))
		}
		if err := db.Ping(); err != nil {
			logger.Fatal("failed to reach postgres", zap.Error(err))
		}
		defer db.Close()
		store = postgres.NewOperationStore(db)
	default:
		store = storagememory.NewOperationStore()
	}

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	var transferor interfaces.FundsTransferor
	if cfg.SettlementURL != "" {
		transferor = httpapi.New(cfg.SettlementURL)
	} else {
		transferor = transfermemory.New()
	}

	v, err := vault.NewVault(cfg.WithdrawLimit, cfg.BankCap, cfg.Owner, store, transferor, publisher, logger)
	if err != nil {
		logger.Fatal("failed to construct vault", zap.Error(err))
	}

	server := api.NewServer(cfg.HTTPAddr, api.NewHandler(v, logger))

	go func() {
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()
	logger.Info("server started",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("store", cfg.Store),
		zap.String("withdraw_limit", cfg.WithdrawLimit.String()),
		zap.String("bank_cap", cfg.BankCap.String()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
