package main

import (
	"context"
	"time"

	"github.com/geoffkats/accounting-system/internal/infrastructure/config"
	"github.com/geoffkats/accounting-system/internal/infrastructure/logger"
	"github.com/geoffkats/accounting-system/internal/infrastructure/persistence"
	"github.com/geoffkats/accounting-system/internal/infrastructure/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	seeder := seed.New(seed.Repositories{
		Settings: persistence.NewGormCompanySettingRepository(db.DB),
		Currency: persistence.NewGormCurrencyRepository(db.DB),
		Account:  persistence.NewGormAccountRepository(db.DB),
		User:     persistence.NewGormUserRepository(db.DB),
	}, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seeder.Run(ctx); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Seeding completed")
}
