package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-journal-api/internal/core/config"
	"go-journal-api/internal/core/database"
	"go-journal-api/internal/core/logger"
	"go-journal-api/internal/domain"
	"go-journal-api/internal/repo"
	"go-journal-api/pkg/utils"
)

// 本地开发用：保证有个种子用户 + 20 条样例日记
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.JournalEntry{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	users := repo.NewUserRepo(db)
	u, err := users.FindByEmail("seed@seed.com")
	if err != nil {
		log.Fatal("find seed user", zap.Error(err))
	}
	if u == nil {
		u = &domain.User{
			ID:           utils.NewID(),
			Email:        "seed@seed.com",
			PasswordHash: utils.HashPassword("Password@123"),
			Role:         "user",
		}
		if err := users.Create(u); err != nil {
			log.Fatal("create seed user", zap.Error(err))
		}
		log.Info("seed user created", zap.String("email", u.Email))
	}

	entries := repo.NewJournalRepo(db)
	for i := 1; i <= 20; i++ {
		e := &domain.JournalEntry{
			ID:       utils.NewID(),
			Title:    fmt.Sprintf("Sample Journal %d", i),
			Content:  fmt.Sprintf("This is a sample content for journal entry %d. Lorem ipsum dolor sit amet, consectetur adipiscing elit.", i),
			Category: "personal",
			UserID:   u.ID,
		}
		if err := entries.Create(e); err != nil {
			log.Fatal("create seed entry", zap.Error(err))
		}
	}
	log.Info("seeded 20 journals")
}
