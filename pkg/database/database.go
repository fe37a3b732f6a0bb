package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Client holds the database handle
type Client struct {
	DB *gorm.DB
}

// AllModels returns every model migrated at boot
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Lead{},
		&models.RoundRobinConfig{},
		&models.Inquiry{},
		&models.CareerQuizResult{},
		&models.ChatSession{},
		&models.ChatMessage{},
	}
}

// NewClient opens a postgres connection and runs migrations
func NewClient(databaseURL string) (*Client, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to postgres: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return nil, fmt.Errorf("failed running migrations: %w", err)
	}

	log.Println("✅ Database connected and migrations applied")

	return &Client{DB: db}, nil
}

// Close closes the underlying connection pool
func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks if the database is reachable
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
