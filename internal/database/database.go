package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emilythestrangee/qa-forum/backend/internal/config"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health reports "status" as "up" or "down" plus pool statistics.
	Health(ctx context.Context) map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error
	GetDB() *gorm.DB
	Migrate() error
}

type service struct {
	db *gorm.DB
}

// New connects to Postgres using the configured DSN.
func New(cfg config.DBConfig) (Service, error) {
	svc, err := Open(postgres.Open(cfg.DSN), cfg)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Open connects through an arbitrary GORM dialector. Tests use it with SQLite.
func Open(dialector gorm.Dialector, cfg config.DBConfig) (Service, error) {
	slow := cfg.SlowQuery
	if slow == 0 {
		slow = time.Second
	}

	// Configure GORM logger
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             slow,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database instance: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &service{db: db}, nil
}

// Migrate creates or updates the tables for every record type.
func (s *service) Migrate() error {
	err := s.db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.QuestionTag{},
		&models.Answer{},
		&models.Vote{},
		&models.ChatRecord{},
	)
	if err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}
	return nil
}

func (s *service) GetDB() *gorm.DB {
	return s.db
}

// Health pings the database within ctx and reports pool statistics.
func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return map[string]string{"status": "down", "error": fmt.Sprintf("db error: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return map[string]string{"status": "down", "error": fmt.Sprintf("db down: %v", err)}
	}

	stats := sqlDB.Stats()
	return map[string]string{
		"status":           "up",
		"dialect":          s.db.Dialector.Name(),
		"open_connections": strconv.Itoa(stats.OpenConnections),
		"in_use":           strconv.Itoa(stats.InUse),
		"idle":             strconv.Itoa(stats.Idle),
		"wait_count":       strconv.FormatInt(stats.WaitCount, 10),
	}
}

// Close closes the database connection.
func (s *service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
