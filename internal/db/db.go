package db

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	config "github.com/Keoroanthony/go-cornerstore/configs"
	"github.com/Keoroanthony/go-cornerstore/internal/logger"
	"github.com/Keoroanthony/go-cornerstore/internal/models"
)

var DB *gorm.DB

// Init opens the configured database, migrates the schema and applies the
// seed data. Any failure is fatal.
func Init(cfg config.DatabaseConfig) {

	conn, err := Open(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to DB", zap.String("driver", cfg.Driver), zap.Error(err))
	}

	if err := Migrate(conn); err != nil {
		logger.Log.Fatal("Failed to migrate DB", zap.Error(err))
	}

	if cfg.Seed {
		if err := Seed(conn); err != nil {
			logger.Log.Fatal("Failed to seed DB", zap.Error(err))
		}
	}

	DB = conn
	logger.Log.Info("Database connected and migrated successfully", zap.String("driver", cfg.Driver))
}

func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		return openPostgres(cfg.ConnectionString)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath+"?_foreign_keys=on"), gormConfig())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// openPostgres validates the externally supplied connection string with pgx
// and hands the resulting pool to GORM.
func openPostgres(connString string) (*gorm.DB, error) {

	pgxConfig, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	logger.Log.Info("Connecting to postgres",
		zap.String("host", pgxConfig.Host),
		zap.Uint16("port", pgxConfig.Port),
		zap.String("database", pgxConfig.Database),
	)

	sqlDB := stdlib.OpenDB(*pgxConfig)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
}

// OpenInMemory opens a private in-memory sqlite database with foreign keys
// enforced. Each name gets its own database.
func OpenInMemory(name string) (*gorm.DB, error) {

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	conn, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}

	// A single connection keeps the shared in-memory database alive and
	// avoids sqlite table locks between pooled connections.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return conn, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(zap.NewStdLog(logger.Log), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(models.All()...)
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
