package config

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatube/internal/core/comment"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

// DB is the shared gorm handle opened by InitDB.
var DB *gorm.DB

// OpenDB opens a gorm connection for the given driver name.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(Logger),
	})
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// sqlite ignores FK clauses unless asked per connection
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}
	return db, nil
}

// newGormLogger writes gorm's slow-query and error traces through zap.
// A lookup miss is an ordinary outcome and is not logged.
func newGormLogger(l *zap.Logger) logger.Interface {
	std, err := zap.NewStdLogAt(l.Named("gorm"), zap.WarnLevel)
	if err != nil {
		std = zap.NewStdLog(l.Named("gorm"))
	}
	return logger.New(std, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Migrate creates or updates the tables for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follow{},
	)
}

// InitDB connects the global DB handle.
func InitDB(cfg Config) {
	var err error
	DB, err = OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		Logger.Fatal("Error connecting to the database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	Logger.Info("Database connected", zap.String("driver", cfg.DBDriver))
}
