package sqlstore

import (
	"context"
	"embed"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var migrationsFS embed.FS

// goose keeps dialect and filesystem as package state.
var gooseMu sync.Mutex

func RunMigrations(ctx context.Context, db *gorm.DB, driver string, log *zap.SugaredLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	dialect := Dialect(driver)
	gooseDialect := "sqlite3"
	if dialect == DriverMySQL {
		gooseDialect = "mysql"
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect(gooseDialect); err != nil {
		return err
	}
	if log != nil {
		goose.SetLogger(gooseLogger{log})
	} else {
		goose.SetLogger(goose.NopLogger())
	}
	goose.SetBaseFS(migrationsFS)
	return goose.UpContext(ctx, sqlDB, "migrations/"+dialect)
}

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) { l.log.Infof(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...any) { l.log.Fatalf(format, v...) }
