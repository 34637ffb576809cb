package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Options struct {
	Driver string
	DSN    string
	// Conn, when set, is used instead of dialing DSN.
	Conn   *sql.DB
	Logger gormlogger.Interface
}

// Open connects to the configured backend. Writes go through UnitOfWork transactions, so gorm's
// implicit per-statement transactions are disabled.
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		d := &sqlite.Dialector{DriverName: "sqlite", DSN: opts.DSN}
		// a nil *sql.DB stored in the ConnPool interface is not nil and skips sql.Open
		if opts.Conn != nil {
			d.Conn = opts.Conn
		}
		dialector = d
	case DriverMySQL:
		if opts.Conn != nil {
			dialector = mysql.New(mysql.Config{Conn: opts.Conn, SkipInitializeWithVersion: true})
		} else {
			dialector = mysql.Open(opts.DSN)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
	if opts.Logger != nil {
		cfg.Logger = opts.Logger
	}
	return gorm.Open(dialector, cfg)
}

// Dialect normalizes a driver name.
func Dialect(driver string) string {
	if strings.EqualFold(strings.TrimSpace(driver), DriverMySQL) {
		return DriverMySQL
	}
	return DriverSQLite
}
