package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

const mysqlDriverParamStr string = "parseTime=true"

const (
	localStorageTable = "local_storage"
	cookiesTable      = "cookies"
)

// DB is a connection plus the SQL dialect its queries are built for.
type DB struct {
	*sql.DB
	Flavor sqlbuilder.Flavor
}

func Connect(ctx context.Context, driver, dsn string) (*DB, error) {
	var (
		db     *sql.DB
		flavor sqlbuilder.Flavor
		err    error
	)

	switch driver {
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("creating SQLite dir: %w", err)
		}
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("opening SQLite DB: %w", err)
		}
		// One writer keeps SQLite away from SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		flavor = sqlbuilder.SQLite
	case DriverMySQL:
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		db, err = sql.Open("mysql", dsn+sep+mysqlDriverParamStr)
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		flavor = sqlbuilder.MySQL
	default:
		return nil, fmt.Errorf("unknown SQL driver [%s]", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking %s DB connection: %w", driver, err)
	}

	out := &DB{DB: db, Flavor: flavor}
	if err := out.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return out, nil
}

func (db *DB) ensureSchema(ctx context.Context) error {
	local := db.Flavor.NewCreateTableBuilder()
	local.CreateTable(localStorageTable).IfNotExists()
	local.Define("storage_key", "VARCHAR(255)", "NOT NULL", "PRIMARY KEY")
	local.Define("stored_value", "TEXT", "NOT NULL")

	cookies := db.Flavor.NewCreateTableBuilder()
	cookies.CreateTable(cookiesTable).IfNotExists()
	cookies.Define("cookie_name", "VARCHAR(255)", "NOT NULL", "PRIMARY KEY")
	cookies.Define("cookie_value", "TEXT", "NOT NULL")
	cookies.Define("cookie_path", "VARCHAR(255)", "NOT NULL")
	cookies.Define("expires_at", "BIGINT", "NOT NULL")

	for _, ctb := range []*sqlbuilder.CreateTableBuilder{local, cookies} {
		query, args := ctb.Build()
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
