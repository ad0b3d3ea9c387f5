package main

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/bawdo/sqldrill/trainer"
)

var driverName = map[string]string{
	"postgres": "pgx",
	"mysql":    "mysql",
	"sqlite":   "sqlite",
}

const maxRows = 1000

const (
	busyAttempts  = 5
	busyBaseDelay = 100 * time.Millisecond
)

// retrySleep is swapped out in tests.
var retrySleep = time.Sleep

// retryBusy runs fn, retrying the locked/busy failure class with exponential
// backoff. A shared file-backed database or a server under contention often
// clears within a few hundred milliseconds; other errors surface immediately.
func retryBusy(fn func() error) error {
	delay := busyBaseDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !isBusy(err) || attempt == busyAttempts {
			return err
		}
		retrySleep(delay)
		delay *= 2
	}
}

func isBusy(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "locked") ||
		strings.Contains(msg, "busy") ||
		strings.Contains(msg, "lock wait")
}

type dbConn struct {
	db      *sql.DB
	engine  string
	columns map[string][]string // table name -> column names, lazy cache
}

var _ trainer.Executor = (*dbConn)(nil)

func connect(engine, dsn string) (*dbConn, error) {
	driver, ok := driverName[engine]
	if !ok {
		return nil, fmt.Errorf("no driver for engine %q", engine)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &dbConn{db: db, engine: engine, columns: make(map[string][]string)}, nil
}

func (c *dbConn) close() error {
	return c.db.Close()
}

// Execute runs one finalized query. A locked or busy database is retried
// with backoff before the error is surfaced; malformed SQL comes back as a
// readable error carrying the engine diagnostic; a connection that no longer
// answers a ping is reported as the fatal dataset-unavailable error.
func (c *dbConn) Execute(sqlStr string) (*trainer.Result, error) {
	var rows *sql.Rows
	err := retryBusy(func() error {
		var qerr error
		rows, qerr = c.db.Query(sqlStr)
		return qerr
	})
	if err != nil {
		if pingErr := c.db.Ping(); pingErr != nil {
			return nil, fmt.Errorf("%w: %v", trainer.ErrDatasetUnavailable, pingErr)
		}
		return nil, describeQueryError(err)
	}
	defer func() { _ = rows.Close() }()
	return collectRows(rows)
}

func collectRows(rows *sql.Rows) (*trainer.Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	res := &trainer.Result{Columns: columns}
	for rows.Next() {
		if len(res.Rows) >= maxRows {
			res.Truncated = true
			break
		}
		vals := make([]*sql.NullString, len(columns))
		ptrs := make([]any, len(columns))
		for i := range vals {
			vals[i] = &sql.NullString{}
			ptrs[i] = vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(columns))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return res, nil
}

// describeQueryError prefixes common failure classes with a clearer one-line
// message while keeping the engine's diagnostic text.
func describeQueryError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "locked"):
		return fmt.Errorf("database is busy, try again: %w", err)
	case strings.Contains(msg, "no such table"):
		return fmt.Errorf("table not found: %w", err)
	case strings.Contains(msg, "syntax error"):
		return fmt.Errorf("SQL syntax error: %w", err)
	case strings.Contains(msg, "readonly"):
		return fmt.Errorf("database is read-only: %w", err)
	}
	return fmt.Errorf("query failed: %w", err)
}

// Columns introspects a table's column names, cached per table. Failures are
// best-effort (nil result): the schema command just shows nothing for an
// unknown table.
func (c *dbConn) Columns(table string) []string {
	if cols, ok := c.columns[table]; ok {
		return cols
	}
	var query string
	switch c.engine {
	case "postgres":
		query = "SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1 ORDER BY ordinal_position"
	case "mysql":
		query = "SELECT column_name FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position"
	case "sqlite":
		query = "SELECT name FROM pragma_table_info(?)"
	default:
		return nil
	}
	cols, err := c.queryStringColumn(query, table)
	if err != nil {
		return nil
	}
	c.columns[table] = cols
	return cols
}

// tables lists the dataset's table names, for the startup banner.
func (c *dbConn) tables() []string {
	var query string
	switch c.engine {
	case "postgres":
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name"
	case "mysql":
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name"
	case "sqlite":
		query = "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
	default:
		return nil
	}
	names, err := c.queryStringColumn(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Note: schema introspection failed: %v\n", err)
		return nil
	}
	return names
}

func (c *dbConn) queryStringColumn(query string, params ...any) ([]string, error) {
	rows, err := c.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var result []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func sanitizeDSN(dsn string) string {
	// Try parsing as URL (postgres style).
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			// Rebuild manually to avoid percent-encoding the mask.
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// Try MySQL-style DSN: user:pass@tcp(host)/db
	if atIdx := strings.Index(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx >= 0 {
			return userPass[:colonIdx+1] + "****" + dsn[atIdx:]
		}
	}

	return dsn
}
