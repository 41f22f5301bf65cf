package iocache

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// PositionStoreImpl handles durable position storage using various database
// backends.
type PositionStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.CacheBackend
	driverName string
	connStr    string
}

var _ contract.PositionStore = &PositionStoreImpl{} // Compile-time check

// NewPositionStore initializes and returns a new position store based on the
// backend type.
func NewPositionStore(tableName string, backend schema.CacheBackend, connStr string) (contract.PositionStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite cache at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL cache: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL cache: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled caching
		return &PositionStoreImpl{
			db:        nil,
			tableName: tableName,
			backend:   backend,
			connStr:   connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &PositionStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.CacheBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				body VARCHAR(32) NOT NULL,
				bucket BIGINT NOT NULL,
				longitude DOUBLE NOT NULL,
				speed DOUBLE NOT NULL,
				computed_at BIGINT NOT NULL,
				PRIMARY KEY (body, bucket)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				body TEXT NOT NULL,
				bucket BIGINT NOT NULL,
				longitude DOUBLE PRECISION NOT NULL,
				speed DOUBLE PRECISION NOT NULL,
				computed_at BIGINT NOT NULL,
				PRIMARY KEY (body, bucket)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				body TEXT NOT NULL,
				bucket INTEGER NOT NULL,
				longitude REAL NOT NULL,
				speed REAL NOT NULL,
				computed_at INTEGER NOT NULL,
				PRIMARY KEY (body, bucket)
			);
		`, quotedTableName)
	}
}

// Get retrieves a cached position by body and minute bucket.
func (ps *PositionStoreImpl) Get(body schema.Body, bucket int64) (schema.CachedPosition, error) {
	// Return not found error for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return schema.CachedPosition{}, sql.ErrNoRows
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	var query string
	switch ps.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`SELECT longitude, speed, computed_at FROM %s WHERE body = $1 AND bucket = $2`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`SELECT longitude, speed, computed_at FROM %s WHERE body = ? AND bucket = ?`, quotedTableName)
	}

	pos := schema.CachedPosition{Body: body, Bucket: bucket}
	var computedAt int64
	row := ps.db.QueryRow(query, string(body), bucket)
	if err := row.Scan(&pos.Longitude, &pos.Speed, &computedAt); err != nil {
		return schema.CachedPosition{}, err
	}
	pos.ComputedAt = time.Unix(computedAt, 0).UTC()
	return pos, nil
}

// Set inserts or replaces a cached position.
func (ps *PositionStoreImpl) Set(pos schema.CachedPosition) error {
	// Skip for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	query := ps.getUpsertQuery()
	_, err := ps.db.Exec(query, string(pos.Body), pos.Bucket, pos.Longitude, pos.Speed, pos.ComputedAt.Unix())
	return err
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *PositionStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (body, bucket, longitude, speed, computed_at) VALUES (?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE longitude = new.longitude, speed = new.speed, computed_at = new.computed_at`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (body, bucket, longitude, speed, computed_at) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (body, bucket) DO UPDATE SET longitude = EXCLUDED.longitude, speed = EXCLUDED.speed, computed_at = EXCLUDED.computed_at`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (body, bucket, longitude, speed, computed_at) VALUES (?, ?, ?, ?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ps *PositionStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// Status returns status information about the position store.
func (ps *PositionStoreImpl) Status() (schema.CacheStatus, error) {
	status := schema.CacheStatus{
		Backend:   ps.backend,
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := ps.db.QueryRow(countQuery).Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	lastQuery := fmt.Sprintf("SELECT MAX(computed_at) FROM %s", quotedTableName)
	var lastTs int64
	if err := ps.db.QueryRow(lastQuery).Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last entry time: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0).UTC()

	oldestQuery := fmt.Sprintf("SELECT MIN(computed_at) FROM %s", quotedTableName)
	var oldestTs int64
	if err := ps.db.QueryRow(oldestQuery).Scan(&oldestTs); err != nil {
		return status, fmt.Errorf("failed to get oldest entry time: %w", err)
	}
	status.OldestEntryTime = time.Unix(oldestTs, 0).UTC()

	return status, nil
}

// validateTableName validates that the table name is a safe SQL identifier.
// It ensures the name consists only of alphanumeric characters and underscores,
// starting with a letter or underscore, to prevent SQL injection.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	matched, err := regexp.MatchString(`^[a-zA-Z_][a-zA-Z0-9_]*$`, name)
	if err != nil {
		return fmt.Errorf("error validating table name: %w", err)
	}
	if !matched {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.CacheBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}
