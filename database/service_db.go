package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// FilesNamespace is the fixed key under which generated estimate files are
// stored. The store is an opaque namespaced list: callers only append and
// list, and durability beyond the current device is not assumed.
const FilesNamespace = "eksperti.generated_files"

// DBConfig holds connection pool settings for the service database.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServiceDB wraps the sqlite database holding generated estimate files and
// other service-side state.
type ServiceDB struct {
	conn *sql.DB
}

// GeneratedFile is one appended export: the workbook bytes plus the
// metadata shown in the file list.
type GeneratedFile struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Payload   []byte    `json:"-"`
}

// NewServiceDB opens (and if needed creates) the service database.
func NewServiceDB(dbPath string) (*ServiceDB, error) {
	config := DBConfig{}

	// In-memory sqlite needs exactly one connection, otherwise every new
	// connection sees a fresh empty database without the migrated tables.
	if isInMemory(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewServiceDBWithConfig(dbPath, config)
}

// NewServiceDBWithConfig opens the service database with explicit pool
// settings and runs migrations.
func NewServiceDBWithConfig(dbPath string, config DBConfig) (*ServiceDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open service database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	db := &ServiceDB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the underlying connection.
func (db *ServiceDB) Close() error {
	return db.conn.Close()
}

// Ping reports whether the database is reachable.
func (db *ServiceDB) Ping() error {
	return db.conn.Ping()
}

func (db *ServiceDB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generated_files (
		id TEXT PRIMARY KEY,
		namespace TEXT NOT NULL,
		filename TEXT NOT NULL,
		created_at TEXT NOT NULL,
		author TEXT NOT NULL DEFAULT '',
		payload BLOB
	);
	CREATE INDEX IF NOT EXISTS idx_generated_files_namespace
		ON generated_files(namespace, created_at);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate service database: %w", err)
	}
	return nil
}

// AppendGeneratedFile appends one export to the namespaced file list and
// returns it with its assigned id and timestamp. The list is append-only;
// nothing ever updates or removes entries.
func (db *ServiceDB) AppendGeneratedFile(file GeneratedFile) (GeneratedFile, error) {
	if strings.TrimSpace(file.Filename) == "" {
		return GeneratedFile{}, fmt.Errorf("filename is required")
	}

	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}

	_, err := db.conn.Exec(
		`INSERT INTO generated_files (id, namespace, filename, created_at, author, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		file.ID, FilesNamespace, file.Filename,
		file.CreatedAt.UTC().Format(time.RFC3339Nano), file.Author, file.Payload,
	)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to append generated file: %w", err)
	}
	return file, nil
}

// ListGeneratedFiles returns the file list in append order, metadata only.
// Payloads stay in the database until a download asks for one.
func (db *ServiceDB) ListGeneratedFiles() ([]GeneratedFile, error) {
	rows, err := db.conn.Query(
		`SELECT id, filename, created_at, author
		 FROM generated_files WHERE namespace = ? ORDER BY created_at, id`,
		FilesNamespace,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated files: %w", err)
	}
	defer rows.Close()

	files := []GeneratedFile{}
	for rows.Next() {
		var f GeneratedFile
		var createdAt string
		if err := rows.Scan(&f.ID, &f.Filename, &createdAt, &f.Author); err != nil {
			return nil, fmt.Errorf("failed to scan generated file: %w", err)
		}
		f.CreatedAt = parseTimestamp(createdAt)
		files = append(files, f)
	}
	return files, rows.Err()
}

// GetGeneratedFile loads one entry including its payload.
func (db *ServiceDB) GetGeneratedFile(id string) (*GeneratedFile, error) {
	var f GeneratedFile
	var createdAt string
	err := db.conn.QueryRow(
		`SELECT id, filename, created_at, author, payload
		 FROM generated_files WHERE namespace = ? AND id = ?`,
		FilesNamespace, id,
	).Scan(&f.ID, &f.Filename, &createdAt, &f.Author, &f.Payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load generated file: %w", err)
	}
	f.CreatedAt = parseTimestamp(createdAt)
	return &f, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}

func isInMemory(dbPath string) bool {
	return dbPath == ":memory:" || strings.Contains(dbPath, "mode=memory")
}
