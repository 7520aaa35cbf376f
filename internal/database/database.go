package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the search index. It is derived from the JSON store and can be
// deleted at any time; reindex rebuilds it.
type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=3000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Wrap uses an already open connection as is, without creating the schema.
func Wrap(conn *sql.DB) *DB {
	return &DB{conn: conn}
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

func (db *DB) Begin() (*sql.Tx, error) {
	return db.conn.Begin()
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT,
		source TEXT,
		url TEXT,
		tags TEXT,
		status TEXT NOT NULL DEFAULT 'raw',
		date_added DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_records_status ON records(status);

	CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts4(
		title,
		content,
		tags,
		tokenize=unicode61
	);

	CREATE TRIGGER IF NOT EXISTS records_ai AFTER INSERT ON records BEGIN
		INSERT INTO records_fts(rowid, title, content, tags) VALUES (new.id, new.title, COALESCE(new.content, ''), COALESCE(new.tags, ''));
	END;

	CREATE TRIGGER IF NOT EXISTS records_ad AFTER DELETE ON records BEGIN
		DELETE FROM records_fts WHERE rowid = old.id;
	END;
	`

	_, err := db.conn.Exec(schema)
	return err
}
