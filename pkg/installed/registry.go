package installed

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Registry persists installed apps in a SQLite database under a data dir.
type Registry struct {
	db      *sql.DB
	dataDir string
	opts    *options
}

// NewRegistry opens (creating if needed) dataDir/installed.db.
func NewRegistry(dataDir string, opts ...Option) (*Registry, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "installed.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	r := &Registry{
		db:      db,
		dataDir: dataDir,
		opts:    buildOptions(opts),
	}

	if err := r.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize registry: %w", err)
	}

	return r, nil
}

// init creates the database schema
func (r *Registry) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS installed_apps (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		app_id TEXT NOT NULL UNIQUE,
		installed_at TIMESTAMP NOT NULL
	);
	`

	_, err := r.db.Exec(schema)
	return err
}

func (r *Registry) InstalledIDs() ([]string, error) {
	records, err := r.Records()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.AppID
	}
	return ids, nil
}

func (r *Registry) Records() ([]Record, error) {
	rows, err := r.db.Query(`SELECT app_id, installed_at FROM installed_apps ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query installed apps: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.AppID, &rec.InstalledAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Registry) Install(id string) error {
	if err := r.opts.check(id); err != nil {
		return err
	}
	_, err := r.db.Exec(
		`INSERT OR IGNORE INTO installed_apps (app_id, installed_at) VALUES (?, ?)`,
		id, r.opts.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("install %s: %w", id, err)
	}
	return nil
}

func (r *Registry) Uninstall(id string) error {
	if _, err := r.db.Exec(`DELETE FROM installed_apps WHERE app_id = ?`, id); err != nil {
		return fmt.Errorf("uninstall %s: %w", id, err)
	}
	return nil
}

// Close closes the database.
func (r *Registry) Close() error {
	return r.db.Close()
}
