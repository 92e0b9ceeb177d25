package internal

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	_ "modernc.org/sqlite"
)

// Catalog records scanned archives in SQLite.
type Catalog struct {
	*sqlx.DB
}

// ArchiveRecord is one scanned archive. Passwords are never stored; Opened
// only says whether one of the candidates worked.
type ArchiveRecord struct {
	Path           string         `db:"path"`
	SHA256         string         `db:"sha256"`
	Size           int64          `db:"size"`
	MACDigest      sql.NullString `db:"mac_digest"`
	MACIterations  int            `db:"mac_iterations"`
	CertEncryption sql.NullString `db:"cert_encryption"`
	KeyEncryption  sql.NullString `db:"key_encryption"`
	Profile        string         `db:"profile"`
	Opened         bool           `db:"opened"`
	Subject        sql.NullString `db:"subject"`
	NotAfter       *time.Time     `db:"not_after"`
	HasKey         bool           `db:"has_key"`
	ChainLength    int            `db:"chain_length"`
	Structure      types.JSONText `db:"structure"`
	Error          sql.NullString `db:"error"`
	ScannedAt      time.Time      `db:"scanned_at"`
}

// CatalogSummary aggregates the catalog for the scan report.
type CatalogSummary struct {
	Archives int `db:"archives"`
	Opened   int `db:"opened"`
	Legacy   int `db:"legacy"`
	Modern   int `db:"modern"`
	Custom   int `db:"custom"`
	Failed   int `db:"failed"`
}

// NewCatalog creates an in-memory catalog. Use SaveToDisk and LoadFromDisk
// to persist or restore it.
func NewCatalog() (*Catalog, error) {
	// Each :memory: connection is a separate database, so the pool is
	// pinned to one connection.
	dsn := "file::memory:?_pragma=temp_store(2)&_pragma=journal_mode(off)&_pragma=synchronous(off)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	c := &Catalog{DB: db}
	if err := c.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	slog.Debug("catalog initialized")
	return c, nil
}

func (c *Catalog) initSchema() error {
	_, err := c.Exec(`
		CREATE TABLE IF NOT EXISTS archives (
			path            text PRIMARY KEY,
			sha256          text NOT NULL,
			size            integer NOT NULL,
			mac_digest      text,
			mac_iterations  integer NOT NULL DEFAULT 0,
			cert_encryption text,
			key_encryption  text,
			profile         text NOT NULL,
			opened          boolean NOT NULL,
			subject         text,
			not_after       timestamp,
			has_key         boolean NOT NULL,
			chain_length    integer NOT NULL DEFAULT 0,
			structure       text,
			error           text,
			scanned_at      timestamp NOT NULL
		);
		CREATE INDEX IF NOT EXISTS archives_sha256 ON archives(sha256);
	`)
	if err != nil {
		return fmt.Errorf("creating archives table: %w", err)
	}
	return nil
}

// InsertArchive adds or replaces the record for r.Path.
func (c *Catalog) InsertArchive(r ArchiveRecord) error {
	_, err := c.NamedExec(`
		INSERT OR REPLACE INTO archives (
			path, sha256, size, mac_digest, mac_iterations, cert_encryption,
			key_encryption, profile, opened, subject, not_after, has_key,
			chain_length, structure, error, scanned_at
		) VALUES (
			:path, :sha256, :size, :mac_digest, :mac_iterations, :cert_encryption,
			:key_encryption, :profile, :opened, :subject, :not_after, :has_key,
			:chain_length, :structure, :error, :scanned_at
		)`, r)
	if err != nil {
		return fmt.Errorf("inserting archive %s: %w", r.Path, err)
	}
	return nil
}

// GetAllArchives returns every record ordered by path.
func (c *Catalog) GetAllArchives() ([]ArchiveRecord, error) {
	var records []ArchiveRecord
	if err := c.Select(&records, "SELECT * FROM archives ORDER BY path"); err != nil {
		return nil, fmt.Errorf("getting all archives: %w", err)
	}
	return records, nil
}

// GetArchive returns the record for path, or nil when absent.
func (c *Catalog) GetArchive(path string) (*ArchiveRecord, error) {
	var r ArchiveRecord
	err := c.Get(&r, "SELECT * FROM archives WHERE path = ?", path)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting archive %s: %w", path, err)
	}
	return &r, nil
}

// FindDuplicates returns paths grouped by identical content, for groups of
// two or more.
func (c *Catalog) FindDuplicates() (map[string][]string, error) {
	var rows []struct {
		SHA256 string `db:"sha256"`
		Path   string `db:"path"`
	}
	err := c.Select(&rows, `
		SELECT sha256, path FROM archives
		WHERE sha256 IN (SELECT sha256 FROM archives GROUP BY sha256 HAVING COUNT(*) > 1)
		ORDER BY sha256, path`)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	dups := make(map[string][]string)
	for _, r := range rows {
		dups[r.SHA256] = append(dups[r.SHA256], r.Path)
	}
	return dups, nil
}

// Summary counts archives by outcome and profile.
func (c *Catalog) Summary() (*CatalogSummary, error) {
	var s CatalogSummary
	err := c.Get(&s, `
		SELECT
			COUNT(*) AS archives,
			COALESCE(SUM(opened), 0) AS opened,
			COALESCE(SUM(profile = 'legacy'), 0) AS legacy,
			COALESCE(SUM(profile = 'modern'), 0) AS modern,
			COALESCE(SUM(profile = 'custom'), 0) AS custom,
			COALESCE(SUM(error IS NOT NULL), 0) AS failed
		FROM archives`)
	if err != nil {
		return nil, fmt.Errorf("summarizing catalog: %w", err)
	}
	return &s, nil
}

// SaveToDisk writes the in-memory catalog to path with VACUUM INTO.
func (c *Catalog) SaveToDisk(path string) error {
	if _, err := c.Exec("VACUUM INTO ?", path); err != nil {
		return fmt.Errorf("saving catalog to %s: %w", path, err)
	}
	slog.Info("catalog saved to disk", "path", path)
	return nil
}

// LoadFromDisk merges the archives of an on-disk catalog into c. Records
// already present are kept.
func (c *Catalog) LoadFromDisk(path string) error {
	if _, err := c.Exec("ATTACH DATABASE ? AS diskdb", path); err != nil {
		return fmt.Errorf("attaching database %s: %w", path, err)
	}
	defer func() {
		if _, err := c.Exec("DETACH DATABASE diskdb"); err != nil {
			slog.Warn("detaching database", "path", path, "error", err)
		}
	}()

	if _, err := c.Exec("INSERT OR IGNORE INTO archives SELECT * FROM diskdb.archives"); err != nil {
		return fmt.Errorf("loading archives from %s: %w", path, err)
	}
	slog.Info("catalog loaded from disk", "path", path)
	return nil
}
