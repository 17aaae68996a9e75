package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPoolStorage is a pgxpool-backed Storage. It additionally exposes
// PostgreSQL advisory locks so the refresh worker can guarantee a single
// runner across instances.
type PostgresPoolStorage struct {
	pool *pgxpool.Pool
}

func OpenPostgresPool(ctx context.Context, dsn string) (*PostgresPoolStorage, error) {
	if dsn == "" {
		dsn = "postgres://localhost:5432/boilerquote?sslmode=disable"
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &PostgresPoolStorage{pool: pool}, nil
}

func (s *PostgresPoolStorage) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresPoolStorage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Pool exposes the underlying pool for metrics collection.
func (s *PostgresPoolStorage) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresPoolStorage) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS catalog_snapshots (
			id SERIAL PRIMARY KEY,
			source TEXT NOT NULL,
			payload BYTEA NOT NULL,
			fetched_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id TEXT PRIMARY KEY,
			profile BYTEA NOT NULL,
			payload BYTEA NOT NULL,
			postcode TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS email_config (
			id TEXT PRIMARY KEY,
			provider TEXT NOT NULL,
			host TEXT, port INT, username TEXT, password TEXT,
			from_address TEXT, from_name TEXT, api_key TEXT, encryption TEXT,
			enabled BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ, updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS scheduled_jobs (
			name TEXT PRIMARY KEY,
			last_run_at TIMESTAMPTZ,
			last_duration_ms BIGINT,
			last_success INT,
			last_error TEXT
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Catalog snapshots

func (s *PostgresPoolStorage) GetCatalogSnapshot(ctx context.Context) (*CatalogSnapshot, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, payload, fetched_at FROM catalog_snapshots ORDER BY fetched_at DESC LIMIT 1`)
	var snap CatalogSnapshot
	if err := row.Scan(&snap.ID, &snap.Source, &snap.Payload, &snap.FetchedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}

func (s *PostgresPoolStorage) SaveCatalogSnapshot(ctx context.Context, snap CatalogSnapshot) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO catalog_snapshots (source, payload, fetched_at) VALUES ($1, $2, $3)`,
		snap.Source, snap.Payload, snap.FetchedAt)
	return err
}

// Quotes

func (s *PostgresPoolStorage) SaveQuote(ctx context.Context, rec QuoteRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO quotes (id, profile, payload, postcode, created_at) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.Profile, rec.Payload, rec.Postcode, rec.CreatedAt)
	return err
}

func (s *PostgresPoolStorage) GetQuote(ctx context.Context, id string) (*QuoteRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, profile, payload, postcode, created_at FROM quotes WHERE id = $1`, id)
	var rec QuoteRecord
	if err := row.Scan(&rec.ID, &rec.Profile, &rec.Payload, &rec.Postcode, &rec.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *PostgresPoolStorage) ListQuotes(ctx context.Context, limit int) ([]QuoteRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, profile, payload, postcode, created_at FROM quotes ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuoteRecord
	for rows.Next() {
		var rec QuoteRecord
		if err := rows.Scan(&rec.ID, &rec.Profile, &rec.Payload, &rec.Postcode, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Settings

func (s *PostgresPoolStorage) GetSetting(ctx context.Context, key string) (string, error) {
	row := s.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key)
	var val string
	if err := row.Scan(&val); err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (s *PostgresPoolStorage) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now())
	return err
}

// Email config

func (s *PostgresPoolStorage) GetEmailConfig(ctx context.Context) (*EmailConfig, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, provider, COALESCE(host,''), COALESCE(port,0), COALESCE(username,''),
		        COALESCE(password,''), COALESCE(from_address,''), COALESCE(from_name,''),
		        COALESCE(api_key,''), COALESCE(encryption,''), enabled
		 FROM email_config LIMIT 1`)
	var cfg EmailConfig
	err := row.Scan(&cfg.ID, &cfg.Provider, &cfg.Host, &cfg.Port, &cfg.Username,
		&cfg.Password, &cfg.FromAddress, &cfg.FromName, &cfg.APIKey, &cfg.Encryption, &cfg.Enabled)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (s *PostgresPoolStorage) SaveEmailConfig(ctx context.Context, cfg EmailConfig) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO email_config (id, provider, host, port, username, password, from_address, from_name, api_key, encryption, enabled, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW(),NOW())
		 ON CONFLICT (id) DO UPDATE SET provider=EXCLUDED.provider, host=EXCLUDED.host, port=EXCLUDED.port,
		   username=EXCLUDED.username, password=EXCLUDED.password, from_address=EXCLUDED.from_address,
		   from_name=EXCLUDED.from_name, api_key=EXCLUDED.api_key, encryption=EXCLUDED.encryption,
		   enabled=EXCLUDED.enabled, updated_at=NOW()`,
		cfg.ID, cfg.Provider, cfg.Host, cfg.Port, cfg.Username, cfg.Password,
		cfg.FromAddress, cfg.FromName, cfg.APIKey, cfg.Encryption, cfg.Enabled)
	return err
}

// Advisory locks

// AcquireAdvisoryLock tries to take a session advisory lock. Returns false
// when another session holds it.
func (s *PostgresPoolStorage) AcquireAdvisoryLock(ctx context.Context, key int64) (bool, error) {
	row := s.pool.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, key)
	var ok bool
	if err := row.Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// ReleaseAdvisoryLock releases a previously acquired advisory lock.
func (s *PostgresPoolStorage) ReleaseAdvisoryLock(ctx context.Context, key int64) (bool, error) {
	row := s.pool.QueryRow(ctx, `SELECT pg_advisory_unlock($1)`, key)
	var ok bool
	if err := row.Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// UpdateScheduledJob upserts the bookkeeping row for a background job.
func (s *PostgresPoolStorage) UpdateScheduledJob(ctx context.Context, name string, startedAt time.Time, dur time.Duration, success bool, errMsg string) error {
	succ := 0
	if success {
		succ = 1
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO scheduled_jobs (name, last_run_at, last_duration_ms, last_success, last_error)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (name) DO UPDATE SET last_run_at=EXCLUDED.last_run_at,
		   last_duration_ms=EXCLUDED.last_duration_ms, last_success=EXCLUDED.last_success,
		   last_error=EXCLUDED.last_error`,
		name, startedAt, dur.Milliseconds(), succ, errMsg)
	return err
}
