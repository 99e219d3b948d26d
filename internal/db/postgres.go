package db

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/uniportal/internal/db/migrations"
	"github.com/yigit/uniportal/internal/pkg/dberrors"
)

// PostgresStore keeps every collection in a single JSONB table. Filters use
// JSONB containment, which is exact match for the scalar values used here.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool, checks it and applies migrations.
// dbName, when set, overrides the database named in the URL.
func NewPostgresStore(ctx context.Context, url, dbName string, maxConns int, lgr zerolog.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}
	if dbName != "" {
		poolConfig.ConnConfig.Database = dbName
	}
	if maxConns > 0 {
		poolConfig.MaxConns = int32(min(maxConns, math.MaxInt32))
	}

	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			lgr.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if err := migrations.NewMigrator(pool, lgr).Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Name() string { return "postgres" }

func (s *PostgresStore) InsertOne(ctx context.Context, collection string, doc Document) (any, error) {
	id := uuid.New()

	data := maps.Clone(doc)
	delete(data, IDKey)
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3)`,
		id, collection, raw,
	)
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (s *PostgresStore) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	rawFilter, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	// LIMIT NULL means no limit.
	var lim *int64
	if limit > 0 {
		lim = &limit
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, data
		FROM documents
		WHERE collection = $1 AND data @> $2::jsonb
		ORDER BY seq
		LIMIT $3`,
		collection, rawFilter, lim,
	)
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			return []Document{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
		}
		if doc == nil {
			doc = Document{}
		}
		doc[IDKey] = id
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *PostgresStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	rawFilter, err := encodeFilter(filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = $1 AND data @> $2::jsonb`,
		collection, rawFilter,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *PostgresStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

func encodeFilter(filter Filter) (string, error) {
	if len(filter) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("failed to encode filter: %w", err)
	}
	return string(raw), nil
}
