package db

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/uniportal/internal/config"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

// DefaultConnectTimeout bounds the initial connect and ping when
// DB_CONNECT_TIMEOUT is not set.
const DefaultConnectTimeout = 5 * time.Second

// ErrNotConfigured is the init failure when connection settings are missing.
var ErrNotConfigured = fmt.Errorf("%w: DATABASE_URL and DATABASE_NAME must be set", apperrors.ErrConnectionUnavailable)

// Adapter owns the single process-wide store handle. It is built once at
// startup and injected into the repositories.
//
// When the store could not be initialised the adapter is degraded: reads
// return empty results, writes and counts fail with
// apperrors.ErrConnectionUnavailable. A nil *Adapter behaves the same way.
type Adapter struct {
	store   Store
	initErr error
	logger  zerolog.Logger
	now     func() time.Time
}

// NewAdapter wraps an initialised store.
func NewAdapter(store Store, lgr zerolog.Logger) *Adapter {
	return &Adapter{store: store, logger: lgr, now: time.Now}
}

// Degraded returns an adapter without a store, remembering why.
func Degraded(reason error, lgr zerolog.Logger) *Adapter {
	if reason == nil {
		reason = apperrors.ErrConnectionUnavailable
	}
	return &Adapter{initErr: reason, logger: lgr, now: time.Now}
}

// Open initialises the backend selected by cfg. It never fails: any error
// yields a degraded adapter so the HTTP server can still start.
func Open(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) *Adapter {
	store, err := openStore(ctx, cfg, lgr)
	if err != nil {
		lgr.Warn().Err(err).Msg("Document store unavailable, serving in degraded mode")
		return Degraded(err, lgr)
	}
	lgr.Info().Str("backend", store.Name()).Msg("Document store connection established")
	return NewAdapter(store, lgr)
}

func openStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (Store, error) {
	driver := cfg.DatabaseDriver()
	switch driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverMongo, config.DriverPostgres:
	case "":
		if !cfg.HasDatabaseURL() || !cfg.HasDatabaseName() {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("%w: cannot determine store driver from DATABASE_URL", apperrors.ErrConnectionUnavailable)
	default:
		return nil, fmt.Errorf("%w: unsupported store driver %q (supported: mongo, postgres, memory)", apperrors.ErrConnectionUnavailable, driver)
	}

	if !cfg.HasDatabaseURL() || !cfg.HasDatabaseName() {
		return nil, ErrNotConfigured
	}

	timeout, maxConns, err := storeSettings(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var store Store
	switch driver {
	case config.DriverMongo:
		store, err = NewMongoStore(ctx, cfg.Database.URL, cfg.Database.Name, maxConns)
	case config.DriverPostgres:
		store, err = NewPostgresStore(ctx, cfg.Database.URL, cfg.Database.Name, maxConns, lgr)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionUnavailable, err)
	}
	return store, nil
}

// storeSettings parses the connect timeout and pool size. Empty values fall
// back to the defaults; unusable ones fail the store init.
func storeSettings(cfg *config.Config) (time.Duration, int, error) {
	timeout := DefaultConnectTimeout
	if v := strings.TrimSpace(cfg.Database.ConnectTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return 0, 0, fmt.Errorf("%w: invalid DB_CONNECT_TIMEOUT %q", apperrors.ErrConnectionUnavailable, v)
		}
		timeout = d
	}

	maxConns := 0
	if v := strings.TrimSpace(cfg.Database.MaxConns); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > math.MaxInt32 {
			return 0, 0, fmt.Errorf("%w: invalid DB_MAX_CONNS %q (want 0..%d)", apperrors.ErrConnectionUnavailable, v, math.MaxInt32)
		}
		maxConns = n
	}
	return timeout, maxConns, nil
}

// Available reports whether a store handle exists.
func (a *Adapter) Available() bool {
	return a != nil && a.store != nil
}

// InitError returns why the adapter is degraded, or nil.
func (a *Adapter) InitError() error {
	if a == nil {
		return apperrors.ErrConnectionUnavailable
	}
	return a.initErr
}

// Backend names the active backend, or "none" when degraded.
func (a *Adapter) Backend() string {
	if !a.Available() {
		return "none"
	}
	return a.store.Name()
}

// CreateDocument inserts data into collection and returns the new identifier
// as plain text. created_at and updated_at are stamped on the stored copy.
// There is a single attempt; failures come back as *apperrors.PersistenceError.
func (a *Adapter) CreateDocument(ctx context.Context, collection string, data Document) (string, error) {
	if !a.Available() {
		return "", apperrors.ErrConnectionUnavailable
	}

	doc := maps.Clone(data)
	if doc == nil {
		doc = Document{}
	}
	now := a.now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	rawID, err := a.store.InsertOne(ctx, collection, doc)
	if err != nil {
		a.logger.Error().Err(err).Str("collection", collection).Msg("Insert failed")
		return "", apperrors.NewPersistenceError("insert into", collection, err)
	}

	id := NormalizeID(rawID)
	a.logger.Debug().Str("collection", collection).Str("id", id).Msg("Document created")
	return id, nil
}

// GetDocuments returns up to limit documents of collection matching filter.
// Each document still carries its raw identifier under IDKey. A degraded
// adapter returns an empty slice.
func (a *Adapter) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	if !a.Available() {
		return []Document{}, nil
	}

	docs, err := a.store.Find(ctx, collection, filter, limit)
	if err != nil {
		a.logger.Error().Err(err).Str("collection", collection).Msg("Query failed")
		return nil, apperrors.NewPersistenceError("query", collection, err)
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

// CountDocuments counts documents of collection matching filter.
func (a *Adapter) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	if !a.Available() {
		return 0, apperrors.ErrConnectionUnavailable
	}

	n, err := a.store.CountDocuments(ctx, collection, filter)
	if err != nil {
		return 0, apperrors.NewPersistenceError("count", collection, err)
	}
	return n, nil
}

// ListCollectionNames lists the collections of the active database.
func (a *Adapter) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !a.Available() {
		return nil, apperrors.ErrConnectionUnavailable
	}

	names, err := a.store.ListCollectionNames(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list", "collections", err)
	}
	return names, nil
}

// Ping checks the store round trip.
func (a *Adapter) Ping(ctx context.Context) error {
	if !a.Available() {
		return apperrors.ErrConnectionUnavailable
	}
	return a.store.Ping(ctx)
}

// Close releases the store handle. Closing a degraded adapter is a no-op.
func (a *Adapter) Close(ctx context.Context) error {
	if !a.Available() {
		return nil
	}
	if err := a.store.Close(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
