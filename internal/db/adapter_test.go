package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniportal/internal/config"
	"github.com/yigit/uniportal/internal/db"
	"github.com/yigit/uniportal/internal/db/dbtest"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

func TestAdapterCreateAndGet(t *testing.T) {
	ctx := context.Background()
	a := db.NewAdapter(db.NewMemoryStore(), zerolog.Nop())
	require.True(t, a.Available())
	assert.Equal(t, "memory", a.Backend())

	id, err := a.CreateDocument(ctx, "department", db.Document{"name": "Design"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := a.GetDocuments(ctx, "department", db.Filter{}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Design", docs[0]["name"])
	assert.Contains(t, docs[0], "created_at")
	assert.Contains(t, docs[0], "updated_at")
	assert.Equal(t, id, db.NormalizeID(docs[0][db.IDKey]))
}

func TestAdapterCreateDoesNotMutateInput(t *testing.T) {
	a := db.NewAdapter(db.NewMemoryStore(), zerolog.Nop())
	in := db.Document{"name": "Business"}

	_, err := a.CreateDocument(context.Background(), "department", in)
	require.NoError(t, err)
	assert.Equal(t, db.Document{"name": "Business"}, in)
}

func TestAdapterDegraded(t *testing.T) {
	ctx := context.Background()
	a := db.Degraded(db.ErrNotConfigured, zerolog.Nop())

	assert.False(t, a.Available())
	assert.Equal(t, "none", a.Backend())
	assert.ErrorIs(t, a.InitError(), apperrors.ErrConnectionUnavailable)

	docs, err := a.GetDocuments(ctx, "news", nil, 10)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)

	_, err = a.CreateDocument(ctx, "inquiry", db.Document{"name": "Jo"})
	assert.ErrorIs(t, err, apperrors.ErrConnectionUnavailable)

	_, err = a.CountDocuments(ctx, "news", nil)
	assert.ErrorIs(t, err, apperrors.ErrConnectionUnavailable)

	_, err = a.ListCollectionNames(ctx)
	assert.ErrorIs(t, err, apperrors.ErrConnectionUnavailable)

	assert.NoError(t, a.Close(ctx))
}

func TestNilAdapterIsDegraded(t *testing.T) {
	var a *db.Adapter
	assert.False(t, a.Available())
	assert.Error(t, a.InitError())

	docs, err := a.GetDocuments(context.Background(), "news", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestAdapterWrapsStoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset by peer")
	store := dbtest.NewFailingStore(boom)
	store.FailInsert = true
	store.FailFind = true
	a := db.NewAdapter(store, zerolog.Nop())

	_, err := a.CreateDocument(ctx, "inquiry", db.Document{"name": "Jo"})
	var pe *apperrors.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "inquiry", pe.Collection)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, err, boom)

	_, err = a.GetDocuments(ctx, "news", nil, 10)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestOpenWithoutSettingsIsDegraded(t *testing.T) {
	cfg := &config.Config{}
	a := db.Open(context.Background(), cfg, zerolog.Nop())

	assert.False(t, a.Available())
	assert.ErrorIs(t, a.InitError(), db.ErrNotConfigured)
}

func TestOpenMemoryDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverMemory

	a := db.Open(context.Background(), cfg, zerolog.Nop())
	require.True(t, a.Available())
	assert.Equal(t, "memory", a.Backend())
	assert.NoError(t, a.Ping(context.Background()))
}

func TestOpenUnknownSchemeIsDegraded(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.URL = "redis://localhost:6379"
	cfg.Database.Name = "university"

	a := db.Open(context.Background(), cfg, zerolog.Nop())
	assert.False(t, a.Available())
	assert.ErrorIs(t, a.InitError(), apperrors.ErrConnectionUnavailable)
}

func TestOpenBadStoreSettingsAreDegraded(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		timeout  string
		maxConns string
		wantMsg  string
	}{
		{"unsupported driver", "sqlite", "", "", `unsupported store driver "sqlite"`},
		{"unsupported driver without url", "redis", "", "", "unsupported store driver"},
		{"connect timeout format", config.DriverMongo, "soon", "", "DB_CONNECT_TIMEOUT"},
		{"connect timeout zero", config.DriverPostgres, "0s", "", "DB_CONNECT_TIMEOUT"},
		{"max conns format", config.DriverMongo, "5s", "ten", "DB_MAX_CONNS"},
		{"max conns negative", config.DriverPostgres, "5s", "-1", "DB_MAX_CONNS"},
		{"max conns overflow", config.DriverPostgres, "5s", "4294967296", "DB_MAX_CONNS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Database.Driver = tt.driver
			if tt.name != "unsupported driver without url" {
				cfg.Database.URL = "mongodb://127.0.0.1:1"
				cfg.Database.Name = "university"
			}
			cfg.Database.ConnectTimeout = tt.timeout
			cfg.Database.MaxConns = tt.maxConns

			a := db.Open(context.Background(), cfg, zerolog.Nop())
			assert.False(t, a.Available())
			assert.ErrorIs(t, a.InitError(), apperrors.ErrConnectionUnavailable)
			assert.Contains(t, a.InitError().Error(), tt.wantMsg)
		})
	}
}
