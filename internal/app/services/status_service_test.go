package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniportal/internal/app/models/dto"
	"github.com/yigit/uniportal/internal/app/repositories"
	"github.com/yigit/uniportal/internal/config"
	"github.com/yigit/uniportal/internal/db"
	"github.com/yigit/uniportal/internal/db/dbtest"
)

func newStatusService(store *db.Adapter, cfg *config.Config) *StatusService {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewStatusService(store, repositories.NewRepositories(store), cfg, nil, zerolog.Nop())
}

func TestDiagnoseDegraded(t *testing.T) {
	svc := newStatusService(db.Degraded(db.ErrNotConfigured, zerolog.Nop()), nil)

	resp := svc.Diagnose(context.Background())
	assert.Equal(t, StatusRunning, resp.Backend)
	assert.Equal(t, StatusNotInitialized, resp.Database)
	assert.Nil(t, resp.DatabaseURL)
	assert.Nil(t, resp.DatabaseName)
	assert.Equal(t, ConnectionNotConnected, resp.ConnectionStatus)
	assert.NotNil(t, resp.Collections)
	assert.Empty(t, resp.Collections)
}

func TestDiagnoseNilStore(t *testing.T) {
	svc := NewStatusService(nil, repositories.NewRepositories(nil), &config.Config{}, nil, zerolog.Nop())

	resp := svc.Diagnose(context.Background())
	assert.Equal(t, StatusNotAvailable, resp.Database)
}

func TestDiagnoseConnected(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMemoryStore()
	for i := 0; i < 12; i++ {
		_, err := mem.InsertOne(ctx, fmt.Sprintf("c%02d", i), db.Document{})
		require.NoError(t, err)
	}
	cfg := &config.Config{}
	cfg.Database.URL = "mongodb://secret-host:27017"

	resp := newStatusService(db.NewAdapter(mem, zerolog.Nop()), cfg).Diagnose(ctx)

	assert.Equal(t, StatusWorking, resp.Database)
	require.NotNil(t, resp.DatabaseURL)
	require.NotNil(t, resp.DatabaseName)
	assert.Equal(t, StatusSet, *resp.DatabaseURL)
	assert.Equal(t, StatusNotSet, *resp.DatabaseName)
	assert.Equal(t, ConnectionConnected, resp.ConnectionStatus)
	assert.Len(t, resp.Collections, 10)
	assert.Equal(t, "c00", resp.Collections[0])
}

func TestDiagnoseListFailureIsReported(t *testing.T) {
	store := dbtest.NewFailingStore(errors.New(strings.Repeat("x", 200)))
	store.FailList = true

	resp := newStatusService(db.NewAdapter(store, zerolog.Nop()), nil).Diagnose(context.Background())

	require.True(t, strings.HasPrefix(resp.Database, "⚠️ Connected but Error: "))
	msg := strings.TrimPrefix(resp.Database, "⚠️ Connected but Error: ")
	assert.Equal(t, strings.Repeat("x", 80), msg)
	assert.Equal(t, ConnectionNotConnected, resp.ConnectionStatus)
	assert.Empty(t, resp.Collections)
}

func TestDiagnoseUnreachableStore(t *testing.T) {
	store := dbtest.NewFailingStore(context.DeadlineExceeded)
	store.FailList = true

	resp := newStatusService(db.NewAdapter(store, zerolog.Nop()), nil).Diagnose(context.Background())
	assert.Equal(t, ConnectionUnreachable, resp.ConnectionStatus)
}

func TestHealth(t *testing.T) {
	ctx := context.Background()

	up := newStatusService(db.NewAdapter(db.NewMemoryStore(), zerolog.Nop()), nil).Health(ctx)
	assert.Equal(t, &dto.HealthResponse{Status: "ok", Backend: "memory", Database: true}, up)

	down := newStatusService(db.Degraded(nil, zerolog.Nop()), nil).Health(ctx)
	assert.Equal(t, &dto.HealthResponse{Status: "ok", Backend: "none", Database: false, Error: "database not available"}, down)

	notConfigured := newStatusService(db.Degraded(db.ErrNotConfigured, zerolog.Nop()), nil).Health(ctx)
	assert.Contains(t, notConfigured.Error, "DATABASE_URL")

	failing := dbtest.NewFailingStore(errors.New("no route to host"))
	failing.FailPing = true
	flaky := newStatusService(db.NewAdapter(failing, zerolog.Nop()), nil).Health(ctx)
	assert.False(t, flaky.Database)
	assert.Equal(t, "no route to host", flaky.Error)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	svc := newStatusService(db.NewAdapter(db.NewMemoryStore(), zerolog.Nop()), nil)

	first, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.SeedStatusSeeded, first.Status)
	assert.Equal(t, &dto.SeedCounts{Departments: 3, Courses: 2, News: 2}, first.Inserted)

	second, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, &dto.SeedCounts{}, second.Inserted)
}

func TestSeedWithoutStore(t *testing.T) {
	svc := newStatusService(db.Degraded(nil, zerolog.Nop()), nil)

	resp, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.SeedResponse{Status: dto.SeedStatusNoDB}, resp)
}

func TestSeedCountFailure(t *testing.T) {
	store := dbtest.NewFailingStore(errors.New("not authorized on university"))
	store.FailCount = true
	svc := newStatusService(db.NewAdapter(store, zerolog.Nop()), nil)

	resp, err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Zero(t, store.Inserts())
}
