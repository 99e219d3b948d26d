package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/uniportal/internal/app/models"
	"github.com/yigit/uniportal/internal/app/models/dto"
	"github.com/yigit/uniportal/internal/app/repositories"
	"github.com/yigit/uniportal/internal/config"
	"github.com/yigit/uniportal/internal/db"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
	"github.com/yigit/uniportal/internal/pkg/dberrors"
	"github.com/yigit/uniportal/internal/pkg/metrics"
	"github.com/yigit/uniportal/internal/seed"
)

// Diagnostic labels reported by /test
const (
	StatusRunning        = "✅ Running"
	StatusNotAvailable   = "❌ Not Available"
	StatusWorking        = "✅ Connected & Working"
	StatusNotInitialized = "⚠️ Available but not initialized"
	StatusSet            = "✅ Set"
	StatusNotSet         = "❌ Not Set"

	ConnectionNotConnected = "Not Connected"
	ConnectionConnected    = "Connected"
	ConnectionUnreachable  = "Unreachable"

	diagnosticErrorLength = 80
	maxListedCollections  = 10
)

// StatusService backs the liveness, diagnostic and seeding endpoints
type StatusService struct {
	store   *db.Adapter
	repos   *repositories.Repositories
	cfg     *config.Config
	metrics *metrics.Manager
	logger  zerolog.Logger
}

// NewStatusService creates a new status service instance
func NewStatusService(store *db.Adapter, repos *repositories.Repositories, cfg *config.Config, m *metrics.Manager, lgr zerolog.Logger) *StatusService {
	return &StatusService{
		store:   store,
		repos:   repos,
		cfg:     cfg,
		metrics: m,
		logger:  lgr,
	}
}

// Diagnose probes the store and reports what it finds. It never fails:
// every error is captured, truncated and reported inside the payload.
func (s *StatusService) Diagnose(ctx context.Context) (resp *dto.DiagnosticResponse) {
	resp = &dto.DiagnosticResponse{
		Backend:          StatusRunning,
		Database:         StatusNotAvailable,
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("Diagnostic probe panicked")
			resp.Database = "❌ Error: " + cut(panicMessage(r), diagnosticErrorLength)
		}
	}()

	if !s.store.Available() {
		if s.store != nil {
			resp.Database = StatusNotInitialized
		}
		return resp
	}

	resp.Database = StatusWorking
	resp.DatabaseURL = presence(s.cfg.HasDatabaseURL())
	resp.DatabaseName = presence(s.cfg.HasDatabaseName())

	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		resp.Database = "⚠️ Connected but Error: " + cut(rootMessage(err), diagnosticErrorLength)
		if dberrors.IsConnectionError(err) {
			resp.ConnectionStatus = ConnectionUnreachable
		}
		return resp
	}

	resp.ConnectionStatus = ConnectionConnected
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	return resp
}

// Health reports whether the store answers a ping.
func (s *StatusService) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{Status: "ok", Backend: s.store.Backend()}
	if !s.store.Available() {
		resp.Error = cut(s.store.InitError().Error(), diagnosticErrorLength)
		return resp
	}
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Store ping failed")
		resp.Error = cut(err.Error(), diagnosticErrorLength)
		return resp
	}
	resp.Database = true
	return resp
}

// Seed inserts the demo content into empty collections. When the store is
// unavailable nothing is attempted and the status is "no-db".
func (s *StatusService) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	if !s.store.Available() {
		return &dto.SeedResponse{Status: dto.SeedStatusNoDB}, nil
	}

	res, err := seed.CreateDemoData(ctx, s.repos, s.logger)
	s.metrics.RecordSeeded(models.CollectionDepartment, res.Departments)
	s.metrics.RecordSeeded(models.CollectionCourse, res.Courses)
	s.metrics.RecordSeeded(models.CollectionNews, res.News)
	if err != nil {
		return nil, err
	}

	return &dto.SeedResponse{
		Status: dto.SeedStatusSeeded,
		Inserted: &dto.SeedCounts{
			Departments: res.Departments,
			Courses:     res.Courses,
			News:        res.News,
		},
	}, nil
}

func presence(ok bool) *string {
	v := StatusNotSet
	if ok {
		v = StatusSet
	}
	return &v
}

// rootMessage prefers the driver's own error text over our wrapping.
func rootMessage(err error) string {
	var persistenceErr *apperrors.PersistenceError
	if errors.As(err, &persistenceErr) && persistenceErr.Err != nil {
		return persistenceErr.Err.Error()
	}
	return err.Error()
}

// cut keeps the first n runes of s, without a marker.
func cut(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unexpected failure"
}
