package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/uniportal/internal/app/models"
	"github.com/yigit/uniportal/internal/app/repositories"
	"github.com/yigit/uniportal/internal/pkg/metrics"
)

// InquiryService records visitor inquiries
type InquiryService struct {
	inquiryRepo *repositories.InquiryRepository
	metrics     *metrics.Manager
	logger      zerolog.Logger
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(inquiryRepo *repositories.InquiryRepository, m *metrics.Manager, lgr zerolog.Logger) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		metrics:     m,
		logger:      lgr,
	}
}

// Create validates the payload and stores it. Nothing is written unless
// validation succeeds. Returns the identifier of the stored inquiry.
func (s *InquiryService) Create(ctx context.Context, payload map[string]any) (string, error) {
	inquiry, err := models.NewInquiry(payload)
	if err != nil {
		return "", err
	}

	id, err := s.inquiryRepo.Create(ctx, inquiry)
	if err != nil {
		return "", err
	}

	s.metrics.RecordInquiry()
	s.logger.Info().Str("id", id).Msg("Inquiry stored")
	return id, nil
}
