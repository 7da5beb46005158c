// Package sanction implements the final pipeline stage: rendering the
// approval letter and recording its retrieval link.
package sanction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"loan-gateway/internal/document"
	"loan-gateway/internal/domain"
)

// Letter is the data handed to the renderer collaborator.
type Letter struct {
	ApplicantName string
	City          string
	Amount        int64
	TenureMonths  int
	InterestRate  float64
}

// Renderer produces the sanction document bytes. Render failures are
// infrastructure faults; the caller is expected to surface them so the stage
// retries on the next turn.
type Renderer interface {
	Render(ctx context.Context, letter Letter) ([]byte, error)
}

// Service issues sanction letters. The at-most-once guarantee lives in the
// orchestrator's guard (sanction absent); Issue itself is stateless.
type Service struct {
	renderer  Renderer
	documents document.Store
	logger    *slog.Logger
}

func New(renderer Renderer, documents document.Store, logger *slog.Logger) *Service {
	return &Service{renderer: renderer, documents: documents, logger: logger}
}

// Issue renders the letter for an approved application, stores the PDF and
// returns its identifier and retrieval link. Nothing is recorded when
// rendering or storage fails, so a later turn can retry.
func (s *Service) Issue(ctx context.Context, appCtx domain.Context) (domain.SanctionLetter, error) {
	letter := Letter{
		ApplicantName: appCtx.Name,
		City:          appCtx.City,
		Amount:        appCtx.LoanAmount,
		TenureMonths:  appCtx.TenureMonths,
		InterestRate:  offer12Fallback,
	}
	if letter.ApplicantName == "" {
		letter.ApplicantName = "Customer"
	}
	if letter.City == "" {
		letter.City = "-"
	}
	if appCtx.Underwriting != nil {
		letter.InterestRate = appCtx.Underwriting.InterestRate
	}

	id := uuid.NewString()
	data, err := s.renderer.Render(ctx, letter)
	if err != nil {
		return domain.SanctionLetter{}, fmt.Errorf("render sanction letter: %w", err)
	}
	if err := s.documents.Put(ctx, id+".pdf", data); err != nil {
		return domain.SanctionLetter{}, fmt.Errorf("store sanction letter: %w", err)
	}

	s.logger.InfoContext(ctx, "sanction letter issued", "id", id, "applicant", letter.ApplicantName)
	return domain.SanctionLetter{ID: id, Link: "/pdf/" + id}, nil
}

// offer12Fallback mirrors the offer table's 12-month default rate for the
// letter when no underwriting decision is attached.
const offer12Fallback = 12.0
