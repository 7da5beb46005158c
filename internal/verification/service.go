// Package verification implements the identity verification stage.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"loan-gateway/internal/customer"
	"loan-gateway/internal/domain"
)

// UnknownCity fills the city field when an identity is mock-accepted with
// only name and phone present.
const UnknownCity = "Unknown"

// Service resolves the KYC triplet against the identity directory. Identities
// without a directory match are still accepted and flagged as mock; only an
// incomplete triplet yields needs_input.
type Service struct {
	directory customer.Directory
	logger    *slog.Logger
}

func New(directory customer.Directory, logger *slog.Logger) *Service {
	return &Service{directory: directory, logger: logger}
}

// Verify returns needs_input when the context lacks identity fields, a mock
// verification when the directory has no match, and a canonical verification
// carrying the directory record otherwise. The error return is reserved for
// directory infrastructure faults.
func (s *Service) Verify(ctx context.Context, appCtx domain.Context) (domain.VerificationResult, error) {
	name, city, phone := appCtx.Name, appCtx.City, appCtx.Phone

	if name == "" || city == "" || phone == "" {
		if name != "" && phone != "" {
			if city == "" {
				city = UnknownCity
			}
			return domain.VerificationResult{
				Status: domain.VerificationVerified,
				Name:   name,
				City:   city,
				Phone:  phone,
				IsMock: true,
			}, nil
		}
		return domain.VerificationResult{Status: domain.VerificationNeedsInput}, nil
	}

	record, err := s.directory.FindByIdentity(ctx, name, city, phone)
	if errors.Is(err, customer.ErrNotFound) {
		s.logger.InfoContext(ctx, "identity not in directory, accepting as mock", "name", name, "city", city)
		return domain.VerificationResult{
			Status: domain.VerificationVerified,
			Name:   name,
			City:   city,
			Phone:  phone,
			IsMock: true,
		}, nil
	}
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("directory lookup: %w", err)
	}

	return domain.VerificationResult{
		Status:     domain.VerificationVerified,
		Name:       record.Name,
		City:       record.City,
		Phone:      record.Phone,
		CustomerID: record.ID,
	}, nil
}
