// Package capture implements the first pipeline stage: pulling loan details
// and KYC fields out of the user's message and prompting for whatever is
// still missing.
package capture

import (
	"context"
	"fmt"
	"log/slog"

	"loan-gateway/internal/customer"
	"loan-gateway/internal/domain"
	"loan-gateway/internal/extract"
	"loan-gateway/pkg/format"
)

// Service runs the extractors against the current message and composes the
// clarifying prompt. It never overwrites a field that is already set.
type Service struct {
	directory customer.Directory
	logger    *slog.Logger
}

// Result carries the updated context and the stage's user-facing prompt.
type Result struct {
	Updated domain.Context
	Prompt  string
}

func New(directory customer.Directory, logger *slog.Logger) *Service {
	return &Service{directory: directory, logger: logger}
}

// Run extracts amount, tenure, purpose and KYC fields from the message with
// fill-if-empty semantics, then picks the prompt for the first unmet need in
// priority order: amount and tenure, then purpose, then the KYC triplet.
func (s *Service) Run(ctx context.Context, message string, appCtx domain.Context) (Result, error) {
	updated := appCtx

	if updated.LoanAmount == 0 {
		if amount, ok := extract.Amount(message); ok {
			updated.LoanAmount = amount
		}
	}
	if updated.TenureMonths == 0 {
		if months, ok := extract.Tenure(message); ok {
			updated.TenureMonths = months
		}
	}
	if updated.Purpose == "" {
		if purpose := extract.Purpose(message); purpose != "" {
			updated.Purpose = purpose
		}
	}

	if !updated.KYCComplete() {
		cities, err := s.directory.Cities(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("list directory cities: %w", err)
		}
		kyc := extract.KYCFields(message, cities)
		if updated.Name == "" && kyc.Name != "" {
			updated.Name = kyc.Name
		}
		if updated.City == "" && kyc.City != "" {
			updated.City = kyc.City
		}
		if updated.Phone == "" && kyc.Phone != "" {
			updated.Phone = kyc.Phone
		}
	}

	return Result{Updated: updated, Prompt: prompt(updated)}, nil
}

func prompt(c domain.Context) string {
	switch {
	case c.LoanAmount == 0 || c.TenureMonths == 0:
		return "Sure! Please tell me your desired amount and tenure."
	case c.Purpose == "":
		return "Great! What is the purpose of the loan?"
	case !c.KYCComplete():
		return "Please share your full name, city, and 10-digit phone (e.g., Ayush Prajapati, Varanasi, 9876543210)."
	default:
		return fmt.Sprintf("Thanks! Captured ₹%s for %d months, purpose: %s. Proceeding to KYC verification.",
			format.IndianAmount(c.LoanAmount), c.TenureMonths, c.Purpose)
	}
}
