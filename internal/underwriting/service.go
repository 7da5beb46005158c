// Package underwriting implements the deterministic eligibility policy.
package underwriting

import (
	"context"
	"log/slog"

	"loan-gateway/internal/domain"
	"loan-gateway/internal/offer"
)

// DefaultPreApprovedLimit is the universal approval limit in currency units.
const DefaultPreApprovedLimit int64 = 100_000

const (
	reasonRequiresSlip = "requires salary slip"
	reasonExceedsLimit = "amount exceeds 2x approval limit"
)

// Service evaluates an application against the pre-approved limit and
// resolves the interest rate from the offer table. Pending and rejected
// decisions are business outcomes, never errors.
type Service struct {
	offers *offer.Table
	limit  int64
	logger *slog.Logger
}

func New(offers *offer.Table, limit int64, logger *slog.Logger) *Service {
	if limit <= 0 {
		limit = DefaultPreApprovedLimit
	}
	return &Service{offers: offers, limit: limit, logger: logger}
}

// Evaluate applies the threshold policy: within the limit approves outright,
// up to twice the limit approves only with a salary slip on file (pending
// otherwise), and anything beyond twice the limit is rejected.
func (s *Service) Evaluate(ctx context.Context, appCtx domain.Context) domain.UnderwritingDecision {
	rate := s.offers.ForTenure(appCtx.TenureMonths).InterestRate
	decision, reason := decide(appCtx.LoanAmount, s.limit, appCtx.HasDocument(domain.DocumentSalarySlip))

	approvedAmount := int64(0)
	if decision == domain.DecisionApproved {
		approvedAmount = appCtx.LoanAmount
	}

	s.logger.InfoContext(ctx, "underwriting evaluated",
		"decision", string(decision),
		"amount", appCtx.LoanAmount,
		"limit", s.limit,
		"rate", rate,
	)

	return domain.UnderwritingDecision{
		Decision:         decision,
		PreApprovedLimit: s.limit,
		ApprovedAmount:   approvedAmount,
		InterestRate:     rate,
		Reason:           reason,
	}
}

// decide is the pure threshold rule, a function of amount and slip presence
// only.
func decide(amount, limit int64, hasSalarySlip bool) (domain.Decision, string) {
	switch {
	case amount <= limit:
		return domain.DecisionApproved, ""
	case amount <= 2*limit:
		if hasSalarySlip {
			return domain.DecisionApproved, ""
		}
		return domain.DecisionPending, reasonRequiresSlip
	default:
		return domain.DecisionRejected, reasonExceedsLimit
	}
}
