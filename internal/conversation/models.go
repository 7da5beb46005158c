// Package conversation orchestrates the loan pipeline for one chat turn:
// it derives the current unfinished stage from the accumulated context, runs
// it, and either cascades into the next stage or stops to wait for input.
package conversation

import "loan-gateway/internal/domain"

// TurnResult is the full outcome of one conversational turn: the composed
// user-facing message, the updated context the caller must resend, the
// orchestration log lines, and the raw per-stage results for programmatic
// consumption.
type TurnResult struct {
	Message              string                       `json:"message"`
	Context              domain.Context               `json:"context"`
	Logs                 []string                     `json:"logs"`
	CaptureResponse      string                       `json:"captureResponse,omitempty"`
	VerificationResult   *domain.VerificationResult   `json:"verificationResult,omitempty"`
	UnderwritingDecision *domain.UnderwritingDecision `json:"underwritingDecision,omitempty"`
	SanctionLetterLink   string                       `json:"sanctionLetterLink,omitempty"`
}

// stageResults collects what actually executed this turn, in stage order.
type stageResults struct {
	capturePrompt string
	captureRan    bool
	verification  *domain.VerificationResult
	underwriting  *domain.UnderwritingDecision
	sanction      *domain.SanctionLetter
}
