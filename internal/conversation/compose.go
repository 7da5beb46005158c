package conversation

import (
	"fmt"
	"strings"

	"loan-gateway/internal/domain"
	"loan-gateway/pkg/format"
)

// composeTurn renders the fragments for every stage that executed this turn,
// in stage order, into one user-facing message. The verification re-enter
// prompt is suppressed when capture already produced an ask so a single turn
// never issues two competing prompts.
func composeTurn(appCtx domain.Context, results stageResults, logs []string) *TurnResult {
	var parts []string

	if results.captureRan {
		parts = append(parts, results.capturePrompt)
	}

	if v := results.verification; v != nil {
		if v.Status == domain.VerificationVerified {
			parts = append(parts, fmt.Sprintf("✅ Verified for %s, %s.", v.Name, v.City))
		} else if !results.captureRan {
			parts = append(parts, "Could not verify details. Please re-enter name, phone, and city.")
		}
	}

	if u := results.underwriting; u != nil {
		switch u.Decision {
		case domain.DecisionApproved:
			parts = append(parts, fmt.Sprintf("✅ Approved. Amount ₹%s at %s%% for %d months.",
				format.IndianAmount(u.ApprovedAmount), format.Rate(u.InterestRate), appCtx.TenureMonths))
			parts = append(parts, "Generating your sanction letter...")
		case domain.DecisionPending:
			parts = append(parts, "⏳ Pending. Please upload your latest salary slip to proceed.")
		default:
			parts = append(parts, fmt.Sprintf("❌ Rejected. Reason: %s.", u.Reason))
		}
	}

	if results.sanction != nil {
		parts = append(parts, "Sanction letter ready: "+results.sanction.Link)
	}

	result := &TurnResult{
		Message: strings.Join(parts, " "),
		Context: appCtx,
		Logs:    logs,
	}
	if results.captureRan {
		result.CaptureResponse = results.capturePrompt
	}
	result.VerificationResult = results.verification
	result.UnderwritingDecision = results.underwriting
	if results.sanction != nil {
		result.SanctionLetterLink = results.sanction.Link
	}
	if result.Logs == nil {
		result.Logs = []string{}
	}
	return result
}
