package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentStagePrecedence(t *testing.T) {
	verified := &VerificationResult{Status: VerificationVerified, Name: "A B", Phone: "9876543210"}
	approved := &UnderwritingDecision{Decision: DecisionApproved, ApprovedAmount: 80000}
	rejected := &UnderwritingDecision{Decision: DecisionRejected, Reason: "amount exceeds 2x approval limit"}

	tests := []struct {
		name string
		ctx  Context
		want Stage
	}{
		{"empty", Context{}, StageCapture},
		{"missing tenure", Context{LoanAmount: 80000, Purpose: "education"}, StageCapture},
		{"missing purpose", Context{LoanAmount: 80000, TenureMonths: 12}, StageCapture},
		{
			"capture done, unverified",
			Context{LoanAmount: 80000, TenureMonths: 12, Purpose: "education"},
			StageVerify,
		},
		{
			"verification needs input still verify",
			Context{LoanAmount: 80000, TenureMonths: 12, Purpose: "education",
				Verification: &VerificationResult{Status: VerificationNeedsInput}},
			StageVerify,
		},
		{
			"verified, no decision",
			Context{LoanAmount: 80000, TenureMonths: 12, Purpose: "education", Verification: verified},
			StageUnderwrite,
		},
		{
			"approved, no sanction",
			Context{LoanAmount: 80000, TenureMonths: 12, Purpose: "education",
				Verification: verified, Underwriting: approved},
			StageSanction,
		},
		{
			"approved and sanctioned",
			Context{LoanAmount: 80000, TenureMonths: 12, Purpose: "education",
				Verification: verified, Underwriting: approved, Sanction: &SanctionLetter{ID: "x"}},
			StageDone,
		},
		{
			"rejected terminates",
			Context{LoanAmount: 300000, TenureMonths: 12, Purpose: "education",
				Verification: verified, Underwriting: rejected},
			StageDone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CurrentStage(tt.ctx))
		})
	}
}

func TestContextDocumentHelpers(t *testing.T) {
	var ctx Context
	require.False(t, ctx.HasDocument(DocumentSalarySlip))
	ctx.SetDocument(DocumentSalarySlip)
	require.True(t, ctx.HasDocument(DocumentSalarySlip))
}
