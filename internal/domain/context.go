package domain

// VerificationStatus is the outcome of an identity verification attempt.
type VerificationStatus string

const (
	VerificationNeedsInput VerificationStatus = "needs_input"
	VerificationVerified   VerificationStatus = "verified"
)

// Decision is the underwriting outcome for an application.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionPending  Decision = "pending"
	DecisionRejected Decision = "rejected"
)

// DocumentSalarySlip is the only document kind tracked today.
const DocumentSalarySlip = "salarySlip"

// VerificationResult records the outcome of the verify stage. IsMock flags
// identities accepted without a directory match so downstream consumers can
// tell registered customers apart.
type VerificationResult struct {
	Status     VerificationStatus `json:"status"`
	Name       string             `json:"name,omitempty"`
	City       string             `json:"city,omitempty"`
	Phone      string             `json:"phone,omitempty"`
	CustomerID string             `json:"customerId,omitempty"`
	IsMock     bool               `json:"isMock,omitempty"`
}

// UnderwritingDecision records the outcome of the underwrite stage.
// Pending and rejected are business outcomes, not errors.
type UnderwritingDecision struct {
	Decision         Decision `json:"decision"`
	PreApprovedLimit int64    `json:"preApprovedLimit"`
	ApprovedAmount   int64    `json:"approvedAmount"`
	InterestRate     float64  `json:"interestRate"`
	Reason           string   `json:"reason,omitempty"`
}

// SanctionLetter references a rendered approval document. Issued at most once
// per application.
type SanctionLetter struct {
	ID   string `json:"id"`
	Link string `json:"link"`
}

// Context is the accumulated application state threaded across conversational
// turns. The server never persists it; the caller resends it each turn.
// Scalar fields follow fill-if-empty semantics: once set they are never
// overwritten by a later extraction. Zero means unset for numeric fields.
type Context struct {
	Name         string                `json:"name"`
	City         string                `json:"city"`
	Phone        string                `json:"phone"`
	LoanAmount   int64                 `json:"loanAmount,omitempty"`
	TenureMonths int                   `json:"tenureMonths,omitempty"`
	Purpose      string                `json:"purpose,omitempty"`
	Verification *VerificationResult   `json:"verification,omitempty"`
	Underwriting *UnderwritingDecision `json:"underwriting,omitempty"`
	Documents    map[string]bool       `json:"documents,omitempty"`
	Sanction     *SanctionLetter       `json:"sanction,omitempty"`
}

// CaptureComplete reports whether the capture stage has everything it needs.
func (c Context) CaptureComplete() bool {
	return c.LoanAmount > 0 && c.TenureMonths > 0 && c.Purpose != ""
}

// KYCComplete reports whether the identity triplet is fully populated.
func (c Context) KYCComplete() bool {
	return c.Name != "" && c.City != "" && c.Phone != ""
}

// Verified reports whether a successful verification result is present.
func (c Context) Verified() bool {
	return c.Verification != nil && c.Verification.Status == VerificationVerified
}

// HasDocument reports whether a document of the given kind has been received.
func (c Context) HasDocument(kind string) bool {
	return c.Documents[kind]
}

// SetDocument flags a document kind as received.
func (c *Context) SetDocument(kind string) {
	if c.Documents == nil {
		c.Documents = make(map[string]bool)
	}
	c.Documents[kind] = true
}
