package domain

// Stage is one phase of the loan pipeline.
type Stage string

const (
	StageCapture    Stage = "capture"
	StageVerify     Stage = "verify"
	StageUnderwrite Stage = "underwrite"
	StageSanction   Stage = "sanction"
	StageDone       Stage = "done"
)

// CurrentStage derives the first incomplete stage from context contents.
// No stage enum is ever stored; progress resumes purely from what the
// caller-supplied context already contains.
func CurrentStage(c Context) Stage {
	switch {
	case !c.CaptureComplete():
		return StageCapture
	case !c.Verified():
		return StageVerify
	case c.Underwriting == nil:
		return StageUnderwrite
	case c.Underwriting.Decision == DecisionApproved && c.Sanction == nil:
		return StageSanction
	default:
		return StageDone
	}
}
