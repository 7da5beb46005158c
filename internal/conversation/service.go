package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"loan-gateway/internal/audit"
	"loan-gateway/internal/capture"
	"loan-gateway/internal/customer"
	"loan-gateway/internal/domain"
	"loan-gateway/internal/extract"
	"loan-gateway/internal/platform/metrics"
	"loan-gateway/internal/sanction"
	"loan-gateway/internal/underwriting"
	"loan-gateway/internal/verification"
)

// uploadSignalRe recognizes the textual upload acknowledgment the frontend
// sends after a successful salary-slip upload. The coupling to the upload
// endpoint is by message text only; see the flagged open question in the
// design notes.
var uploadSignalRe = regexp.MustCompile(`(?i)uploaded\s+slip`)

// Service is the stage orchestrator. It holds no per-user state; every turn
// is recomputed from the caller-supplied context.
type Service struct {
	capture     *capture.Service
	verifier    *verification.Service
	underwriter *underwriting.Service
	sanctions   *sanction.Service
	directory   customer.Directory
	audit       *audit.Publisher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	tracer      trace.Tracer
}

func New(
	captureSvc *capture.Service,
	verifier *verification.Service,
	underwriter *underwriting.Service,
	sanctions *sanction.Service,
	directory customer.Directory,
	publisher *audit.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		capture:     captureSvc,
		verifier:    verifier,
		underwriter: underwriter,
		sanctions:   sanctions,
		directory:   directory,
		audit:       publisher,
		metrics:     m,
		logger:      logger,
		tracer:      otel.Tracer("loan-gateway/conversation"),
	}
}

// Run executes one conversational turn. A turn may cascade through several
// stages (verify, underwrite and sanction can all complete in one pass) but
// at most one stage ends the turn waiting for more input. The only error
// return is an infrastructure fault; business outcomes travel as data.
func (s *Service) Run(ctx context.Context, message string, appCtx domain.Context) (*TurnResult, error) {
	turnID := uuid.NewString()
	start := time.Now()
	defer func() {
		s.metrics.ObserveTurnDuration(time.Since(start).Seconds())
	}()

	var logs []string
	var results stageResults

	note := func(stage domain.Stage, line string, decision, reason string) {
		logs = append(logs, line)
		s.logger.InfoContext(ctx, line, "turn_id", turnID, "stage", string(stage))
		if s.audit != nil {
			s.audit.Emit(audit.Event{
				TurnID:   turnID,
				Stage:    string(stage),
				Action:   line,
				Decision: decision,
				Reason:   reason,
			})
		}
	}

	s.metrics.ObserveTurn()

	if !appCtx.CaptureComplete() {
		sctx, span := s.startStage(ctx, domain.StageCapture)
		note(domain.StageCapture, "orchestrator→capture: collect loan details", "", "")
		res, err := s.capture.Run(sctx, message, appCtx)
		span.End()
		if err != nil {
			return nil, err
		}
		appCtx = res.Updated
		results.captureRan = true
		results.capturePrompt = res.Prompt
		s.metrics.ObserveStage(domain.StageCapture)
		if !appCtx.CaptureComplete() {
			note(domain.StageCapture, "capture: awaiting more details", "", "")
			return composeTurn(appCtx, results, logs), nil
		}
	}

	if !appCtx.Verified() {
		sctx, span := s.startStage(ctx, domain.StageVerify)
		note(domain.StageVerify, "orchestrator→verification: verify identity", "", "")
		if !appCtx.KYCComplete() {
			cities, err := s.directory.Cities(sctx)
			if err != nil {
				span.End()
				return nil, fmt.Errorf("list directory cities: %w", err)
			}
			kyc := extract.KYCFields(message, cities)
			if appCtx.Name == "" && kyc.Name != "" {
				appCtx.Name = kyc.Name
			}
			if appCtx.City == "" && kyc.City != "" {
				appCtx.City = kyc.City
			}
			if appCtx.Phone == "" && kyc.Phone != "" {
				appCtx.Phone = kyc.Phone
			}
		}
		v, err := s.verifier.Verify(sctx, appCtx)
		span.End()
		if err != nil {
			return nil, err
		}
		appCtx.Verification = &v
		results.verification = &v
		s.metrics.ObserveStage(domain.StageVerify)
		if v.Status != domain.VerificationVerified {
			note(domain.StageVerify, "verification: needs input", string(v.Status), "")
			return composeTurn(appCtx, results, logs), nil
		}
	}

	// Forced re-evaluation: an upload acknowledgment while the decision is
	// pending flags the slip and clears the decision so underwriting reruns.
	if uploadSignalRe.MatchString(message) && appCtx.Underwriting != nil && appCtx.Underwriting.Decision == domain.DecisionPending {
		appCtx.SetDocument(domain.DocumentSalarySlip)
		appCtx.Underwriting = nil
		note(domain.StageUnderwrite, "orchestrator: salary slip received, re-evaluating underwriting", "", "")
	}

	if appCtx.Underwriting == nil {
		sctx, span := s.startStage(ctx, domain.StageUnderwrite)
		note(domain.StageUnderwrite, "orchestrator→underwriting: evaluate eligibility", "", "")
		u := s.underwriter.Evaluate(sctx, appCtx)
		span.End()
		appCtx.Underwriting = &u
		results.underwriting = &u
		s.metrics.ObserveStage(domain.StageUnderwrite)
		s.metrics.ObserveDecision(u.Decision)
		if u.Decision != domain.DecisionApproved {
			note(domain.StageUnderwrite, fmt.Sprintf("underwriting: decision=%s", u.Decision), string(u.Decision), u.Reason)
			return composeTurn(appCtx, results, logs), nil
		}
		note(domain.StageUnderwrite, "underwriting: decision=approved", string(u.Decision), "")
	}

	if appCtx.Underwriting.Decision == domain.DecisionApproved && appCtx.Sanction == nil {
		sctx, span := s.startStage(ctx, domain.StageSanction)
		note(domain.StageSanction, "orchestrator→sanction: generate letter", "", "")
		letter, err := s.sanctions.Issue(sctx, appCtx)
		span.End()
		if err != nil {
			// Infrastructure fault: underwriting stays approved with no
			// sanction recorded, so the next turn retries this stage.
			return nil, err
		}
		appCtx.Sanction = &letter
		results.sanction = &letter
		s.metrics.ObserveStage(domain.StageSanction)
		s.metrics.ObserveSanctionIssued()
	}

	return composeTurn(appCtx, results, logs), nil
}

func (s *Service) startStage(ctx context.Context, stage domain.Stage) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "stage."+string(stage),
		trace.WithAttributes(attribute.String("loan.stage", string(stage))))
}
