package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/generator"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/optimizer"
	"github.com/qaforge/qaforge/pkg/recon"
	"github.com/qaforge/qaforge/pkg/services"
	"github.com/qaforge/qaforge/pkg/validator"
)

// LLM is the slice of the llm client the pipeline needs: chat calls for
// generation and embeddings for semantic dedup.
type LLM interface {
	generator.LLM
	optimizer.Embedder
}

// PipelineExecutor runs the four-stage pipeline for one claimed request:
// reconnaissance, generation, validation, optimization. Stages already
// recorded in the request's checkpoint are skipped, so a re-queued
// request resumes instead of starting over. Each stage enforces its own
// timeout and retry budget; stage outputs and the checkpoint are
// persisted progressively.
type PipelineExecutor struct {
	cfg         *config.Config
	requests    *services.RequestService
	testCases   *services.TestCaseService
	metrics     *services.MetricService
	coverage    *services.CoverageService
	audits      *services.AuditService
	checkpoints *services.CheckpointService
	explorer    recon.Explorer
	generator   *generator.Generator
	optimizer   *optimizer.Optimizer
	publisher   *events.EventPublisher
	logger      *slog.Logger
}

// NewPipelineExecutor creates a pipeline executor.
// publisher may be nil (streaming disabled).
func NewPipelineExecutor(
	cfg *config.Config,
	client *ent.Client,
	llmClient LLM,
	explorer recon.Explorer,
	publisher *events.EventPublisher,
	logger *slog.Logger,
) *PipelineExecutor {
	return &PipelineExecutor{
		cfg:         cfg,
		requests:    services.NewRequestService(client),
		testCases:   services.NewTestCaseService(client),
		metrics:     services.NewMetricService(client),
		coverage:    services.NewCoverageService(client),
		audits:      services.NewAuditService(client),
		checkpoints: services.NewCheckpointService(client),
		explorer:    explorer,
		generator:   generator.New(llmClient, logger),
		optimizer:   optimizer.New(llmClient, cfg.Optimizer.SemanticThreshold, logger),
		publisher:   publisher,
		logger:      logger.With("component", "executor"),
	}
}

// pipelineRun carries the in-memory state of one Execute call.
type pipelineRun struct {
	req   *ent.Request
	state *checkpointState
}

// stageOutcome carries per-attempt accounting back to the stage loop.
type stageOutcome struct {
	usage llmUsage
	model string
}

// llmUsage mirrors llm.Usage without importing it here.
type llmUsage struct {
	prompt     int
	completion int
	total      int
}

// Execute runs the pipeline for one request and returns its terminal
// result. The worker owns the terminal status write; Execute only moves
// the request through the active stages.
func (e *PipelineExecutor) Execute(ctx context.Context, req *ent.Request) *ExecutionResult {
	log := e.logger.With("request_id", req.ID)
	start := time.Now()

	state, loadErr := e.loadState(ctx, req.ID)
	if loadErr != nil {
		log.Error("Checkpoint unusable, failing request", "error", loadErr)
		return &ExecutionResult{
			Status:    request.StatusFailed,
			ErrorCode: models.ErrorCode(loadErr),
			Err:       loadErr,
		}
	}
	if len(state.Completed) > 0 {
		log.Info("Resuming from checkpoint", "completed_stages", state.Completed)
	}

	run := &pipelineRun{req: req, state: state}

	for _, stage := range models.Stages {
		if ctx.Err() != nil {
			return e.cancelledResult(ctx, run, stage)
		}
		if state.done(stage) {
			log.Info("Stage already checkpointed, skipping", "stage", stage)
			continue
		}
		if res := e.runStage(ctx, run, stage); res != nil {
			return res
		}
	}

	summary := models.ResultSummary{}
	if state.Summary != nil {
		summary = *state.Summary
	}
	summary.DurationMS = time.Since(start).Milliseconds()

	log.Info("Pipeline complete",
		"tests_generated", summary.TestsGenerated,
		"tests_valid", summary.TestsValid,
		"duplicates_found", summary.DuplicatesFound,
		"duration_ms", summary.DurationMS)

	return &ExecutionResult{Status: request.StatusCompleted, Summary: &summary}
}

// loadState fetches and decodes the request's checkpoint. A missing
// checkpoint is a fresh start; a corrupt one is a permanent failure.
func (e *PipelineExecutor) loadState(ctx context.Context, requestID string) (*checkpointState, error) {
	cp, err := e.checkpoints.GetCheckpoint(ctx, requestID)
	if errors.Is(err, services.ErrNotFound) {
		return &checkpointState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return decodeCheckpoint(cp.Version, cp.Payload)
}

// runStage moves the request onto a stage and drives it through its
// retry budget. A nil return means the stage completed and was
// checkpointed; a non-nil result is terminal for the request.
func (e *PipelineExecutor) runStage(ctx context.Context, run *pipelineRun, stage models.Stage) *ExecutionResult {
	log := e.logger.With("request_id", run.req.ID, "stage", stage)

	if err := e.requests.UpdateStatus(ctx, run.req.ID, request.Status(stage)); err != nil {
		log.Error("Failed to move request onto stage", "error", err)
		return &ExecutionResult{
			Status:    request.StatusFailed,
			ErrorCode: models.CodeInternal,
			Err:       fmt.Errorf("failed to enter stage %s: %w", stage, err),
		}
	}
	e.publishRequestStatus(run.req.ID, string(stage))

	timeout := e.stageTimeout(stage, run)
	maxAttempts := e.stageAttempts(stage)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return e.cancelledResult(ctx, run, stage)
		}

		e.publishStageStatus(run.req.ID, stage, events.StageStatusStarted, attempt, "")
		log.Info("Stage attempt started", "attempt", attempt, "timeout", timeout)

		stageCtx, cancel := context.WithTimeout(ctx, timeout)
		stageStart := time.Now()
		outcome, err := e.executeStage(stageCtx, run, stage)
		timedOut := stageCtx.Err() != nil && ctx.Err() == nil
		cancel()
		durationMS := int(time.Since(stageStart).Milliseconds())

		if err == nil {
			e.recordMetric(run.req.ID, stage, attempt, "success", durationMS, outcome, "")
			run.state.markDone(stage)
			if res := e.saveProgress(run, stage); res != nil {
				return res
			}
			e.publishStageStatus(run.req.ID, stage, events.StageStatusCompleted, attempt, "")
			log.Info("Stage completed", "attempt", attempt, "duration_ms", durationMS)
			return nil
		}
		lastErr = err

		// The worker cancelled us (API cancel or lost ownership).
		if ctx.Err() != nil {
			e.recordMetric(run.req.ID, stage, attempt, "failed", durationMS, outcome, models.CodeCancelled)
			return e.cancelledResult(ctx, run, stage)
		}

		code := e.classify(stage, err, timedOut)
		retryable := attempt < maxAttempts && !errors.Is(err, models.ErrPermanent)

		if retryable {
			e.recordMetric(run.req.ID, stage, attempt, "retry", durationMS, outcome, code)
			backoff := e.backoff(stage, attempt)
			log.Warn("Stage attempt failed, retrying",
				"attempt", attempt, "error_code", code, "backoff", backoff, "error", err)
			if !sleepCtx(ctx, backoff) {
				return e.cancelledResult(ctx, run, stage)
			}
			continue
		}

		e.recordMetric(run.req.ID, stage, attempt, "failed", durationMS, outcome, code)
		eventStatus := events.StageStatusFailed
		if timedOut {
			eventStatus = events.StageStatusTimedOut
		}
		e.publishStageStatus(run.req.ID, stage, eventStatus, attempt, code)
		log.Error("Stage failed", "attempt", attempt, "error_code", code, "error", err)

		return &ExecutionResult{
			Status:    request.StatusFailed,
			ErrorCode: code,
			Err:       fmt.Errorf("stage %s failed: %w", stage, lastErr),
		}
	}

	// Unreachable: the loop always returns. Kept for the compiler.
	return &ExecutionResult{
		Status:    request.StatusFailed,
		ErrorCode: models.CodeInternal,
		Err:       fmt.Errorf("stage %s exhausted attempts: %w", stage, lastErr),
	}
}

// executeStage dispatches to the stage implementation.
func (e *PipelineExecutor) executeStage(ctx context.Context, run *pipelineRun, stage models.Stage) (stageOutcome, error) {
	switch stage {
	case models.StageReconnaissance:
		return e.runReconnaissance(ctx, run)
	case models.StageGeneration:
		return e.runGeneration(ctx, run)
	case models.StageValidation:
		return e.runValidation(ctx, run)
	case models.StageOptimization:
		return e.runOptimization(ctx, run)
	}
	return stageOutcome{}, models.NewPermanent(models.CodeInternal,
		fmt.Errorf("unknown stage %q", stage))
}

// runReconnaissance explores the target page for UI requests. API
// requests have nothing to explore; the OpenAPI document is resolved
// during generation.
func (e *PipelineExecutor) runReconnaissance(ctx context.Context, run *pipelineRun) (stageOutcome, error) {
	if run.req.RequestType == request.RequestTypeAPI {
		return stageOutcome{}, nil
	}

	url := ""
	if run.req.URL != nil {
		url = *run.req.URL
	}

	page, err := e.explorer.ExplorePage(ctx, url, e.cfg.Stages.ReconTimeout)
	if err != nil {
		return stageOutcome{}, err
	}

	run.state.Page = page
	return stageOutcome{}, nil
}

// runGeneration calls the LLM and stores the split tests in the run
// state. Names are uniquified so they can serve as stable references in
// dedup and coverage output.
func (e *PipelineExecutor) runGeneration(ctx context.Context, run *pipelineRun) (stageOutcome, error) {
	var (
		out *generator.Output
		err error
	)
	if run.req.RequestType == request.RequestTypeAPI {
		in := generator.APIInput{Requirements: run.req.Requirements}
		if run.req.OpenapiURL != nil {
			in.OpenAPIURL = *run.req.OpenapiURL
		}
		if run.req.OpenapiContent != nil {
			in.OpenAPIContent = *run.req.OpenapiContent
		}
		out, err = e.generator.GenerateAPITests(ctx, in)
	} else {
		out, err = e.generator.GenerateUITests(ctx, generator.UIInput{
			Page:         run.state.Page,
			Requirements: run.req.Requirements,
			TestTypes:    run.req.TestTypes,
		})
	}
	if err != nil {
		return stageOutcome{}, err
	}
	if len(out.Tests) == 0 {
		return stageOutcome{}, models.NewPermanent(models.CodeNoTests,
			fmt.Errorf("generation produced no tests"))
	}

	seen := make(map[string]int, len(out.Tests))
	tests := make([]generatedTest, 0, len(out.Tests))
	for _, t := range out.Tests {
		name := t.Name
		if n := seen[name]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[t.Name]++
		tests = append(tests, generatedTest{Name: name, Code: t.Code, Type: t.Type})
	}

	run.state.Tests = tests
	run.state.Model = out.Model

	e.publishProgress(run.req.ID, models.StageGeneration, len(tests), 0)

	return stageOutcome{
		usage: llmUsage{prompt: out.Usage.Prompt, completion: out.Usage.Completion, total: out.Usage.Total},
		model: out.Model,
	}, nil
}

// runValidation validates the generated tests and stores the per-test
// verdicts in the run state. Safety findings are appended to the audit
// log as a side effect. A batch where every test is blocked fails the
// request outright.
func (e *PipelineExecutor) runValidation(ctx context.Context, run *pipelineRun) (stageOutcome, error) {
	if len(run.state.Tests) == 0 {
		return stageOutcome{}, models.NewPermanent(models.CodeNoTests,
			fmt.Errorf("no tests to validate"))
	}

	codes := make([]string, len(run.state.Tests))
	for i, t := range run.state.Tests {
		codes[i] = t.Code
	}

	v := validator.New(e.cfg.Validator, e.audits.Auditor(run.req.ID), e.logger)
	results := v.ValidateBatch(ctx, codes, validator.LevelFull)
	if ctx.Err() != nil {
		return stageOutcome{}, ctx.Err()
	}

	blocked := 0
	outcomes := make([]validationOutcome, len(results))
	for i, r := range results {
		outcomes[i] = validationOutcome{Score: r.Score, Valid: r.Valid, Blocked: r.Blocked()}
		if outcomes[i].Blocked {
			blocked++
		}
	}
	if blocked == len(results) {
		return stageOutcome{}, models.NewPermanent(models.CodeSafetyBlocked,
			fmt.Errorf("all %d generated tests were blocked by the safety guard", blocked))
	}

	run.state.Validation = outcomes

	e.publishProgress(run.req.ID, models.StageValidation, 0, len(results))

	return stageOutcome{}, nil
}

// runOptimization deduplicates the surviving tests, scores requirement
// coverage, and persists the final test cases, coverage rows and result
// summary. Blocked tests are excluded from dedup but persisted as
// invalid so the audit trail lines up with stored rows.
func (e *PipelineExecutor) runOptimization(ctx context.Context, run *pipelineRun) (stageOutcome, error) {
	state := run.state

	inputs := make([]optimizer.TestInput, 0, len(state.Tests))
	for i, t := range state.Tests {
		if state.Validation[i].Blocked {
			continue
		}
		inputs = append(inputs, optimizer.TestInput{
			TestID:   t.Name,
			TestCode: t.Code,
			Score:    state.Validation[i].Score,
		})
	}

	optRes, err := e.optimizer.Optimize(ctx, inputs, run.req.Requirements, optimizer.Options{})
	if err != nil {
		return stageOutcome{}, err
	}

	duplicates := make(map[string]optimizer.Duplicate, len(optRes.Duplicates))
	for _, d := range optRes.Duplicates {
		duplicates[d.TestID] = d
	}

	validCount := 0
	scoreSum := 0
	rows := make([]models.NewTestCase, 0, len(state.Tests))
	for i, t := range state.Tests {
		verdict := state.Validation[i]
		scoreSum += verdict.Score

		dup, isDup := duplicates[t.Name]
		valid := verdict.Valid && !verdict.Blocked && !isDup
		if valid {
			validCount++
		}
		row := models.NewTestCase{
			Name:     t.Name,
			Code:     t.Code,
			TestType: t.Type,
			Score:    verdict.Score,
			Valid:    valid,
		}
		if isDup {
			row.DuplicateOf = dup.DuplicateOf
			sim := dup.Similarity
			row.Similarity = &sim
		}
		rows = append(rows, row)
	}

	if _, err := e.testCases.CreateTestCases(ctx, run.req.ID, rows); err != nil {
		// A re-run after a crash mid-persist hits the unique name
		// constraint; the rows are already there.
		if !errors.Is(err, services.ErrAlreadyExists) {
			return stageOutcome{}, fmt.Errorf("failed to persist test cases: %w", err)
		}
		e.logger.Info("Test cases already persisted, keeping existing rows",
			"request_id", run.req.ID)
	}

	coverageRows := make([]models.CoverageRow, 0, len(optRes.CoverageDetails))
	for _, c := range optRes.CoverageDetails {
		coverageRows = append(coverageRows, models.CoverageRow{
			Requirement: c.Requirement,
			Covered:     c.Covered,
			CoveredBy:   c.CoveredBy,
			Quality:     c.Quality,
		})
	}
	if _, err := e.coverage.ReplaceCoverage(ctx, run.req.ID, coverageRows); err != nil {
		return stageOutcome{}, fmt.Errorf("failed to persist coverage: %w", err)
	}

	averageScore := 0.0
	if len(state.Tests) > 0 {
		averageScore = float64(scoreSum) / float64(len(state.Tests))
	}
	state.Summary = &models.ResultSummary{
		TestsGenerated:  len(state.Tests),
		TestsValid:      validCount,
		DuplicatesFound: optRes.DuplicatesFound,
		CoverageScore:   optRes.CoverageScore,
		AverageScore:    averageScore,
	}

	return stageOutcome{}, nil
}

// saveProgress writes the checkpoint and the request status (the stage
// just completed) in one transaction. A failed checkpoint write is
// terminal: continuing without one would redo completed work after an
// orphan recovery.
func (e *PipelineExecutor) saveProgress(run *pipelineRun, stage models.Stage) *ExecutionResult {
	payload, err := encodeCheckpoint(run.state)
	if err == nil {
		_, err = e.checkpoints.SaveCheckpointAndStatus(
			context.Background(), run.req.ID, request.Status(stage), checkpointVersion, payload)
	}
	if err != nil {
		e.logger.Error("Failed to save checkpoint",
			"request_id", run.req.ID, "stage", stage, "error", err)
		return &ExecutionResult{
			Status:    request.StatusFailed,
			ErrorCode: models.CodeInternal,
			Err:       fmt.Errorf("failed to checkpoint stage %s: %w", stage, err),
		}
	}
	return nil
}

// cancelledResult records the cancellation on the stage and synthesizes
// the terminal result. The worker writes the cancelled status.
func (e *PipelineExecutor) cancelledResult(ctx context.Context, run *pipelineRun, stage models.Stage) *ExecutionResult {
	e.publishStageStatus(run.req.ID, stage, events.StageStatusCancelled, 0, models.CodeCancelled)
	e.logger.Info("Request cancelled during stage",
		"request_id", run.req.ID, "stage", stage)
	return &ExecutionResult{
		Status:    request.StatusCancelled,
		ErrorCode: models.CodeCancelled,
		Err:       ctx.Err(),
	}
}

// classify maps a stage error to its stable error code. Deadline errors
// get stage-specific codes because the remediation differs: a recon
// timeout points at the target page, a generation timeout at the LLM.
func (e *PipelineExecutor) classify(stage models.Stage, err error, timedOut bool) string {
	if timedOut || errors.Is(err, context.DeadlineExceeded) {
		switch stage {
		case models.StageReconnaissance:
			return models.CodeReconTimeout
		case models.StageGeneration:
			return models.CodeLLMUnavailable
		}
		return models.CodeInternal
	}
	return models.ErrorCode(err)
}

// stageTimeout returns the configured budget for a stage. The
// validation budget scales with batch size.
func (e *PipelineExecutor) stageTimeout(stage models.Stage, run *pipelineRun) time.Duration {
	switch stage {
	case models.StageReconnaissance:
		return e.cfg.Stages.ReconTimeout
	case models.StageGeneration:
		return e.cfg.Stages.GenerationTimeout
	case models.StageValidation:
		return e.cfg.Stages.ValidationTimeout(len(run.state.Tests))
	default:
		return e.cfg.Stages.OptimizationTimeout
	}
}

// stageAttempts returns the total attempt budget (first try + retries).
// Validation and optimization run once; their inputs are deterministic
// so a retry would fail the same way.
func (e *PipelineExecutor) stageAttempts(stage models.Stage) int {
	switch stage {
	case models.StageReconnaissance:
		return e.cfg.Stages.ReconRetries + 1
	case models.StageGeneration:
		return e.cfg.Stages.GenerationRetries + 1
	default:
		return 1
	}
}

// backoff returns the wait before the next attempt. Reconnaissance uses
// a fixed backoff; generation backs off exponentially (1s, 2s, 4s).
func (e *PipelineExecutor) backoff(stage models.Stage, attempt int) time.Duration {
	switch stage {
	case models.StageReconnaissance:
		return e.cfg.Stages.ReconBackoff
	case models.StageGeneration:
		return time.Second << (attempt - 1)
	default:
		return 0
	}
}

// recordMetric persists one stage attempt. A duplicate attempt row
// (resume after a crash between the metric write and the checkpoint) is
// tolerated; other errors are logged and swallowed because metrics
// never gate the pipeline.
func (e *PipelineExecutor) recordMetric(requestID string, stage models.Stage, attempt int, status string, durationMS int, outcome stageOutcome, errorCode string) {
	_, err := e.metrics.RecordStageMetric(context.Background(), requestID, models.StageMetric{
		Stage:            stage,
		Attempt:          attempt,
		Status:           status,
		DurationMS:       durationMS,
		TokensPrompt:     outcome.usage.prompt,
		TokensCompletion: outcome.usage.completion,
		TokensTotal:      outcome.usage.total,
		Model:            outcome.model,
		ErrorCode:        errorCode,
	})
	if err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		e.logger.Warn("Failed to record stage metric",
			"request_id", requestID, "stage", stage, "attempt", attempt, "error", err)
	}
}

// publishRequestStatus publishes a request.status event (best effort).
func (e *PipelineExecutor) publishRequestStatus(requestID, status string) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishRequestStatus(context.Background(), requestID, events.RequestStatusPayload{
		Type:      events.EventTypeRequestStatus,
		RequestID: requestID,
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Warn("Failed to publish request status",
			"request_id", requestID, "status", status, "error", err)
	}
}

// publishStageStatus publishes a stage.status event (best effort).
func (e *PipelineExecutor) publishStageStatus(requestID string, stage models.Stage, status string, attempt int, errorCode string) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishStageStatus(context.Background(), requestID, events.StageStatusPayload{
		Type:       events.EventTypeStageStatus,
		RequestID:  requestID,
		Stage:      string(stage),
		StageIndex: stage.Index() + 1,
		Status:     status,
		Attempt:    attempt,
		ErrorCode:  errorCode,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Warn("Failed to publish stage status",
			"request_id", requestID, "stage", stage, "status", status, "error", err)
	}
}

// publishProgress publishes a transient generation.progress event.
func (e *PipelineExecutor) publishProgress(requestID string, stage models.Stage, generated, validated int) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishGenerationProgress(context.Background(), requestID, events.GenerationProgressPayload{
		Type:           events.EventTypeGenerationProgress,
		RequestID:      requestID,
		Stage:          string(stage),
		TestsGenerated: generated,
		TestsValidated: validated,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Debug("Failed to publish progress event",
			"request_id", requestID, "error", err)
	}
}

// sleepCtx waits for d or until ctx is done. Returns false when
// interrupted.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
