package runtime

import (
	"complaint-triage/ai"
	"complaint-triage/contract"
	"complaint-triage/domain"
	"complaint-triage/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
)

type State int32

const (
	Idle State = iota
	Training
	Publishing
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Training:
		return "training"
	case Publishing:
		return "publishing"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// RetrainPolicy decides when a retrain fires and how long it may last.
type RetrainPolicy struct {
	MinFeedback  int
	Every        int
	MinCorrected int
	Timeout      time.Duration
	Options      ai.TrainOptions
}

var DefaultRetrainPolicy = RetrainPolicy{
	MinFeedback:  50,
	Every:        10,
	MinCorrected: 10,
	Timeout:      2 * time.Minute,
	Options:      ai.DefaultTrainOptions,
}

type CycleResult struct {
	Published        bool
	Version          uint64
	CorrectedSamples int
}

// RetrainingCoordinator turns feedback counts into training cycles.
//
// Notify is called on the feedback path and only enqueues a trigger; the
// cycle itself runs on the coordinator worker (Run) so that recording
// feedback never pays for training. Triggers arriving while one is
// pending are coalesced.
type RetrainingCoordinator struct {
	log      *slog.Logger
	store    contract.FeedbackStore
	registry *ModelRegistry
	policy   RetrainPolicy
	seed     []domain.TrainingSample
	now      func() time.Time

	state    atomic.Int32
	cycle    sync.Mutex
	triggers chan int
	observer func(from, to State)
}

func NewRetrainingCoordinator(log *slog.Logger, store contract.FeedbackStore, registry *ModelRegistry, policy RetrainPolicy) *RetrainingCoordinator {
	return &RetrainingCoordinator{
		log:      log,
		store:    store,
		registry: registry,
		policy:   policy,
		seed:     ai.SeedCorpus,
		now:      time.Now,
		triggers: make(chan int, 1),
	}
}

// Observe registers a callback invoked on every state transition.
// It must be set before the coordinator starts.
func (c *RetrainingCoordinator) Observe(fn func(from, to State)) {
	c.observer = fn
}

func (c *RetrainingCoordinator) State() State {
	return State(c.state.Load())
}

// ShouldRetrain holds at MinFeedback and every Every feedbacks after it.
func (c *RetrainingCoordinator) ShouldRetrain(feedbackCount int) bool {
	if c.policy.Every <= 0 {
		return feedbackCount >= c.policy.MinFeedback
	}
	return feedbackCount >= c.policy.MinFeedback && feedbackCount%c.policy.Every == 0
}

// Notify is given the feedback count right after a feedback is stored.
// It returns true when a retrain was queued.
func (c *RetrainingCoordinator) Notify(feedbackCount int) bool {
	if !c.ShouldRetrain(feedbackCount) {
		return false
	}
	select {
	case c.triggers <- feedbackCount:
		c.log.Info("Retrain queued", "feedback_count", feedbackCount)
		return true
	default:
		c.log.Info("Retrain already pending, trigger coalesced", "feedback_count", feedbackCount)
		return false
	}
}

// Run consumes triggers until the context is canceled.
func (c *RetrainingCoordinator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("Stopping retraining coordinator")
			return ctx.Err()
		case count := <-c.triggers:
			c.log.Info("Retrain started", "feedback_count", count)
			_, _ = c.RunCycle(ctx)
		}
	}
}

// Drain runs the pending trigger, if any, on the calling goroutine.
func (c *RetrainingCoordinator) Drain(ctx context.Context) {
	for {
		select {
		case count := <-c.triggers:
			c.log.Info("Retrain started", "feedback_count", count)
			_, _ = c.RunCycle(ctx)
		default:
			return
		}
	}
}

// RunCycle gathers the corrections, trains a new snapshot on them plus the
// seed corpus, and publishes it. With too few corrections it returns to
// Idle without error. Any failure goes through Failed back to Idle and
// leaves the active snapshot untouched.
func (c *RetrainingCoordinator) RunCycle(ctx context.Context) (CycleResult, error) {
	c.cycle.Lock()
	defer c.cycle.Unlock()

	c.transition(Training)
	samples, err := c.store.CorrectedSamples(ctx)
	if err != nil {
		return c.fail(fmt.Errorf("gather corrected samples: %w", err))
	}
	samples = lo.Filter(samples, func(s domain.TrainingSample, _ int) bool {
		return s.Text != "" && s.Label.IsTrainable()
	})
	if len(samples) < c.policy.MinCorrected {
		c.log.Info("Not enough corrections, retrain skipped",
			"corrected", len(samples), "required", c.policy.MinCorrected)
		c.transition(Idle)
		return CycleResult{CorrectedSamples: len(samples)}, nil
	}

	result, err := c.trainAndPublish(ctx, samples)
	if err != nil {
		return c.fail(err)
	}
	c.transition(Idle)
	return result, nil
}

// Bootstrap publishes a seed-only model when none is active yet.
func (c *RetrainingCoordinator) Bootstrap(ctx context.Context) (CycleResult, error) {
	c.cycle.Lock()
	defer c.cycle.Unlock()

	if current := c.registry.Current(); current != nil {
		return CycleResult{Version: current.Version}, nil
	}
	c.transition(Training)
	result, err := c.trainAndPublish(ctx, nil)
	if err != nil {
		return c.fail(err)
	}
	c.transition(Idle)
	return result, nil
}

func (c *RetrainingCoordinator) trainAndPublish(ctx context.Context, corrected []domain.TrainingSample) (CycleResult, error) {
	trainCtx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	samples := make([]domain.TrainingSample, 0, len(corrected)+len(c.seed))
	samples = append(samples, corrected...)
	samples = append(samples, c.seed...)

	start := time.Now()
	snapshot, err := ai.Train(trainCtx, samples, c.registry.NextVersion(), c.now(), c.policy.Options)
	if err != nil {
		if stderrors.Is(trainCtx.Err(), context.DeadlineExceeded) {
			return CycleResult{}, fmt.Errorf("%w after %s: %v", errors.ErrTrainingTimeout, c.timeout(), err)
		}
		return CycleResult{}, fmt.Errorf("train: %w", err)
	}
	c.log.Debug("Training finished",
		"samples", len(samples), "corrected", len(corrected), "duration", time.Since(start))

	c.transition(Publishing)
	if err = c.registry.Publish(ctx, snapshot); err != nil {
		return CycleResult{}, fmt.Errorf("publish v%d: %w", snapshot.Version, err)
	}
	return CycleResult{Published: true, Version: snapshot.Version, CorrectedSamples: len(corrected)}, nil
}

func (c *RetrainingCoordinator) fail(err error) (CycleResult, error) {
	c.transition(Failed)
	c.log.Error("Retraining failed, keeping the active model", "error", err)
	c.transition(Idle)
	return CycleResult{}, err
}

func (c *RetrainingCoordinator) transition(to State) {
	from := State(c.state.Swap(int32(to)))
	c.log.Debug("Retraining state", "from", from, "to", to)
	if c.observer != nil {
		c.observer(from, to)
	}
}

func (c *RetrainingCoordinator) timeout() time.Duration {
	if c.policy.Timeout <= 0 {
		return DefaultRetrainPolicy.Timeout
	}
	return c.policy.Timeout
}
