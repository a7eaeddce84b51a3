package transfer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lancemnguyen/dataferry/buffer"
	"github.com/lancemnguyen/dataferry/errors"
	"github.com/lancemnguyen/dataferry/logger"
)

// Config configures a single pipeline run.
type Config struct {
	// Size is the number of source values to generate. Zero is a valid
	// size: the run moves nothing but the sentinel. Ignored when Source
	// is set.
	Size int
	// Capacity overrides the channel capacity. Zero selects the default
	// max(1, N/2).
	Capacity int
	// Seed seeds source generation; zero derives a seed from the clock.
	Seed uint64
	// Policy selects how source values are generated.
	Policy Policy
	// Source, when non-nil, is transferred as-is instead of generating.
	Source []float64
	// IncludeData attaches copies of both sequences to the report.
	IncludeData bool
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Policy == "" {
		c.Policy = PolicyMixed
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
}

// Validate validates run configuration.
func (c *Config) Validate() error {
	if c.Size < 0 {
		return errors.InvalidInput("run.size must be >= 0")
	}
	if c.Capacity < 0 {
		return errors.InvalidInput("run.capacity must be >= 0")
	}
	if c.Policy != "" && !c.Policy.Valid() {
		return errors.InvalidInput("run.policy must be one of [mixed, integers, reals]")
	}
	return nil
}

// DefaultCapacity returns the channel capacity used when none is
// configured: half the source length, floored, never below 1.
func DefaultCapacity(n int) int {
	return max(1, n/2)
}

// Report describes the outcome of a completed run.
type Report struct {
	RunID    string
	Size     int
	Capacity int
	Elapsed  time.Duration

	// Passed is true when both sides terminated cleanly and the
	// destination matched the source elementwise.
	Passed     bool
	Mismatches []int

	ProducerFault error
	ConsumerFault error

	// Source and Destination are attached only when Config.IncludeData
	// was set.
	Source      []float64
	Destination []float64
}

// Err returns the failure this report represents, or nil on a pass.
// Faults take precedence over the validation result they caused.
func (r *Report) Err() error {
	if r.ProducerFault != nil {
		return r.ProducerFault
	}
	if r.ConsumerFault != nil {
		return r.ConsumerFault
	}
	if len(r.Mismatches) > 0 {
		return errors.ValidationFailure(len(r.Mismatches))
	}
	return nil
}

// Runner orchestrates one pipeline run: it allocates the source and
// destination, sizes the channel, starts the producer and consumer
// concurrently, joins both, and validates the result.
type Runner struct {
	cfg Config
	log *logger.Logger
	obs Observer
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger sets the runner's logger. The default discards output.
func WithLogger(log *logger.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithObserver injects the observability hook. The default is NopObserver.
func WithObserver(obs Observer) Option {
	return func(r *Runner) { r.obs = obs }
}

// NewRunner validates cfg and builds a Runner.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	r := &Runner{
		cfg: cfg,
		log: logger.Nop(),
		obs: NopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes the pipeline to completion and returns its report. The
// returned error is the report's Err, so callers can treat a non-nil
// error as the single failure signal.
//
// Run performs a full join on both goroutines and cannot be cancelled
// or timed out: if one side faults before handoff completes, the other
// can block forever and Run blocks with it. Callers needing a bound
// must impose their own deadline around Run.
func (r *Runner) Run() (*Report, error) {
	source := r.cfg.Source
	if source == nil {
		source = Generate(r.cfg.Policy, r.cfg.Size, r.cfg.Seed)
	}
	n := len(source)

	capacity := r.cfg.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity(n)
	}

	dest := NewDestination(n)
	ch := buffer.New[Element](capacity)
	runID := uuid.NewString()

	log := r.log.WithFields(map[string]any{"run_id": runID})
	log.Info().
		Int("size", n).
		Int("capacity", capacity).
		Str("policy", string(r.cfg.Policy)).
		Msg("starting transfer")

	prod := &producer{source: source, ch: ch, obs: r.obs}
	cons := &consumer{dest: dest, ch: ch, obs: r.obs}

	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		prod.run()
	}()
	go func() {
		defer wg.Done()
		cons.run()
	}()
	wg.Wait()

	elapsed := time.Since(start)

	report := &Report{
		RunID:         runID,
		Size:          n,
		Capacity:      capacity,
		Elapsed:       elapsed,
		Mismatches:    dest.Mismatches(source),
		ProducerFault: prod.fault,
		ConsumerFault: cons.fault,
	}
	report.Passed = report.Err() == nil
	if r.cfg.IncludeData {
		report.Source = append([]float64(nil), source...)
		report.Destination = dest.Values()
	}

	if report.Passed {
		log.Info().
			Dur("elapsed", elapsed).
			Msg("all data transferred successfully")
	} else {
		log.Error().
			Dur("elapsed", elapsed).
			Err(report.Err()).
			Msg("transfer failed")
	}
	return report, report.Err()
}
