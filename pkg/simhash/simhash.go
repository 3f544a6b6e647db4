// Package simhash is the public facade over the SimHash similarity core.
package simhash

import (
	"context"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/loader"
	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/scorer"
	core "github.com/baditaflorin/go_simhash_similarity/internal/core/simhash"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
	"github.com/baditaflorin/go_simhash_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result is the outcome of a comparison.
type Result = domain.Result

// Verdict is the qualitative similarity band of a Result.
type Verdict = domain.Verdict

// Verdict bands, lowest first.
const (
	LowSimilarity     = domain.LowSimilarity
	LightlySimilar    = domain.LightlySimilar
	ModeratelySimilar = domain.ModeratelySimilar
	HighlySimilar     = domain.HighlySimilar
)

// SimHash compares documents by their 64-bit SimHash fingerprints.
type SimHash struct {
	calculator *core.Calculator
	loader     *loader.Loader
	logger     ports.Logger
	warmed     bool
}

// Option defines a functional option for configuring SimHash.
type Option func(*options)

type options struct {
	Config       core.SimilarityConfig
	Encodings    []string
	Logger       ports.Logger
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithSeed sets the initial state of the token hash.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.Config.Seed = seed
	}
}

// WithTokenPattern replaces the token regular expression.
func WithTokenPattern(pattern string) Option {
	return func(o *options) {
		o.Config.TokenPattern = pattern
	}
}

// WithThresholds sets the verdict band lower bounds.
func WithThresholds(high, moderate, light float64) Option {
	return func(o *options) {
		o.Config.Thresholds = scorer.Thresholds{High: high, Moderate: moderate, Light: light}
	}
}

// WithEncodings sets the ordered encodings tried by CompareFiles.
func WithEncodings(encodings ...string) Option {
	return func(o *options) {
		o.Encodings = encodings
	}
}

// WithLogger sets a custom logger. A nil logger keeps the default one.
func WithLogger(lg l.Logger) Option {
	return func(o *options) {
		if lg == nil {
			o.Logger = nil
			return
		}
		o.Logger = logger.FromExisting(lg)
	}
}

// WithoutLogging discards all log output.
func WithoutLogging() Option {
	return func(o *options) {
		o.Logger = logger.NewNopLogger()
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(o *options) {
		o.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(o *options) {
		o.WarmUpConfig = config
		o.WarmUp = true
	}
}

// New creates a new SimHash instance.
func New(opts ...Option) (*SimHash, error) {
	o := &options{
		Config:       core.DefaultConfig(),
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.Logger == nil {
		var err error
		o.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	calculator, err := core.NewCalculator(o.Config, o.Logger)
	if err != nil {
		return nil, err
	}
	ld, err := loader.New(o.Encodings, o.Logger)
	if err != nil {
		return nil, err
	}

	s := &SimHash{
		calculator: calculator,
		loader:     ld,
		logger:     o.Logger,
	}
	if o.WarmUp {
		s.WarmUp(context.Background(), o.WarmUpConfig)
	}
	return s, nil
}

// Compare scores the similarity of two texts.
func (s *SimHash) Compare(textA, textB string) Result {
	return s.calculator.Compare(textA, textB)
}

// Fingerprint returns the 64-bit SimHash of text.
func (s *SimHash) Fingerprint(text string) uint64 {
	return s.calculator.Fingerprint(text)
}

// Distance returns the Hamming distance between two fingerprints.
func Distance(a, b uint64) int {
	return scorer.Distance(a, b)
}

// CompareFiles loads and decodes both files, then compares their text.
// Errors carry a category matched with errors.Is against domain sentinels.
func (s *SimHash) CompareFiles(pathA, pathB string) (Result, error) {
	textA, err := s.loader.Load(pathA)
	if err != nil {
		return Result{}, err
	}
	textB, err := s.loader.Load(pathB)
	if err != nil {
		return Result{}, err
	}
	return s.Compare(textA, textB), nil
}

// WarmUp performs system warm-up to optimize performance.
func (s *SimHash) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	mgr := warmup.NewManager(s.logger, config)
	mgr.RegisterCalculator(s.calculator)
	mgr.RegisterFingerprinter(s.calculator)
	mgr.WarmUp(ctx)
	s.warmed = true
}

// Close releases the logger.
func (s *SimHash) Close() error {
	return s.logger.Close()
}
