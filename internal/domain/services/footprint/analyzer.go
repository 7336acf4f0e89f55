package footprint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"odyssey-lab/internal/domain/models"
	"odyssey-lab/pkg/logger"
)

// ErrInvalidEmail is returned when the input is empty or not of the
// form local@domain.
var ErrInvalidEmail = errors.New("invalid email address")

// Config holds analyzer configuration
type Config struct {
	// AnalysisDelay paces the whole analysis like a real network round-trip
	AnalysisDelay time.Duration `json:"analysis_delay"`
	// SocialDelay paces the simulated per-platform profile lookup
	SocialDelay time.Duration `json:"social_delay"`
	// ReferenceYear anchors the breach-age decay. Zero means the clock's
	// current year.
	ReferenceYear int `json:"reference_year"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		AnalysisDelay: 2 * time.Second,
		SocialDelay:   500 * time.Millisecond,
	}
}

// Analyzer synthesizes a privacy report for an email address from
// simulated breach, social-media and web-presence lookups. It holds no
// mutable state between calls; concurrent analyses are independent.
type Analyzer struct {
	cfg    Config
	clock  clockwork.Clock
	logger *logger.Logger
	randFn func() Rand
}

// NewAnalyzer creates a new digital footprint analyzer
func NewAnalyzer(cfg Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		clock:  clockwork.NewRealClock(),
		logger: log.WithComponent("footprint-analyzer"),
		randFn: newSeededRand,
	}
}

// SetClock replaces the wall clock. Tests install a fake clock so the
// pacing delays run without real waits.
func (a *Analyzer) SetClock(c clockwork.Clock) {
	a.clock = c
}

// SetRandFunc replaces the per-analysis draw stream constructor
func (a *Analyzer) SetRandFunc(fn func() Rand) {
	a.randFn = fn
}

// AnalyzeDigitalFootprint runs the four sub-analyses concurrently and
// aggregates them into a single result. Any sub-analysis error fails
// the whole call; no partial result is returned.
func (a *Analyzer) AnalyzeDigitalFootprint(ctx context.Context, email string) (*models.DigitalFootprintResult, error) {
	if _, _, err := splitEmail(email); err != nil {
		return nil, err
	}

	start := a.clock.Now()
	a.logger.Info().Str("email", maskEmail(email)).Msg("starting digital footprint analysis")

	// Outermost pacing delay, kept separate from the per-check delays
	if err := a.sleep(ctx, a.cfg.AnalysisDelay); err != nil {
		return nil, err
	}

	var (
		breaches []models.BreachFinding
		social   []models.SocialMediaCheck
		web      []models.WebPresenceCheck
		analysis models.EmailAnalysis
	)

	// The sub-analyses have no data dependency on each other, so their
	// artificial latencies overlap instead of stacking.
	var wg sync.WaitGroup
	errCh := make(chan error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		breaches = a.CheckDataBreaches(email)
	}()
	go func() {
		defer wg.Done()
		checks, err := a.CheckSocialMediaPresence(ctx, email)
		if err != nil {
			errCh <- err
			return
		}
		social = checks
	}()
	go func() {
		defer wg.Done()
		web = a.CheckWebPresence(email)
	}()
	go func() {
		defer wg.Done()
		ea, err := a.AnalyzeEmail(email)
		if err != nil {
			errCh <- err
			return
		}
		analysis = ea
	}()

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, fmt.Errorf("footprint analysis: %w", err)
	}

	score := CalculatePrivacyScore(breaches, social, web, analysis)
	recommendations := GenerateRecommendations(breaches, social, web, analysis)

	result := &models.DigitalFootprintResult{
		ID:                  uuid.New(),
		Email:               email,
		Breaches:            breaches,
		SocialMediaPresence: social,
		WebPresence:         web,
		PrivacyScore:        score,
		Recommendations:     recommendations,
		EmailAnalysis:       analysis,
		AnalyzedAt:          a.clock.Now().UTC(),
	}

	a.logger.Info().
		Str("email", maskEmail(email)).
		Int("privacy_score", score).
		Int("breaches", len(breaches)).
		Int("web_presence", len(web)).
		Dur("duration", a.clock.Since(start)).
		Msg("digital footprint analysis completed")

	return result, nil
}

// sleep suspends until the delay elapses or the context is canceled
func (a *Analyzer) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.clock.After(d):
		return nil
	}
}

// referenceYear anchors the breach-age probability decay
func (a *Analyzer) referenceYear() int {
	if a.cfg.ReferenceYear > 0 {
		return a.cfg.ReferenceYear
	}
	return a.clock.Now().Year()
}

// splitEmail splits local@domain. The local part keeps its original
// casing; the domain is lowercased.
func splitEmail(email string) (local, domain string, err error) {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return "", "", ErrInvalidEmail
	}
	return email[:at], strings.ToLower(email[at+1:]), nil
}

// maskEmail redacts the local part for logging
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
