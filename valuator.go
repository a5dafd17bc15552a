package bilancio

import (
	"context"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RateProvider resolves the exchange rate between two currency codes as of
// a given date: the value of 1 unit of `from` expressed in `to`.
//
// Implementations are typically network-bound; calls are independent and
// idempotent, so callers may issue them concurrently. A provider failure is
// never fatal to the engines: the Valuator degrades to an identity rate.
type RateProvider interface {
	Rate(ctx context.Context, on Date, from, to string) (decimal.Decimal, error)
}

// Valuator converts amounts between currencies using a RateProvider,
// caching resolved rates per currency pair.
//
// When the provider fails for a pair, the Valuator substitutes an identity
// rate of 1 and keeps going: a sync failure for one currency is a
// degraded-precision condition, not an abort condition. The affected pairs
// are recorded and can be surfaced by callers as a partial-precision
// warning.
type Valuator struct {
	provider RateProvider

	mu       sync.Mutex
	rates    map[string]*History[decimal.Decimal] // by "FROMTO" pair
	degraded map[string]struct{}
}

// NewValuator creates a Valuator on top of the given provider.
func NewValuator(provider RateProvider) *Valuator {
	return &Valuator{
		provider: provider,
		rates:    make(map[string]*History[decimal.Decimal]),
		degraded: make(map[string]struct{}),
	}
}

// Convert converts the amount into the target currency at the rate of the
// given date. Same-currency conversions short-circuit to the amount itself
// without consulting the provider.
func (v *Valuator) Convert(ctx context.Context, amount Money, to string, on Date) Money {
	if amount.Currency() == to || amount.Currency() == "" {
		return M(amount.Amount(), to)
	}
	rate := v.rate(ctx, on, amount.Currency(), to)
	return M(amount.Amount().Mul(rate), to)
}

// ConvertValue is Convert for a bare decimal in a known currency.
func (v *Valuator) ConvertValue(ctx context.Context, value decimal.Decimal, from, to string, on Date) decimal.Decimal {
	if from == to || from == "" {
		return value
	}
	return value.Mul(v.rate(ctx, on, from, to))
}

// Degraded returns the currency pairs for which the provider failed and an
// identity rate was substituted, sorted for stable reporting. An empty
// result means every conversion so far used a resolved rate.
func (v *Valuator) Degraded() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	pairs := make([]string, 0, len(v.degraded))
	for pair := range v.degraded {
		pairs = append(pairs, pair)
	}
	slices.Sort(pairs)
	return pairs
}

// Prefetch resolves the rates for several (date, from, to) triples
// concurrently, warming the cache. Individual failures degrade to the
// identity rate exactly as sequential lookups do, so Prefetch never fails.
func (v *Valuator) Prefetch(ctx context.Context, on Date, base string, currencies ...string) {
	g, ctx := errgroup.WithContext(ctx)
	for _, from := range currencies {
		if from == base {
			continue
		}
		g.Go(func() error {
			v.rate(ctx, on, from, base)
			return nil
		})
	}
	g.Wait()
}

func (v *Valuator) rate(ctx context.Context, on Date, from, to string) decimal.Decimal {
	pair := from + to
	v.mu.Lock()
	if history, ok := v.rates[pair]; ok {
		if rate, ok := history.Get(on); ok {
			v.mu.Unlock()
			return rate
		}
	}
	v.mu.Unlock()

	rate, err := v.provider.Rate(ctx, on, from, to)
	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil || rate.IsZero() {
		// Degraded behaviour: substitute the identity rate and continue.
		v.degraded[pair] = struct{}{}
		return decimal.NewFromInt(1)
	}
	history, ok := v.rates[pair]
	if !ok {
		history = &History[decimal.Decimal]{}
		v.rates[pair] = history
	}
	history.Append(on, rate)
	return rate
}

// StaticRates is a RateProvider backed by a fixed table of historical
// rates, for tests and offline use. The zero value is not usable; use
// NewStaticRates.
type StaticRates struct {
	histories map[string]*History[decimal.Decimal]
}

// NewStaticRates creates an empty static rate table.
func NewStaticRates() *StaticRates {
	return &StaticRates{histories: make(map[string]*History[decimal.Decimal])}
}

// Set records the rate of 1 unit of `from` in `to` as of the given date.
func (s *StaticRates) Set(on Date, from, to string, rate float64) *StaticRates {
	pair := from + to
	history, ok := s.histories[pair]
	if !ok {
		history = &History[decimal.Decimal]{}
		s.histories[pair] = history
	}
	history.Append(on, decimal.NewFromFloat(rate))
	return s
}

// Rate implements RateProvider. It falls back to the most recent rate on or
// before the date, and to the inverse pair when the direct one is missing.
func (s *StaticRates) Rate(_ context.Context, on Date, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if history, ok := s.histories[from+to]; ok {
		if rate, ok := history.ValueAsOf(on); ok {
			return rate, nil
		}
	}
	if history, ok := s.histories[to+from]; ok {
		if inverse, ok := history.ValueAsOf(on); ok && !inverse.IsZero() {
			return decimal.NewFromInt(1).Div(inverse), nil
		}
	}
	return decimal.Decimal{}, &RateError{On: on, From: from, To: to}
}

// RateError reports an unresolved exchange rate lookup.
type RateError struct {
	On       Date
	From, To string
}

func (e *RateError) Error() string {
	return "no exchange rate for " + e.From + " to " + e.To + " as of " + e.On.String()
}
