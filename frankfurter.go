package bilancio

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains the RateProvider backed by the Frankfurter API
// (https://frankfurter.dev), which serves the ECB reference rates and
// requires no API key.

/*
	GET https://api.frankfurter.app/2024-06-28?from=EUR&to=CHF

	{
	    "amount": 1.0,
	    "base": "EUR",
	    "date": "2024-06-28",
	    "rates": {
	        "CHF": 0.9612
	    }
	}
*/

const frankfurterBase = "https://api.frankfurter.app"

// FrankfurterRates resolves historical exchange rates from the Frankfurter
// API. Responses are cached on disk with a daily expiry, so repeated runs
// in one day hit the network at most once per (date, pair).
type FrankfurterRates struct {
	client *http.Client
	base   string
}

// NewFrankfurterRates creates a provider with the daily-expiring cache.
func NewFrankfurterRates() *FrankfurterRates {
	return &FrankfurterRates{client: daily(), base: frankfurterBase}
}

// Rate implements RateProvider. The API returns the closest banking day on
// or before the requested date, which matches the as-of semantics expected
// by the Valuator.
func (f *FrankfurterRates) Rate(ctx context.Context, on Date, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	addr := fmt.Sprintf("%s/%s?from=%s&to=%s", f.base, on, from, to)
	var jobj any
	if err := jwget(ctx, f.client, addr, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("error in wget %q: %w", from+to, err)
	}
	path := "$.rates." + to
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: %q %w", from+to, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: %q not a number: %v", from+to, path, jval)
	}
	return decimal.NewFromFloat(val), nil
}

var _ RateProvider = (*FrankfurterRates)(nil)
