// Package rates provides the exchange-rate lookup used by transfers.
package rates

import (
	"fmt"

	"github.com/easybanking/backoffice/internal/domain"
)

type pair struct {
	from domain.Currency
	to   domain.Currency
}

// StaticProvider serves exchange rates from a fixed table.
// TODO: replace with the NBP API once a rate-refresh policy is agreed.
type StaticProvider struct {
	rates map[pair]float64
}

// NewStaticProvider creates a provider with the configured PLN/EUR rates.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		rates: map[pair]float64{
			{from: domain.PLN, to: domain.EUR}: 0.23,
			{from: domain.EUR, to: domain.PLN}: 4.35,
		},
	}
}

// GetRate returns the rate for the ordered currency pair. Same-currency pairs
// short-circuit to the identity rate without a table lookup.
func (p *StaticProvider) GetRate(from, to domain.Currency) (domain.ExchangeRate, error) {
	if from == to {
		return domain.IdentityRate(from), nil
	}

	rate, ok := p.rates[pair{from: from, to: to}]
	if !ok {
		return domain.ExchangeRate{}, fmt.Errorf("%w: %s to %s", domain.ErrRateNotFound, from, to)
	}

	return domain.NewExchangeRate(from, to, rate)
}
