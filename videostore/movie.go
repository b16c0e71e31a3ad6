package videostore

import (
	"github.com/eirikbell/videostore/pricing"
	"github.com/pkg/errors"
)

// Movie a title in the store's catalog, priced by a replaceable policy
type Movie struct {
	title string
	price pricing.Policy
}

// NewMovie creates a movie priced by the given policy
func NewMovie(title string, policy pricing.Policy) (*Movie, error) {
	if pricing.IsNil(policy) {
		return nil, errors.Wrapf(pricing.ErrInvalidArgument, "movie %q needs a pricing policy", title)
	}
	return &Movie{title: title, price: policy}, nil
}

// Title of the movie
func (m *Movie) Title() string {
	return m.title
}

// SetPolicy replaces the pricing policy. Every rental of the movie is priced
// by the new policy from now on.
func (m *Movie) SetPolicy(policy pricing.Policy) error {
	if pricing.IsNil(policy) {
		return errors.Wrapf(pricing.ErrInvalidArgument, "movie %q needs a pricing policy", m.title)
	}
	m.price = policy
	return nil
}

func (m *Movie) policy() pricing.Policy {
	return m.price
}

// Charge for renting the movie for daysRented days
func (m *Movie) Charge(daysRented int) (pricing.Amount, error) {
	return m.policy().Charge(daysRented)
}

// FrequentRenterPoints earned by renting the movie for daysRented days
func (m *Movie) FrequentRenterPoints(daysRented int) (int, error) {
	return m.policy().Points(daysRented)
}
