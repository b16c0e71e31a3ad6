package videostore

import (
	"github.com/eirikbell/videostore/pricing"
	"github.com/pkg/errors"
)

// Customer a store customer and the rentals recorded for them
type Customer struct {
	name    string
	rentals []*Rental
}

// NewCustomer creates a customer with no rentals
func NewCustomer(name string) *Customer {
	return &Customer{name: name}
}

// Name of the customer
func (c *Customer) Name() string {
	return c.name
}

// Rentals in the order they were added
func (c *Customer) Rentals() []*Rental {
	rentals := make([]*Rental, len(c.rentals))
	copy(rentals, c.rentals)
	return rentals
}

// AddRental records a rental, duplicates included
func (c *Customer) AddRental(rental *Rental) error {
	if rental == nil {
		return errors.Wrapf(pricing.ErrInvalidArgument, "customer %q cannot add a nil rental", c.name)
	}
	c.rentals = append(c.rentals, rental)
	return nil
}

// TotalCharge sum of all rental charges
func (c *Customer) TotalCharge() (pricing.Amount, error) {
	total := pricing.Zero()
	for _, r := range c.rentals {
		charge, err := r.Charge()
		if err != nil {
			return pricing.Amount{}, err
		}
		total = total.Add(charge)
	}
	return total, nil
}

// TotalPoints sum of all frequent renter points
func (c *Customer) TotalPoints() (int, error) {
	total := 0
	for _, r := range c.rentals {
		points, err := r.FrequentRenterPoints()
		if err != nil {
			return 0, err
		}
		total += points
	}
	return total, nil
}
