package videostore

import (
	"github.com/eirikbell/videostore/pricing"
	"github.com/pkg/errors"
)

// Rental a movie rented for a fixed number of days
type Rental struct {
	movie      *Movie
	daysRented int
}

// NewRental binds a movie to a rental duration
func NewRental(movie *Movie, daysRented int) (*Rental, error) {
	if movie == nil {
		return nil, errors.Wrap(pricing.ErrInvalidArgument, "rental needs a movie")
	}
	if daysRented < 1 {
		return nil, errors.Wrapf(pricing.ErrInvalidArgument, "rental of %q must last at least one day, got %d", movie.Title(), daysRented)
	}
	return &Rental{movie: movie, daysRented: daysRented}, nil
}

// Movie rented
func (r *Rental) Movie() *Movie {
	return r.movie
}

// DaysRented duration of the rental
func (r *Rental) DaysRented() int {
	return r.daysRented
}

// Charge the movie's current charge for this duration
func (r *Rental) Charge() (pricing.Amount, error) {
	return r.movie.Charge(r.daysRented)
}

// FrequentRenterPoints the movie's current points for this duration
func (r *Rental) FrequentRenterPoints() (int, error) {
	return r.movie.FrequentRenterPoints(r.daysRented)
}
