// Package session builds a reporting session of movies and customers from
// configuration and renders their statements.
package session

import (
	"github.com/eirikbell/videostore/config"
	"github.com/eirikbell/videostore/logger"
	"github.com/eirikbell/videostore/pricing"
	"github.com/eirikbell/videostore/videostore"
	"github.com/pkg/errors"
)

// Session the movies and customers of one reporting run
type Session struct {
	movies    map[string]*videostore.Movie
	customers []*videostore.Customer
}

// Build creates one movie per catalog entry, shared by every rental naming it
func Build(cfg *config.Config) (*Session, error) {
	s := &Session{movies: map[string]*videostore.Movie{}}

	for _, mc := range cfg.Movies {
		category, err := pricing.ParseCategory(mc.Category)
		if err != nil {
			return nil, errors.Wrapf(err, "Movie %q", mc.Title)
		}

		movie, err := videostore.NewMovie(mc.Title, category.Policy())
		if err != nil {
			return nil, err
		}
		s.movies[mc.Title] = movie
		logger.Debug("movie added", "title", mc.Title, "category", category.String())
	}

	for _, cc := range cfg.Customers {
		customer := videostore.NewCustomer(cc.Name)
		for _, rc := range cc.Rentals {
			movie, ok := s.movies[rc.Movie]
			if !ok {
				return nil, errors.Errorf("Customer %q rents unknown movie %q", cc.Name, rc.Movie)
			}

			rental, err := videostore.NewRental(movie, rc.Days)
			if err != nil {
				return nil, errors.Wrapf(err, "Customer %q", cc.Name)
			}
			if err := customer.AddRental(rental); err != nil {
				return nil, err
			}
		}
		s.customers = append(s.customers, customer)
		logger.Debug("customer added", "name", cc.Name, "rentals", len(cc.Rentals))
	}

	return s, nil
}

// Movie looks up a catalog movie by title
func (s *Session) Movie(title string) (*videostore.Movie, bool) {
	m, ok := s.movies[title]
	return m, ok
}

// Customers in configuration order
func (s *Session) Customers() []*videostore.Customer {
	return s.customers
}

// Render a customer's statement in the given format
func (s *Session) Render(customer *videostore.Customer, format string) (string, error) {
	switch format {
	case config.FormatText:
		return customer.Statement()
	case config.FormatHTML:
		return customer.HTMLStatement()
	}
	return "", errors.Errorf("Unknown statement format %q", format)
}
