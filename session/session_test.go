package session

import (
	"testing"

	"github.com/eirikbell/videostore/config"
	"github.com/eirikbell/videostore/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() *config.Config {
	return &config.Config{
		Movies: []config.MovieConfig{
			{Title: "Regent", Category: "regular"},
			{Title: "Newton", Category: "new_release"},
			{Title: "Chills", Category: "childrens"},
		},
		Customers: []config.CustomerConfig{
			{Name: "Smith", Rentals: []config.RentalConfig{
				{Movie: "Regent", Days: 2},
				{Movie: "Regent", Days: 3},
				{Movie: "Newton", Days: 1},
				{Movie: "Newton", Days: 3},
				{Movie: "Chills", Days: 3},
				{Movie: "Chills", Days: 4},
			}},
			{Name: "Jones"},
		},
	}
}

func TestBuild(t *testing.T) {
	s, err := Build(sampleConfig())
	require.NoError(t, err)

	customers := s.Customers()
	require.Len(t, customers, 2)
	assert.Equal(t, "Smith", customers[0].Name())
	assert.Equal(t, "Jones", customers[1].Name())

	rentals := customers[0].Rentals()
	require.Len(t, rentals, 6)
	assert.Same(t, rentals[0].Movie(), rentals[1].Movie())

	regent, ok := s.Movie("Regent")
	require.True(t, ok)
	assert.Same(t, regent, rentals[0].Movie())

	_, ok = s.Movie("Missing")
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	s, err := Build(sampleConfig())
	require.NoError(t, err)
	smith := s.Customers()[0]

	text, err := s.Render(smith, config.FormatText)
	require.NoError(t, err)
	assert.Contains(t, text, "Amount owed is 22.0")

	html, err := s.Render(smith, config.FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, html, "<p>You owe <em>22.0</em></p>")

	_, err = s.Render(smith, "pdf")
	assert.EqualError(t, err, `Unknown statement format "pdf"`)
}

func TestPolicySwapAffectsSharedMovie(t *testing.T) {
	s, err := Build(sampleConfig())
	require.NoError(t, err)

	newton, ok := s.Movie("Newton")
	require.True(t, ok)
	require.NoError(t, newton.SetPolicy(pricing.Regular))

	total, err := s.Customers()[0].TotalCharge()
	require.NoError(t, err)
	assert.Equal(t, "15.5", total.String())
}

func TestBuildErrors(t *testing.T) {
	cfg := sampleConfig()
	cfg.Movies[0].Category = "horror"
	_, err := Build(cfg)
	assert.EqualError(t, err, `Movie "Regent": unknown movie category "horror": invalid argument`)

	cfg = sampleConfig()
	cfg.Customers[0].Rentals[0].Movie = "Missing"
	_, err = Build(cfg)
	assert.EqualError(t, err, `Customer "Smith" rents unknown movie "Missing"`)

	cfg = sampleConfig()
	cfg.Customers[0].Rentals[0].Days = 0
	_, err = Build(cfg)
	assert.EqualError(t, err, `Customer "Smith": rental of "Regent" must last at least one day, got 0: invalid argument`)
}
