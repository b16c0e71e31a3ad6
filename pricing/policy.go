package pricing

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Policy prices a rental of a movie for a number of days.
// Implementations hold no per-movie state and may be shared between movies.
type Policy interface {
	Charge(daysRented int) (Amount, error)
	Points(daysRented int) (int, error)
}

var dailyRate = Fractional(decimal.New(15, -1))

// Built-in policies, one shared instance per category
var (
	Regular    Policy = regular{}
	NewRelease Policy = newRelease{}
	Childrens  Policy = childrens{}
)

type regular struct{}

func (regular) Charge(daysRented int) (Amount, error) {
	if err := validateDays(daysRented); err != nil {
		return Amount{}, err
	}

	amount := Whole(2)
	if daysRented > 2 {
		amount = amount.Add(dailyRate.Mul(daysRented - 2))
	}
	return amount, nil
}

func (regular) Points(daysRented int) (int, error) {
	if err := validateDays(daysRented); err != nil {
		return 0, err
	}
	return 1, nil
}

type newRelease struct{}

func (newRelease) Charge(daysRented int) (Amount, error) {
	if err := validateDays(daysRented); err != nil {
		return Amount{}, err
	}
	return Whole(3).Mul(daysRented), nil
}

func (newRelease) Points(daysRented int) (int, error) {
	if err := validateDays(daysRented); err != nil {
		return 0, err
	}

	// Bonus point for new releases kept more than one day
	if daysRented > 1 {
		return 2, nil
	}
	return 1, nil
}

type childrens struct{}

func (childrens) Charge(daysRented int) (Amount, error) {
	if err := validateDays(daysRented); err != nil {
		return Amount{}, err
	}

	amount := dailyRate
	if daysRented > 3 {
		amount = amount.Add(dailyRate.Mul(daysRented - 3))
	}
	return amount, nil
}

func (childrens) Points(daysRented int) (int, error) {
	if err := validateDays(daysRented); err != nil {
		return 0, err
	}
	return 1, nil
}

// Category movie category with a built-in pricing policy
type Category int

// Known categories
const (
	CategoryRegular Category = iota
	CategoryNewRelease
	CategoryChildrens
)

// Policy the shared built-in policy for the category
func (c Category) Policy() Policy {
	switch c {
	case CategoryNewRelease:
		return NewRelease
	case CategoryChildrens:
		return Childrens
	default:
		return Regular
	}
}

func (c Category) String() string {
	switch c {
	case CategoryRegular:
		return "regular"
	case CategoryNewRelease:
		return "new_release"
	case CategoryChildrens:
		return "childrens"
	}
	return "unknown"
}

// ParseCategory resolves a category name as written in configuration
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "regular":
		return CategoryRegular, nil
	case "new_release", "new-release", "newrelease":
		return CategoryNewRelease, nil
	case "childrens", "children":
		return CategoryChildrens, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown movie category %q", name)
}
