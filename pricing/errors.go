package pricing

import "github.com/pkg/errors"

// Error kinds returned by pricing policies and everything that delegates to them.
// Callers compare with errors.Cause.
var (
	// ErrInvalidArgument a rental duration or policy value that cannot be priced
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingCapability an injected policy lacks Charge or Points
	ErrMissingCapability = errors.New("missing capability")
	// ErrArityMismatch an injected policy method has the wrong signature
	ErrArityMismatch = errors.New("arity mismatch")
)

func validateDays(daysRented int) error {
	if daysRented < 1 {
		return errors.Wrapf(ErrInvalidArgument, "days rented must be positive, got %d", daysRented)
	}
	return nil
}
