package pricing

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
)

var (
	amountType = reflect.TypeOf(Amount{})
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// Adapt turns any value with Charge and Points methods into a Policy.
//
// Each method must take a single integer duration and return either a value
// or a value and an error. Charge may return an Amount, an integer (whole
// amount) or a float (fractional amount); Points must return an integer.
// Values that already implement Policy are returned unchanged.
func Adapt(v interface{}) (Policy, error) {
	if IsNil(v) {
		return nil, errors.Wrap(ErrInvalidArgument, "pricing policy is nil")
	}
	if p, ok := v.(Policy); ok {
		return p, nil
	}

	rv := reflect.ValueOf(v)
	charge, err := lookupMethod(rv, "Charge", isChargeResult)
	if err != nil {
		return nil, err
	}
	points, err := lookupMethod(rv, "Points", isIntKind)
	if err != nil {
		return nil, err
	}

	return &dynamicPolicy{charge: charge, points: points}, nil
}

// IsNil reports whether v is nil or a typed nil such as a nil pointer
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func lookupMethod(rv reflect.Value, name string, validResult func(reflect.Type) bool) (reflect.Value, error) {
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, errors.Wrapf(ErrMissingCapability, "pricing policy %s has no %s method", rv.Type(), name)
	}

	t := m.Type()
	if t.IsVariadic() || t.NumIn() != 1 || !isIntKind(t.In(0)) {
		return reflect.Value{}, errors.Wrapf(ErrArityMismatch, "%s.%s must take a single integer duration, has signature %s", rv.Type(), name, t)
	}

	switch {
	case t.NumOut() == 1 && validResult(t.Out(0)):
	case t.NumOut() == 2 && validResult(t.Out(0)) && t.Out(1) == errorType:
	default:
		return reflect.Value{}, errors.Wrapf(ErrArityMismatch, "%s.%s has unsupported results, has signature %s", rv.Type(), name, t)
	}

	return m, nil
}

func isIntKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloatKind(t reflect.Type) bool {
	return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
}

func isChargeResult(t reflect.Type) bool {
	return t == amountType || isIntKind(t) || isFloatKind(t)
}

type dynamicPolicy struct {
	charge reflect.Value
	points reflect.Value
}

func (p *dynamicPolicy) Charge(daysRented int) (Amount, error) {
	out, err := call(p.charge, daysRented)
	if err != nil {
		return Amount{}, err
	}

	r := out[0]
	switch {
	case r.Type() == amountType:
		return r.Interface().(Amount), nil
	case isFloatKind(r.Type()):
		f := r.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Amount{}, errors.Wrapf(ErrInvalidArgument, "charge for %d days is not a finite number: %v", daysRented, f)
		}
		return FromFloat(f), nil
	}

	n, err := intValue(r)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "charge for %d days", daysRented)
	}
	return Whole(n), nil
}

func (p *dynamicPolicy) Points(daysRented int) (int, error) {
	out, err := call(p.points, daysRented)
	if err != nil {
		return 0, err
	}

	n, err := intValue(out[0])
	if err != nil {
		return 0, errors.Wrapf(err, "points for %d days", daysRented)
	}
	if int64(int(n)) != n {
		return 0, errors.Wrapf(ErrInvalidArgument, "points for %d days out of range: %d", daysRented, n)
	}
	return int(n), nil
}

// call converts the duration to the method's parameter type, refusing
// durations that type cannot hold.
func call(m reflect.Value, daysRented int) ([]reflect.Value, error) {
	in := m.Type().In(0)
	arg := reflect.New(in).Elem()

	switch in.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if daysRented < 0 || arg.OverflowUint(uint64(daysRented)) {
			return nil, errors.Wrapf(ErrInvalidArgument, "%d days does not fit policy parameter type %s", daysRented, in)
		}
		arg.SetUint(uint64(daysRented))
	default:
		if arg.OverflowInt(int64(daysRented)) {
			return nil, errors.Wrapf(ErrInvalidArgument, "%d days does not fit policy parameter type %s", daysRented, in)
		}
		arg.SetInt(int64(daysRented))
	}

	out := m.Call([]reflect.Value{arg})
	if err := resultError(out); err != nil {
		return nil, err
	}
	return out, nil
}

func resultError(out []reflect.Value) error {
	if len(out) < 2 || out[1].IsNil() {
		return nil
	}
	return out[1].Interface().(error)
}

func intValue(v reflect.Value) (int64, error) {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, errors.Wrapf(ErrInvalidArgument, "result %d out of range", u)
		}
		return int64(u), nil
	}
	return v.Int(), nil
}
