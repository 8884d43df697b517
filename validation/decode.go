package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/liamcoop/tagval/values"
)

// ErrMalformedRecord is returned when a raw user record cannot be decoded.
// It is distinct from a ValidationError: the shape of the input is wrong,
// not its content.
var ErrMalformedRecord = errors.New("malformed user record")

// userRecord mirrors the loose input accepted by DecodeUser.
// Pointer fields tell an absent key apart from a zero value.
type userRecord struct {
	Name   *string `mapstructure:"name"`
	Age    *int    `mapstructure:"age"`
	Email  *string `mapstructure:"email"`
	Active *bool   `mapstructure:"active"`
}

// DecodeUser builds a User from a loose key/value record.
// Missing age or email stay absent and are not validated; present ones go
// through ValidateAge and then ValidateEmail, and the first failure is
// returned unmodified. A missing active flag defaults to true.
func DecodeUser(raw map[string]any) (values.User, error) {
	var rec userRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncType(strictIntHook),
		Result:      &rec,
	})
	if err != nil {
		return values.User{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return values.User{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	if rec.Name == nil {
		return values.User{}, fmt.Errorf("%w: missing name", ErrMalformedRecord)
	}

	age := values.None[uint]()
	if rec.Age != nil {
		validAge, err := ValidateAge(*rec.Age)
		if err != nil {
			return values.User{}, err
		}
		age = values.Some(validAge)
	}

	email := values.None[string]()
	if rec.Email != nil {
		validEmail, err := ValidateEmail(*rec.Email)
		if err != nil {
			return values.User{}, err
		}
		email = values.Some(validEmail)
	}

	active := true
	if rec.Active != nil {
		active = *rec.Active
	}

	return newUser(*rec.Name, age, email, active), nil
}

// strictIntHook refuses to truncate floats into integer fields.
// JSON-decoded records carry every number as float64, so a fractional or
// out-of-range value would otherwise land as a different, valid-looking int.
func strictIntHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	if to.Kind() != reflect.Int {
		return data, nil
	}

	var f float64
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f = reflect.ValueOf(data).Float()
	default:
		return data, nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is out of integer range", f)
	}
	return int(f), nil
}

// DescribeUser renders a user's name with the age appended when it is known
func DescribeUser(u values.User) string {
	if age, ok := u.Age.Get(); ok {
		return fmt.Sprintf("%s (age: %d)", u.Name, age)
	}
	return u.Name
}
