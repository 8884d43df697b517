package validation

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/liamcoop/tagval/values"
)

// Age limits, inclusive
const (
	MinAge = 0
	MaxAge = 150
)

// userNamespace scopes the name-based user IDs so equal inputs always map to the same ID
var userNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/liamcoop/tagval/users"))

// ValidateAge checks that age lies within MinAge..MaxAge and returns it unsigned
func ValidateAge(age int) (uint, error) {
	if age < MinAge {
		return 0, invalidAge("age %d is negative, must be between %d and %d", age, MinAge, MaxAge)
	}
	if age > MaxAge {
		return 0, invalidAge("age %d exceeds maximum of %d", age, MaxAge)
	}
	return uint(age), nil
}

// ValidateEmail checks that email has exactly one '@' with text on both sides.
// The input is returned unchanged on success.
func ValidateEmail(email string) (string, error) {
	if n := strings.Count(email, "@"); n != 1 {
		return "", invalidEmail("email %q must contain exactly one '@', found %d", email, n)
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" {
		return "", invalidEmail("email %q has an empty local part", email)
	}
	if domain == "" {
		return "", invalidEmail("email %q has an empty domain", email)
	}

	return email, nil
}

// CreateUser validates age and then email, returning the first failure unmodified.
// Users start active.
func CreateUser(name string, age int, email string) (values.User, error) {
	validAge, err := ValidateAge(age)
	if err != nil {
		return values.User{}, err
	}

	validEmail, err := ValidateEmail(email)
	if err != nil {
		return values.User{}, err
	}

	return newUser(name, values.Some(validAge), values.Some(validEmail), true), nil
}

func newUser(name string, age values.Optional[uint], email values.Optional[string], active bool) values.User {
	return values.User{
		ID:     UserID(name, email),
		Name:   name,
		Age:    age,
		Email:  email,
		Active: active,
	}
}

// UserID derives a stable identifier from the user's name and email.
// The name is length-prefixed and the email carries a presence byte so
// distinct inputs never share a key.
func UserID(name string, email values.Optional[string]) uuid.UUID {
	key := strconv.Itoa(len(name)) + ":" + name
	if e, ok := email.Get(); ok {
		key += "\x01" + e
	} else {
		key += "\x00"
	}
	return uuid.NewSHA1(userNamespace, []byte(key))
}

// FindUser returns the user with the given ID, or None when no user matches
func FindUser(users []values.User, id uuid.UUID) values.Optional[values.User] {
	i := slices.IndexFunc(users, func(u values.User) bool { return u.ID == id })
	if i < 0 {
		return values.None[values.User]()
	}
	return values.Some(users[i])
}
