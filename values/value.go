package values

import "strconv"

// Kind names the variant a Value holds
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Value is a closed sum type over Text, Number and Boolean.
// The unexported marker method keeps other packages from adding variants,
// so a type switch over the three types below is exhaustive.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// Text holds a string payload
type Text string

// Number holds a signed integer payload
type Number int64

// Boolean holds a truth value
type Boolean bool

func (Text) Kind() Kind    { return KindText }
func (Number) Kind() Kind  { return KindNumber }
func (Boolean) Kind() Kind { return KindBoolean }

func (t Text) String() string    { return string(t) }
func (n Number) String() string  { return strconv.FormatInt(int64(n), 10) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

func (Text) isValue()    {}
func (Number) isValue()  {}
func (Boolean) isValue() {}
