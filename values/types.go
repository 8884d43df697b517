package values

import "github.com/google/uuid"

// User is a validated person record.
// An absent Age or Email means unknown, not invalid.
type User struct {
	ID     uuid.UUID
	Name   string
	Age    Optional[uint]
	Email  Optional[string]
	Active bool
}

// Status is the review state of a request
type Status int

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
)

// Point is a position on the integer grid
type Point struct {
	X int64
	Y int64
}
