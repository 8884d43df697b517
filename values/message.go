package values

// Message is a closed sum type describing the state of a request:
// Success carries a payload, Failure a status code and reason, Loading nothing.
type Message interface {
	isMessage()
}

// Success holds the payload of a completed request
type Success struct {
	Data any
}

// Failure holds the code and reason of a failed request
type Failure struct {
	Code   int
	Reason string
}

// Loading marks a request that has not completed yet
type Loading struct{}

func (Success) isMessage() {}
func (Failure) isMessage() {}
func (Loading) isMessage() {}
