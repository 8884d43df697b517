package evaluator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/liamcoop/tagval/values"
)

// ErrUnknownMessage is returned for a nil Message
var ErrUnknownMessage = errors.New("unknown message")

// DescribeMessage renders a request state.
// Success payloads are rendered as JSON; a payload that cannot be encoded
// is reported as an error rather than replaced.
func DescribeMessage(m values.Message) (string, error) {
	switch m := m.(type) {
	case values.Success:
		data, err := json.Marshal(m.Data)
		if err != nil {
			return "", fmt.Errorf("failed to encode success payload: %w", err)
		}
		return "success: " + string(data), nil
	case values.Failure:
		return fmt.Sprintf("error %d: %s", m.Code, m.Reason), nil
	case values.Loading:
		return "loading", nil
	default:
		return "", ErrUnknownMessage
	}
}

// DescribeResult renders the outcome of a fallible call as "ok: <v>" or "error: <reason>"
func DescribeResult[T any](v T, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("ok: %v", v)
}

// DescribePair destructures a pair and reports which members are zero or equal
func DescribePair(a, b int64) string {
	switch {
	case a == 0 && b == 0:
		return "both zero"
	case a == 0:
		return fmt.Sprintf("first is zero, second is %d", b)
	case b == 0:
		return fmt.Sprintf("first is %d, second is zero", a)
	case a == b:
		return fmt.Sprintf("both are %d", a)
	default:
		return fmt.Sprintf("(%d, %d)", a, b)
	}
}
