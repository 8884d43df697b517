package evaluator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/liamcoop/tagval/safemath"
	"github.com/liamcoop/tagval/validation"
	"github.com/liamcoop/tagval/values"
)

// TestConcurrentCallsAreConsistent verifies calls from many goroutines agree with a serial run
func TestConcurrentCallsAreConsistent(t *testing.T) {
	defer goleak.VerifyNone(t)

	engine, err := NewGuardEngine(DefaultNumberGuards())
	require.NoError(t, err)

	run := func(n int64) (string, error) {
		area, err := ShapeArea(values.Rectangle{Width: float64((n%7+7)%7 + 1), Height: 2})
		if err != nil {
			return "", err
		}
		label, err := engine.Classify(values.Number(n))
		if err != nil {
			return "", err
		}
		user, err := validation.CreateUser("user", int((n%151+151)%151), "user@example.com")
		if err != nil {
			return "", err
		}
		quotient, err := safemath.SafeDivideAndParse(fmt.Sprint(n), "4")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s|%s|%s|%s|%v|%v|%s",
			ClassifyValue(values.Number(n)),
			ClassifyNumber(n),
			MatchWeekday(uint(n%9)),
			label,
			area,
			quotient,
			user.ID,
		), nil
	}

	const inputs = 200
	want := make([]string, inputs)
	for i := range want {
		want[i], err = run(int64(i - inputs/2))
		require.NoError(t, err)
	}

	got := make([][]string, 8)
	var g errgroup.Group
	for w := range got {
		got[w] = make([]string, inputs)
		g.Go(func() error {
			for i := range inputs {
				out, err := run(int64(i - inputs/2))
				if err != nil {
					return err
				}
				got[w][i] = out
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := range got {
		require.Equal(t, want, got[w], "worker %d diverged", w)
	}
}
