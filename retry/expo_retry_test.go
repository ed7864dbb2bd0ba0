package retry

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Expo_Do_count(t *testing.T) {
	err := fmt.Errorf("err")
	count := 0

	r := makeExpoRetry()
	err2 := r.Do(3, "fetch-page", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		return err, Continue
	})

	assert.True(t, errors.Is(err, err2))
	assert.Equal(t, 3, count)
}

func Test_Expo_Do_stops_on_success(t *testing.T) {
	count := 0

	r := makeExpoRetry()
	err := r.Do(5, "fetch-page", func(attempt int) (error, ExitStrategy) {
		count++
		if count < 3 {
			return fmt.Errorf("transient"), Continue
		}
		return nil, StopNow
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func Test_Expo_Do_early_exit(t *testing.T) {
	fatal := fmt.Errorf("fatal")
	transient := fmt.Errorf("transient")
	count := 0

	r := makeExpoRetry()
	err := r.Do(10, "fetch-page", func(attempt int) (error, ExitStrategy) {
		count++
		if count == 2 {
			return fatal, StopNow
		}
		return transient, Continue
	})

	assert.True(t, errors.Is(fatal, err))
	assert.Equal(t, 2, count)
}

func Test_Expo_Do_0(t *testing.T) {
	count := 0

	r := makeExpoRetry()
	err := r.Do(0, "fetch-page", func(attempt int) (error, ExitStrategy) {
		count++
		assert.Fail(t, "Should never run")
		return nil, Continue
	})

	assert.Error(t, err)
	assert.Equal(t, 0, count)
}

func makeExpoRetry() *expoRetry {
	return NewExponentialRetry(
		WithInitialDuration(0 * time.Millisecond),
	).(*expoRetry)
}
