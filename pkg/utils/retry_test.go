package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/commercegate/checkout-service/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds first attempt", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		wantErr := errors.New("persistent")
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("abort sentinel short-circuits", func(t *testing.T) {
		sentinel := errors.New("not found")
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return sentinel
		}, sentinel)
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls)
	})

	t.Run("wrapped abort sentinel short-circuits", func(t *testing.T) {
		sentinel := errors.New("not found")
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return errors.Join(errors.New("query failed"), sentinel)
		}, sentinel)
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		calls := 0
		err := utils.Retry(utils.RetryConfig{InitialDelay: time.Millisecond}, func() error {
			calls++
			return errors.New("always")
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}
