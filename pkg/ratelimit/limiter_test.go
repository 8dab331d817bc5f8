package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierLimiter(t *testing.T) {
	t.Run("burst passes without waiting", func(t *testing.T) {
		l := NewSupplierLimiter(Config{RequestsPerSecond: 1, Burst: 3})
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, l.Wait(ctx, "iati"))
		}
	})

	t.Run("suppliers have separate buckets", func(t *testing.T) {
		l := NewSupplierLimiter(Config{RequestsPerSecond: 1, Burst: 1})
		ctx := context.Background()

		require.NoError(t, l.Wait(ctx, "iati"))
		require.NoError(t, l.Wait(ctx, "sabre"))
	})

	t.Run("exhausted bucket respects context deadline", func(t *testing.T) {
		l := NewSupplierLimiter(Config{RequestsPerSecond: 0.001, Burst: 1})
		require.NoError(t, l.Wait(context.Background(), "iati"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.Error(t, l.Wait(ctx, "iati"))
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		l := NewSupplierLimiter(Config{})
		assert.Equal(t, DefaultConfig(), l.defaults)
	})
}
