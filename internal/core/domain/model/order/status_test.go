package order_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Pending, "PENDING"},
		{order.Confirmed, "CONFIRMED"},
		{order.Processing, "PROCESSING"},
		{order.ReadyForDelivery, "READY_FOR_DELIVERY"},
		{order.InDelivery, "IN_DELIVERY"},
		{order.Delivered, "DELIVERED"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every wire literal", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.ReadyForDelivery, order.InDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown literal", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.Error(t, err)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("pending")
		require.Error(t, err)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	t.Run("should allow the forward chain", func(t *testing.T) {
		chain := []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.ReadyForDelivery, order.InDelivery, order.Delivered,
		}
		for i := 0; i < len(chain)-1; i++ {
			assert.True(t, chain[i].CanTransitionTo(chain[i+1]),
				"%s -> %s should be allowed", chain[i], chain[i+1])
		}
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.ReadyForDelivery, order.InDelivery,
		} {
			assert.True(t, s.CanTransitionTo(order.Cancelled), "%s -> CANCELLED should be allowed", s)
		}
	})

	t.Run("should reject everything from terminal statuses", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, next := range []order.Status{
				order.Pending, order.Confirmed, order.Processing,
				order.ReadyForDelivery, order.InDelivery, order.Delivered, order.Cancelled,
			} {
				assert.False(t, terminal.CanTransitionTo(next), "%s -> %s should be rejected", terminal, next)
			}
		}
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Processing))
		assert.False(t, order.Confirmed.CanTransitionTo(order.ReadyForDelivery))
		assert.False(t, order.Pending.CanTransitionTo(order.Delivered))
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		assert.False(t, order.Confirmed.CanTransitionTo(order.Pending))
		assert.False(t, order.InDelivery.CanTransitionTo(order.ReadyForDelivery))
	})
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("should return new status on legal move", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Confirmed)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("should wrap ErrInvalidStatusTransition on illegal move", func(t *testing.T) {
		_, err := order.Delivered.TransitionTo(order.Pending)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Contains(t, err.Error(), "DELIVERED -> PENDING")
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Status(99))
		require.Error(t, err)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InDelivery.IsTerminal())
}

func TestStatusValidate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}
