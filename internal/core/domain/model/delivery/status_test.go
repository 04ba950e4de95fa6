package delivery_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status delivery.Status
		want   string
	}{
		{delivery.Pending, "PENDING"},
		{delivery.Assigned, "ASSIGNED"},
		{delivery.PickedUp, "PICKED_UP"},
		{delivery.InTransit, "IN_TRANSIT"},
		{delivery.Delivered, "DELIVERED"},
		{delivery.Failed, "FAILED"},
		{delivery.Unknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every wire literal", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending, delivery.Assigned, delivery.PickedUp,
			delivery.InTransit, delivery.Delivered, delivery.Failed,
		} {
			parsed, err := delivery.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown literal", func(t *testing.T) {
		_, err := delivery.StatusFromString("ARRIVED")
		require.Error(t, err)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	t.Run("should allow the forward chain", func(t *testing.T) {
		chain := []delivery.Status{
			delivery.Pending, delivery.Assigned, delivery.PickedUp,
			delivery.InTransit, delivery.Delivered,
		}
		for i := 0; i < len(chain)-1; i++ {
			assert.True(t, chain[i].CanTransitionTo(chain[i+1]),
				"%s -> %s should be allowed", chain[i], chain[i+1])
		}
	})

	t.Run("should allow failure only from in transit", func(t *testing.T) {
		assert.True(t, delivery.InTransit.CanTransitionTo(delivery.Failed))
		assert.False(t, delivery.Pending.CanTransitionTo(delivery.Failed))
		assert.False(t, delivery.Assigned.CanTransitionTo(delivery.Failed))
		assert.False(t, delivery.PickedUp.CanTransitionTo(delivery.Failed))
	})

	t.Run("should accept any first status from unknown", func(t *testing.T) {
		for _, next := range []delivery.Status{
			delivery.Pending, delivery.Assigned, delivery.PickedUp,
			delivery.InTransit, delivery.Delivered, delivery.Failed,
		} {
			assert.True(t, delivery.Unknown.CanTransitionTo(next), "UNKNOWN -> %s should be allowed", next)
		}
	})

	t.Run("should not accept unknown as target", func(t *testing.T) {
		assert.False(t, delivery.Unknown.CanTransitionTo(delivery.Unknown))
		assert.False(t, delivery.Pending.CanTransitionTo(delivery.Unknown))
	})

	t.Run("should reject everything from terminal statuses", func(t *testing.T) {
		for _, terminal := range []delivery.Status{delivery.Delivered, delivery.Failed} {
			for _, next := range []delivery.Status{
				delivery.Pending, delivery.Assigned, delivery.PickedUp,
				delivery.InTransit, delivery.Delivered, delivery.Failed,
			} {
				assert.False(t, terminal.CanTransitionTo(next), "%s -> %s should be rejected", terminal, next)
			}
		}
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		assert.False(t, delivery.Pending.CanTransitionTo(delivery.PickedUp))
		assert.False(t, delivery.Assigned.CanTransitionTo(delivery.InTransit))
	})
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("should return new status on legal move", func(t *testing.T) {
		next, err := delivery.Assigned.TransitionTo(delivery.PickedUp)
		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, next)
	})

	t.Run("should wrap ErrInvalidStatusTransition on illegal move", func(t *testing.T) {
		_, err := delivery.Delivered.TransitionTo(delivery.Pending)
		require.ErrorIs(t, err, delivery.ErrInvalidStatusTransition)
		assert.Contains(t, err.Error(), "DELIVERED -> PENDING")
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := delivery.Pending.TransitionTo(delivery.Status(99))
		require.Error(t, err)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, delivery.Delivered.IsTerminal())
	assert.True(t, delivery.Failed.IsTerminal())
	assert.False(t, delivery.Pending.IsTerminal())
	assert.False(t, delivery.InTransit.IsTerminal())
}
