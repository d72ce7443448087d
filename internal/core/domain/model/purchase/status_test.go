package purchase_test

import (
	"errors"
	"fmt"
	"testing"

	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(purchase.StatusUnknown))
		assert.Equal(t, 1, int(purchase.InProgress))
		assert.Equal(t, 2, int(purchase.Authorized))
		assert.Equal(t, 3, int(purchase.Captured))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []purchase.Status{
			purchase.StatusUnknown,
			purchase.InProgress,
			purchase.Authorized,
			purchase.Captured,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []purchase.Status{
			purchase.InProgress,
			purchase.Authorized,
			purchase.Captured,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject StatusUnknown", func(t *testing.T) {
		err := purchase.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []purchase.Status{
			purchase.Status(-1),
			purchase.Status(4),
			purchase.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   purchase.Status
			expected string
		}{
			{purchase.InProgress, "IN_PROGRESS"},
			{purchase.Authorized, "AUTHORIZED"},
			{purchase.Captured, "CAPTURED"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				result := tc.status.String()
				assert.Equal(t, tc.expected, result)
			})
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		invalidStatuses := []purchase.Status{
			purchase.StatusUnknown,
			purchase.Status(-1),
			purchase.Status(4),
			purchase.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should return UNKNOWN for status value %d", int(status)), func(t *testing.T) {
				result := status.String()
				assert.Equal(t, "UNKNOWN", result)
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected purchase.Status
		}{
			{"IN_PROGRESS", purchase.InProgress},
			{"AUTHORIZED", purchase.Authorized},
			{"CAPTURED", purchase.Captured},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.input), func(t *testing.T) {
				status, err := purchase.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		invalidInputs := []string{
			"",
			"UNKNOWN",
			"in_progress",
			"COMPLETED",
			"IN PROGRESS",
		}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				status, err := purchase.StatusFromString(input)

				require.Error(t, err)
				assert.Equal(t, purchase.StatusUnknown, status)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid status")
			})
		}
	})

	t.Run("should round-trip with String", func(t *testing.T) {
		statuses := []purchase.Status{
			purchase.InProgress,
			purchase.Authorized,
			purchase.Captured,
		}

		for _, status := range statuses {
			parsed, err := purchase.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should return Authorized as successor of InProgress", func(t *testing.T) {
		next, err := purchase.InProgress.Next()

		require.NoError(t, err)
		assert.Equal(t, purchase.Authorized, next)
	})

	t.Run("should return Captured as successor of Authorized", func(t *testing.T) {
		next, err := purchase.Authorized.Next()

		require.NoError(t, err)
		assert.Equal(t, purchase.Captured, next)
	})

	t.Run("should fail for terminal Captured status", func(t *testing.T) {
		next, err := purchase.Captured.Next()

		require.Error(t, err)
		assert.Equal(t, purchase.StatusUnknown, next)
		assert.ErrorIs(t, err, purchase.ErrStatusChangeNotAllowed)
	})

	t.Run("should fail for invalid status values", func(t *testing.T) {
		invalidStatuses := []purchase.Status{
			purchase.StatusUnknown,
			purchase.Status(-1),
			purchase.Status(4),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should fail for status value %d", int(status)), func(t *testing.T) {
				next, err := status.Next()

				require.Error(t, err)
				assert.Equal(t, purchase.StatusUnknown, next)
			})
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow transition from InProgress to Authorized", func(t *testing.T) {
		newStatus, err := purchase.InProgress.TransitionTo(purchase.Authorized)

		require.NoError(t, err)
		assert.Equal(t, purchase.Authorized, newStatus)
	})

	t.Run("should allow transition from Authorized to Captured", func(t *testing.T) {
		newStatus, err := purchase.Authorized.TransitionTo(purchase.Captured)

		require.NoError(t, err)
		assert.Equal(t, purchase.Captured, newStatus)
	})

	t.Run("should reject skipping a state", func(t *testing.T) {
		newStatus, err := purchase.InProgress.TransitionTo(purchase.Captured)

		require.Error(t, err)
		assert.Equal(t, purchase.StatusUnknown, newStatus)
		assert.ErrorIs(t, err, purchase.ErrStatusChangeNotAllowed)
		assert.Contains(t, err.Error(), "cannot change status from IN_PROGRESS to CAPTURED")
	})

	t.Run("should reject transition to the same status", func(t *testing.T) {
		testCases := []purchase.Status{
			purchase.InProgress,
			purchase.Authorized,
			purchase.Captured,
		}

		for _, status := range testCases {
			t.Run(fmt.Sprintf("should reject %s to %s", status.String(), status.String()), func(t *testing.T) {
				newStatus, err := status.TransitionTo(status)

				require.Error(t, err)
				assert.Equal(t, purchase.StatusUnknown, newStatus)
				assert.ErrorIs(t, err, purchase.ErrStatusChangeNotAllowed)
			})
		}
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		newStatus, err := purchase.Authorized.TransitionTo(purchase.InProgress)

		require.Error(t, err)
		assert.Equal(t, purchase.StatusUnknown, newStatus)
		assert.Contains(t, err.Error(), "cannot change status from AUTHORIZED to IN_PROGRESS")
	})

	t.Run("should reject any transition out of Captured", func(t *testing.T) {
		targets := []purchase.Status{
			purchase.InProgress,
			purchase.Authorized,
			purchase.Captured,
		}

		for _, target := range targets {
			t.Run(fmt.Sprintf("should reject CAPTURED to %s", target.String()), func(t *testing.T) {
				newStatus, err := purchase.Captured.TransitionTo(target)

				require.Error(t, err)
				assert.Equal(t, purchase.StatusUnknown, newStatus)
				assert.Contains(t, err.Error(),
					fmt.Sprintf("cannot change status from CAPTURED to %s", target.String()))
			})
		}
	})

	t.Run("should carry both statuses in the error", func(t *testing.T) {
		_, err := purchase.InProgress.TransitionTo(purchase.Captured)

		require.Error(t, err)
		var transitionErr *purchase.StatusTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, purchase.InProgress, transitionErr.Current)
		assert.Equal(t, purchase.Captured, transitionErr.Requested)
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow the full payment lifecycle", func(t *testing.T) {
		status := purchase.InProgress

		status, err := status.TransitionTo(purchase.Authorized)
		require.NoError(t, err)
		assert.Equal(t, purchase.Authorized, status)

		status, err = status.TransitionTo(purchase.Captured)
		require.NoError(t, err)
		assert.Equal(t, purchase.Captured, status)

		// Captured is terminal
		_, err = status.Next()
		require.Error(t, err)
	})

	t.Run("should agree between Next and TransitionTo", func(t *testing.T) {
		statuses := []purchase.Status{
			purchase.InProgress,
			purchase.Authorized,
		}

		for _, status := range statuses {
			next, err := status.Next()
			require.NoError(t, err)

			viaTransition, err := status.TransitionTo(next)
			require.NoError(t, err)
			assert.Equal(t, next, viaTransition)
		}
	})

	t.Run("should not modify original status during transitions", func(t *testing.T) {
		originalStatus := purchase.InProgress

		newStatus, err := originalStatus.TransitionTo(purchase.Authorized)
		require.NoError(t, err)

		assert.Equal(t, purchase.InProgress, originalStatus)
		assert.Equal(t, purchase.Authorized, newStatus)
	})
}

func TestStatusTransitionError(t *testing.T) {
	t.Run("should format with wire names", func(t *testing.T) {
		err := purchase.NewStatusTransitionError(purchase.Captured, purchase.InProgress)

		assert.Equal(t, "cannot change status from CAPTURED to IN_PROGRESS", err.Error())
	})

	t.Run("should unwrap to the sentinel", func(t *testing.T) {
		err := purchase.NewStatusTransitionError(purchase.InProgress, purchase.Captured)

		assert.ErrorIs(t, err, purchase.ErrStatusChangeNotAllowed)
	})
}
