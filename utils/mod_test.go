package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("dequeuing in insertion order", func(t *testing.T) {
		q := NewQueue[int]()
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)

		require.Equal(t, 3, q.Len(), "Queue should hold every enqueued item")
		for _, want := range []int{1, 2, 3} {
			got, ok := q.Dequeue()
			require.True(t, ok, "Dequeue should succeed on a non-empty queue")
			require.Equal(t, want, got, "Items should come out first in, first out")
		}
		require.True(t, q.IsEmpty(), "Queue should be empty once drained")
	})

	t.Run("dequeuing from an empty queue", func(t *testing.T) {
		q := NewQueue[string]()

		got, ok := q.Dequeue()

		require.False(t, ok, "Dequeue should report an empty queue")
		require.Equal(t, "", got, "Dequeue should return the zero value")
	})

	t.Run("reusing a drained queue", func(t *testing.T) {
		q := NewQueue[int]()
		q.Enqueue(1)
		q.Dequeue()
		q.Enqueue(2)

		got, ok := q.Dequeue()

		require.True(t, ok, "Dequeue should succeed after refilling")
		require.Equal(t, 2, got, "Queue should return the refilled item")
	})
}

func TestSliceHelpers(t *testing.T) {
	t.Run("finding items", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]string{"a", "b"}, "b"), "FindIndex should return the position")
		require.Equal(t, -1, FindIndex([]string{"a"}, "z"), "FindIndex should return -1 when missing")
		require.True(t, Contains([]int{4, 5}, 5), "Contains should find present items")
		require.False(t, Contains([]int(nil), 5), "Contains should handle nil slices")
	})

	t.Run("reversing without touching the input", func(t *testing.T) {
		in := []int{1, 2, 3}

		got := Reversed(in)

		require.Equal(t, []int{3, 2, 1}, got, "Reversed should flip the order")
		require.Equal(t, []int{1, 2, 3}, in, "Reversed should not modify its input")
	})
}
