package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtkit/adtkit/pqueue"
)

func TestPQueue_MinOrder(t *testing.T) {
	pq := pqueue.New[string, int]()
	pq.Push("c", 30)
	pq.Push("a", 10)
	pq.Push("b", 20)

	var got []string
	for !pq.IsEmpty() {
		v, _, err := pq.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestPQueue_MaxOrder(t *testing.T) {
	pq := pqueue.NewMax[string, int]()
	pq.Push("low", 1)
	pq.Push("high", 9)
	pq.Push("mid", 5)

	v, p, err := pq.Pop()
	require.NoError(t, err)
	assert.Equal(t, "high", v)
	assert.Equal(t, 9, p)
}

func TestPQueue_StableTieBreak(t *testing.T) {
	pq := pqueue.New[string, int]()
	pq.Push("first", 1)
	pq.Push("second", 1)
	pq.Push("third", 1)

	var got []string
	for !pq.IsEmpty() {
		v, _, err := pq.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestPQueue_StableTieBreak_Max(t *testing.T) {
	pq := pqueue.NewMax[string, int]()
	pq.Push("first", 7)
	pq.Push("second", 7)

	v, _, err := pq.Pop()
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestPQueue_Empty(t *testing.T) {
	pq := pqueue.New[int, int]()
	_, _, err := pq.Pop()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
	_, _, err = pq.Peek()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

func TestPQueue_PeekDoesNotRemove(t *testing.T) {
	pq := pqueue.New[string, float64]()
	pq.Push("x", 2.5)
	pq.Push("y", 0.5)

	v, p, err := pq.Peek()
	require.NoError(t, err)
	assert.Equal(t, "y", v)
	assert.Equal(t, 0.5, p)
	assert.Equal(t, 2, pq.Len())
}

func TestPQueue_InterleavedPriorities(t *testing.T) {
	pq := pqueue.New[string, int]()
	pq.Push("e5", 5)
	pq.Push("e1", 1)

	v, _, err := pq.Pop()
	require.NoError(t, err)
	assert.Equal(t, "e1", v)

	pq.Push("e3", 3)
	pq.Push("e0", 0)

	var got []string
	for !pq.IsEmpty() {
		v, _, err := pq.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"e0", "e3", "e5"}, got)
}
