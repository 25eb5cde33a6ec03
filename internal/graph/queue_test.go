// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package graph

import "testing"

func TestQueue_FIFOOrder(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	for _, id := range []int{3, 1, 4, 1, 5} {
		q.Enqueue(id)
	}

	want := []int{3, 1, 4, 1, 5}
	for i, w := range want {
		got, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue %d returned ok=false", i)
		}
		if got != w {
			t.Errorf("Dequeue %d = %d, want %d", i, got, w)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on drained queue returned ok=true")
	}
}

func TestQueue_DequeueEmpty(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	id, ok := q.Dequeue()
	if ok {
		t.Error("Dequeue on empty queue returned ok=true")
	}
	if id != 0 {
		t.Errorf("Dequeue on empty queue returned id=%d, want 0", id)
	}
}

func TestQueue_EmptyAndLen(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	if !q.Empty() {
		t.Error("new queue not Empty()")
	}
	if got := q.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}

	q.Enqueue(7)
	q.Enqueue(8)
	if q.Empty() {
		t.Error("queue with items reports Empty()")
	}
	if got := q.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	q.Dequeue()
	q.Dequeue()
	if !q.Empty() {
		t.Error("drained queue not Empty()")
	}
}

func TestQueue_ZeroValue(t *testing.T) {
	t.Parallel()

	var q Queue
	q.Enqueue(42)
	got, ok := q.Dequeue()
	if !ok || got != 42 {
		t.Errorf("zero-value queue round trip = %d, %v", got, ok)
	}
}

func TestQueue_InterleavedOperations(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	q.Enqueue(1)
	q.Enqueue(2)

	if got, _ := q.Dequeue(); got != 1 {
		t.Errorf("first Dequeue = %d, want 1", got)
	}

	q.Enqueue(3)

	if got, _ := q.Dequeue(); got != 2 {
		t.Errorf("second Dequeue = %d, want 2", got)
	}
	if got, _ := q.Dequeue(); got != 3 {
		t.Errorf("third Dequeue = %d, want 3", got)
	}
}
