// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package graph

// Queue is a FIFO queue of movie IDs for breadth-first graph traversal.
// The zero value is ready to use. Not safe for concurrent use.
type Queue struct {
	items []int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends id to the back of the queue.
func (q *Queue) Enqueue(id int) {
	q.items = append(q.items, id)
}

// Dequeue removes and returns the ID at the front of the queue.
// ok is false when the queue is empty.
func (q *Queue) Dequeue() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}

	id := q.items[0]
	q.items = q.items[1:]
	return id, true
}

// Empty reports whether the queue holds no IDs.
func (q *Queue) Empty() bool {
	return len(q.items) == 0
}

// Len returns the number of queued IDs.
func (q *Queue) Len() int {
	return len(q.items)
}
