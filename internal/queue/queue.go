// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package queue

import (
	"linkedds/internal/errdef"

	"github.com/pkg/errors"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a FIFO queue of linked nodes. front and rear are either both nil
// or rear is reachable from front and has no successor.
type Queue[T any] struct {
	front *node[T]
	rear  *node[T]
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) IsEmpty() bool {
	return q.front == nil
}

// Enqueue adds v at the rear.
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.front == nil {
		q.front = n
		q.rear = n
		return
	}
	q.rear.next = n
	q.rear = n
}

// Dequeue removes and returns the value at the front.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.front == nil {
		var zero T
		return zero, errors.Wrap(errdef.ErrEmpty, "dequeue")
	}
	n := q.front
	q.front = n.next
	if q.front == nil {
		q.rear = nil
	}
	n.next = nil
	return n.value, nil
}

func (q *Queue[T]) Front() (T, error) {
	if q.front == nil {
		var zero T
		return zero, errors.Wrap(errdef.ErrEmpty, "front")
	}
	return q.front.value, nil
}

func (q *Queue[T]) Rear() (T, error) {
	if q.rear == nil {
		var zero T
		return zero, errors.Wrap(errdef.ErrEmpty, "rear")
	}
	return q.rear.value, nil
}

// Len counts the queued values by walking from front.
func (q *Queue[T]) Len() int {
	n := 0
	for c := q.front; c != nil; c = c.next {
		n++
	}
	return n
}

// Values returns the queued values from front to rear.
func (q *Queue[T]) Values() []T {
	var rs []T
	for n := q.front; n != nil; n = n.next {
		rs = append(rs, n.value)
	}
	return rs
}

func (q *Queue[T]) Clear() {
	q.front = nil
	q.rear = nil
}
