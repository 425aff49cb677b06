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

package linkedlist

import (
	"fmt"
	"strings"

	"linkedds/internal/errdef"

	"github.com/pkg/errors"
)

const separator = "->"

type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list. The zero value is an empty list.
type LinkedList[T comparable] struct {
	head *node[T]
	size int
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Len returns the number of elements in the linked list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the linked list is empty.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// InsertHead adds a new element to the front of the linked list.
func (l *LinkedList[T]) InsertHead(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.size++
}

// Append adds a new element to the end of the linked list.
func (l *LinkedList[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.size++
		return
	}
	curr := l.head
	for curr.next != nil {
		curr = curr.next
	}
	curr.next = n
	l.size++
}

// InsertAfter links v directly after the first element equal to anchor.
func (l *LinkedList[T]) InsertAfter(anchor, v T) error {
	curr := l.find(anchor)
	if curr == nil {
		return errors.Wrapf(errdef.ErrNotFound, "anchor %v", anchor)
	}
	curr.next = &node[T]{value: v, next: curr.next}
	l.size++
	return nil
}

// Remove removes the first occurrence of v from the linked list.
func (l *LinkedList[T]) Remove(v T) error {
	if l.head == nil {
		return errors.Wrapf(errdef.ErrEmpty, "remove %v", v)
	}
	if l.head.value == v {
		_, err := l.DeleteHead()
		return err
	}
	prev := l.head
	for prev.next != nil && prev.next.value != v {
		prev = prev.next
	}
	if prev.next == nil {
		return errors.Wrapf(errdef.ErrNotFound, "value %v", v)
	}
	prev.next = prev.next.next
	l.size--
	return nil
}

// DeleteHead removes and returns the first element.
func (l *LinkedList[T]) DeleteHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrap(errdef.ErrEmpty, "delete head")
	}
	old := l.head
	l.head = old.next
	old.next = nil
	l.size--
	return old.value, nil
}

// Pop removes and returns the last element.
func (l *LinkedList[T]) Pop() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrap(errdef.ErrEmpty, "pop")
	}
	if l.head.next == nil {
		return l.DeleteHead()
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	last := prev.next
	prev.next = nil
	l.size--
	return last.value, nil
}

// Search returns the zero-based position of the first element equal to v.
func (l *LinkedList[T]) Search(v T) (int, error) {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return pos, nil
		}
		pos++
	}
	return -1, errors.Wrapf(errdef.ErrNotFound, "value %v", v)
}

// Get returns the value at index i.
func (l *LinkedList[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, errors.Wrapf(errdef.ErrOutOfBounds, "index %d, length %d", i, l.size)
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n.value, nil
}

// Values returns all values in the linked list.
func (l *LinkedList[T]) Values() []T {
	rs := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		rs = append(rs, n.value)
	}
	return rs
}

// Range calls the function f for each element in the linked list.
func (l *LinkedList[T]) Range(f func(T)) {
	for n := l.head; n != nil; n = n.next {
		f(n.value)
	}
}

// String joins the values head to tail with "->".
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(separator)
		}
		fmt.Fprint(&sb, n.value)
	}
	return sb.String()
}

// Clear removes all elements from the linked list.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.size = 0
}

func (l *LinkedList[T]) find(v T) *node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return n
		}
	}
	return nil
}
