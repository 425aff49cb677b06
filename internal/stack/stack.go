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

package stack

import (
	"linkedds/internal/errdef"

	"github.com/pkg/errors"
)

type element[T any] struct {
	value T
	next  *element[T]
}

// Stack is a LIFO stack of linked elements.
type Stack[T any] struct {
	top *element[T]
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

func (s *Stack[T]) Push(v T) {
	s.top = &element[T]{value: v, next: s.top}
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, errors.Wrap(errdef.ErrEmpty, "peek")
	}
	return s.top.value, nil
}

func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, errors.Wrap(errdef.ErrEmpty, "pop")
	}
	e := s.top
	s.top = e.next
	e.next = nil
	return e.value, nil
}

// Size walks the stack; no counter is kept.
func (s *Stack[T]) Size() int {
	n := 0
	for e := s.top; e != nil; e = e.next {
		n++
	}
	return n
}

// Values returns the values from top to bottom.
func (s *Stack[T]) Values() []T {
	var rs []T
	for e := s.top; e != nil; e = e.next {
		rs = append(rs, e.value)
	}
	return rs
}

func (s *Stack[T]) Clear() {
	s.top = nil
}
