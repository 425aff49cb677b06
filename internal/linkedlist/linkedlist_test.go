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
	"testing"

	"linkedds/internal/errdef"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts nodes by following links from head.
func reachable[T comparable](l *LinkedList[T]) int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

func build(vals ...int) *LinkedList[int] {
	l := NewLinkedList[int]()
	for _, v := range vals {
		l.Append(v)
	}
	return l
}

func TestInsertHead(t *testing.T) {
	l := NewLinkedList[int]()
	l.InsertHead(30)
	l.InsertHead(20)
	l.InsertHead(10)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 10, l.head.value)
	assert.Equal(t, []int{10, 20, 30}, l.Values())

	l.Append(40)
	assert.Equal(t, []int{10, 20, 30, 40}, l.Values())
	assert.Equal(t, "10->20->30->40", l.String())
}

func TestAppend(t *testing.T) {
	// Test appending to an empty list
	l := NewLinkedList[int]()
	l.Append(1)
	if l.Len() != 1 {
		t.Errorf("Expected length to be 1, got %d", l.Len())
	}
	if l.head.value != 1 {
		t.Errorf("Expected head value to be 1, got %d", l.head.value)
	}

	// Test appending multiple elements
	l.Append(2)
	l.Append(3)
	assert.Equal(t, []int{1, 2, 3}, l.Values())
	assert.Nil(t, l.head.next.next.next, "tail must not have a successor")
}

func TestInsertAfter(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		l := build(10, 20, 30)
		require.NoError(t, l.InsertAfter(20, 25))
		assert.Equal(t, []int{10, 20, 25, 30}, l.Values())
		assert.Equal(t, 4, l.Len())
	})

	t.Run("after tail", func(t *testing.T) {
		l := build(10, 20)
		require.NoError(t, l.InsertAfter(20, 30))
		assert.Equal(t, []int{10, 20, 30}, l.Values())
		_, err := l.Pop()
		require.NoError(t, err)
		assert.Equal(t, []int{10, 20}, l.Values())
	})

	t.Run("first anchor wins", func(t *testing.T) {
		l := build(1, 2, 1)
		require.NoError(t, l.InsertAfter(1, 9))
		assert.Equal(t, []int{1, 9, 2, 1}, l.Values())
	})

	t.Run("missing anchor", func(t *testing.T) {
		l := build(1, 2)
		err := l.InsertAfter(7, 9)
		assert.True(t, errors.Is(err, errdef.ErrNotFound))
		assert.Equal(t, []int{1, 2}, l.Values())
		assert.Equal(t, 2, l.Len())
	})

	t.Run("empty list", func(t *testing.T) {
		l := NewLinkedList[int]()
		assert.ErrorIs(t, l.InsertAfter(1, 2), errdef.ErrNotFound)
		assert.True(t, l.IsEmpty())
	})
}

func TestRemove(t *testing.T) {
	// Test removing from an empty list
	l := NewLinkedList[int]()
	assert.ErrorIs(t, l.Remove(1), errdef.ErrEmpty)

	// Test removing the only element
	l.Append(1)
	require.NoError(t, l.Remove(1))
	if !l.IsEmpty() {
		t.Error("Expected linked list to be empty after removing the only element")
	}

	// Test removing the first element
	l.Append(1)
	l.Append(2)
	require.NoError(t, l.Remove(1))
	if l.Len() != 1 {
		t.Errorf("Expected length to be 1, got %d", l.Len())
	}
	if l.head.value != 2 {
		t.Errorf("Expected head value to be 2, got %d", l.head.value)
	}

	// Test removing a middle and the last element
	l = build(1, 2, 3, 4)
	require.NoError(t, l.Remove(2))
	assert.Equal(t, []int{1, 3, 4}, l.Values())
	require.NoError(t, l.Remove(4))
	assert.Equal(t, []int{1, 3}, l.Values())
	assert.Equal(t, 2, l.Len())

	// Test removing a missing value
	assert.ErrorIs(t, l.Remove(42), errdef.ErrNotFound)
	assert.Equal(t, []int{1, 3}, l.Values())
}

func TestRemoveDuplicates(t *testing.T) {
	l := build(5, 7, 5, 8, 5)
	require.NoError(t, l.Remove(5))
	assert.Equal(t, []int{7, 5, 8, 5}, l.Values())
	require.NoError(t, l.Remove(5))
	assert.Equal(t, []int{7, 8, 5}, l.Values())
	assert.Equal(t, 3, l.Len())
}

func TestDeleteHead(t *testing.T) {
	l := NewLinkedList[int]()
	_, err := l.DeleteHead()
	assert.ErrorIs(t, err, errdef.ErrEmpty)

	l = build(1, 2)
	v, err := l.DeleteHead()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2}, l.Values())

	// insert_head followed by delete_head restores the list
	before := l.Values()
	l.InsertHead(99)
	v, err = l.DeleteHead()
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	assert.Equal(t, before, l.Values())
	assert.Equal(t, len(before), l.Len())
}

func TestLinkedListPop(t *testing.T) {
	l := NewLinkedList[int]()
	_, err := l.Pop()
	assert.ErrorIs(t, err, errdef.ErrEmpty)

	l.Append(1)
	v, err := l.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())

	l = build(1, 2, 3)
	for _, want := range []int{3, 2, 1} {
		v, err = l.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err = l.Pop()
	assert.ErrorIs(t, err, errdef.ErrEmpty)
}

func TestSearch(t *testing.T) {
	l := NewLinkedList[string]()
	_, err := l.Search("a")
	assert.ErrorIs(t, err, errdef.ErrNotFound)

	l.Append("a")
	l.Append("b")
	l.Append("b")
	pos, err := l.Search("b")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	// a stored value that looks like an error marker is still data
	l.Append("Not Found")
	pos, err = l.Search("Not Found")
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
}

func TestGet(t *testing.T) {
	l := NewLinkedList[int]()
	_, err := l.Get(0)
	assert.ErrorIs(t, err, errdef.ErrOutOfBounds)

	l = build(10, 20, 30)
	tests := []struct {
		index int
		want  int
		err   error
	}{
		{0, 10, nil},
		{2, 30, nil},
		{-1, 0, errdef.ErrOutOfBounds},
		{3, 0, errdef.ErrOutOfBounds},
	}
	for _, tt := range tests {
		v, err := l.Get(tt.index)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "index %d", tt.index)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, v)
	}
}

func TestLinkedList_Values(t *testing.T) {
	// Test when the linked list is empty
	l := NewLinkedList[int]()
	values := l.Values()
	if len(values) != 0 {
		t.Errorf("Expected empty values slice, got %v", values)
	}

	// Test when the linked list has multiple elements
	l.Append(1)
	l.Append(2)
	l.Append(3)
	assert.Equal(t, []int{1, 2, 3}, l.Values())
}

func TestString(t *testing.T) {
	assert.Equal(t, "", NewLinkedList[int]().String())
	assert.Equal(t, "7", build(7).String())
	assert.Equal(t, "1->2->3", build(1, 2, 3).String())
}

func TestClear(t *testing.T) {
	l := build(1, 2)
	l.Clear()

	if l.head != nil {
		t.Error("Expected head to be nil after Clear")
	}
	if l.Len() != 0 {
		t.Errorf("Expected size to be 0 after Clear, got %d", l.Len())
	}
	assert.True(t, l.IsEmpty())
	assert.Equal(t, "", l.String())
}

func TestRange(t *testing.T) {
	// Test when the linked list is empty
	l := NewLinkedList[int]()
	var count int
	l.Range(func(val int) {
		count++
	})
	if count != 0 {
		t.Errorf("Expected count to be 0 for empty linked list, got %d", count)
	}

	// Test when the linked list has multiple elements
	l = build(1, 2, 3)
	var sum int
	l.Range(func(val int) {
		sum += val
	})
	if sum != 6 {
		t.Errorf("Expected sum of values to be 6, got %d", sum)
	}
}

func TestLenMatchesLinks(t *testing.T) {
	l := NewLinkedList[int]()
	ops := []func(){
		func() { l.InsertHead(1) },
		func() { l.Append(2) },
		func() { l.Append(3) },
		func() { _, _ = l.DeleteHead() },
		func() { l.InsertHead(4) },
		func() { _, _ = l.Pop() },
		func() { _ = l.Remove(2) },
		func() { _ = l.Remove(100) },
		func() { _ = l.InsertAfter(4, 5) },
		func() { _, _ = l.Pop() },
		func() { _, _ = l.Pop() },
		func() { _, _ = l.Pop() },
		func() { _, _ = l.DeleteHead() },
	}
	for i, op := range ops {
		op()
		require.Equal(t, reachable(l), l.Len(), "after op %d", i)
	}
	assert.True(t, l.IsEmpty())
}
