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
	"testing"

	"linkedds/internal/errdef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	s := New[int]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, errdef.ErrEmpty)

	for _, v := range []int{10, 20, 30} {
		s.Push(v)
	}
	assert.Equal(t, []int{30, 20, 10}, s.Values())

	var out []int
	for !s.IsEmpty() {
		v, err := s.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	assert.Equal(t, []int{30, 20, 10}, out)
	assert.Nil(t, s.top)
}

func TestPushPopRestores(t *testing.T) {
	s := New[string]()
	s.Push("a")
	s.Push("b")
	before := s.Values()

	s.Push("c")
	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	assert.Equal(t, before, s.Values())
	assert.Equal(t, 2, s.Size())
}

func TestPeek(t *testing.T) {
	s := New[int]()
	_, err := s.Peek()
	assert.ErrorIs(t, err, errdef.ErrEmpty)

	s.Push(1)
	s.Push(2)
	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, s.Size(), "peek must not pop")
}

func TestSize(t *testing.T) {
	s := New[int]()
	assert.Equal(t, 0, s.Size())
	for i := 1; i <= 5; i++ {
		s.Push(i)
		assert.Equal(t, i, s.Size())
	}
	_, _ = s.Pop()
	assert.Equal(t, 4, s.Size())
}

func TestClear(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.Values())
}
