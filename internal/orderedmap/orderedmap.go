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

package orderedmap

import "linkedds/internal/linkedlist"

// OrderedMap is a map that remembers the order in which keys were first set.
type OrderedMap[K comparable, V any] struct {
	keys *linkedlist.LinkedList[K]
	m    map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]V),
		keys: linkedlist.NewLinkedList[K](),
	}
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys.Values()
}

// Values returns the values in key insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	rs := make([]V, 0, m.keys.Len())
	m.keys.Range(func(k K) {
		rs = append(rs, m.m[k])
	})
	return rs
}

func (m *OrderedMap[K, V]) Len() int {
	return m.keys.Len()
}

// Set sets the value for k. A key that already exists keeps its position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.m[k]; !ok {
		m.keys.Append(k)
	}
	m.m[k] = v
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Range calls f for each element in key insertion order.
func (m *OrderedMap[K, V]) Range(f func(k K, v V)) {
	m.keys.Range(func(k K) {
		f(k, m.m[k])
	})
}
