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

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vimiix/go-prompt"
)

func texts(ss []prompt.Suggest) []string {
	rs := make([]string, 0, len(ss))
	for _, s := range ss {
		rs = append(rs, s.Text)
	}
	return rs
}

func TestComplete(t *testing.T) {
	s := NewSession("")
	c := &Completer{session: s}

	assert.Nil(t, c.complete(""))
	assert.Equal(t, []string{"list"}, texts(c.complete("li")))
	assert.ElementsMatch(t, []string{"quit", "queue"}, texts(c.complete("qu")))
	assert.Equal(t, []string{"insert_head", "insert_after"}, texts(c.complete("list ins")))
	assert.Equal(t, []string{"push", "pop", "peek"}, texts(c.complete("stack p")))
	assert.Nil(t, c.complete("heap p"))

	run(t, s, "list append beta", "list append alpha", "list append beta")
	assert.Equal(t, []string{"alpha", "beta"}, texts(c.complete("list remove ")))
	assert.Equal(t, []string{"beta"}, texts(c.complete("list search b")))
	assert.Nil(t, c.complete("list append b"))
	assert.Nil(t, c.complete("queue enqueue b"))
}
