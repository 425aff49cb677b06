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
	"sort"
	"strings"

	"github.com/vimiix/go-prompt"
)

var topLevel = []prompt.Suggest{
	{Text: "help", Description: "Show available commands"},
	{Text: "quit", Description: "Leave the shell"},
	{Text: "reverse", Description: "Reverse text through a stack"},
}

type Completer struct {
	session *Session
}

func (c *Completer) Complete() prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		return c.complete(d.TextBeforeCursor())
	}
}

func (c *Completer) complete(before string) []prompt.Suggest {
	if strings.TrimSpace(before) == "" {
		return nil
	}
	words := strings.Fields(before)
	// the cursor sits right after a space: the next word is still empty
	if strings.HasSuffix(before, " ") {
		words = append(words, "")
	}

	switch len(words) {
	case 1:
		rs := make([]prompt.Suggest, 0, c.session.groups.Len()+len(topLevel))
		c.session.groups.Range(func(name string, g *group) {
			rs = append(rs, prompt.Suggest{Text: name, Description: strings.Join(g.Keys(), " ")})
		})
		rs = append(rs, topLevel...)
		return prompt.FilterHasPrefix(rs, words[0], true)
	case 2:
		g, ok := c.session.groups.Get(words[0])
		if !ok {
			return nil
		}
		rs := make([]prompt.Suggest, 0, g.Len())
		g.Range(func(name string, a *action) {
			rs = append(rs, prompt.Suggest{Text: name, Description: a.usage})
		})
		return prompt.FilterHasPrefix(rs, words[1], true)
	case 3:
		return c.completeValues(words[0], words[1], words[2])
	}
	return nil
}

// completeValues suggests values already stored in the list for commands
// that look one up.
func (c *Completer) completeValues(grp, cmd, prefix string) []prompt.Suggest {
	if grp != "list" {
		return nil
	}
	switch cmd {
	case "remove", "search", "insert_after":
	default:
		return nil
	}
	seen := make(map[string]struct{})
	rs := make([]prompt.Suggest, 0)
	c.session.list.Range(func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		rs = append(rs, prompt.Suggest{Text: v})
	})
	sort.Slice(rs, func(i, j int) bool { return rs[i].Text < rs[j].Text })
	return prompt.FilterHasPrefix(rs, prefix, false)
}
