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
	"fmt"
	"strconv"
	"strings"

	"linkedds/config"
	"linkedds/internal/errdef"
	"linkedds/internal/linkedlist"
	"linkedds/internal/logger"
	"linkedds/internal/orderedmap"
	"linkedds/internal/queue"
	"linkedds/internal/stack"
	"linkedds/internal/utils"

	"github.com/pkg/errors"
)

// Result is the outcome of one shell line.
type Result struct {
	Output string
	Quit   bool
}

type action struct {
	usage string
	nargs int
	run   func(args []string) (string, error)
}

type group = orderedmap.OrderedMap[string, *action]

// Session holds one list, one queue and one stack of strings and applies
// shell commands to them.
type Session struct {
	list  *linkedlist.LinkedList[string]
	queue *queue.Queue[string]
	stack *stack.Stack[string]
	sep   string

	groups *orderedmap.OrderedMap[string, *group]
}

func NewSession(sep string) *Session {
	if sep == "" {
		sep = "->"
	}
	s := &Session{
		list:   linkedlist.NewLinkedList[string](),
		queue:  queue.New[string](),
		stack:  stack.New[string](),
		sep:    sep,
		groups: orderedmap.NewOrderedMap[string, *group](),
	}
	s.groups.Set("list", s.listCommands())
	s.groups.Set("queue", s.queueCommands())
	s.groups.Set("stack", s.stackCommands())
	return s
}

// Sizes returns the current length of each container.
func (s *Session) Sizes() config.Sizes {
	return config.Sizes{List: s.list.Len(), Queue: s.queue.Len(), Stack: s.stack.Size()}
}

// Exec runs a single line of input.
func (s *Session) Exec(line string) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, nil
	}
	logger.Debug("exec: %s", strings.Join(fields, " "))

	switch fields[0] {
	case "quit", "exit", `\q`:
		return Result{Quit: true}, nil
	case "help", `\?`:
		return Result{Output: s.help()}, nil
	case "reverse":
		if len(fields) < 2 {
			return Result{}, errors.Wrap(errdef.ErrWrongNumberOfArguments, "reverse <text>")
		}
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "reverse"))
		return Result{Output: utils.Reverse(text)}, nil
	}

	g, ok := s.groups.Get(fields[0])
	if !ok {
		return Result{}, errors.Wrapf(errdef.ErrUnknownCommand, "%q", fields[0])
	}
	if len(fields) < 2 {
		return Result{}, errors.Wrapf(errdef.ErrWrongNumberOfArguments, "%s <%s>", fields[0], strings.Join(g.Keys(), "|"))
	}
	act, ok := g.Get(fields[1])
	if !ok {
		return Result{}, errors.Wrapf(errdef.ErrUnknownCommand, "%s %q", fields[0], fields[1])
	}
	args := fields[2:]
	if len(args) != act.nargs {
		return Result{}, errors.Wrapf(errdef.ErrWrongNumberOfArguments, "%s %s", fields[0], act.usage)
	}
	out, err := act.run(args)
	if err != nil {
		return Result{}, err
	}
	return Result{Output: out}, nil
}

func (s *Session) join(vals []string) string {
	return strings.Join(vals, s.sep)
}

func (s *Session) listCommands() *group {
	l := s.list
	show := func() (string, error) { return s.join(l.Values()), nil }
	g := orderedmap.NewOrderedMap[string, *action]()
	g.Set("insert_head", &action{"insert_head <value>", 1, func(a []string) (string, error) {
		l.InsertHead(a[0])
		return show()
	}})
	g.Set("append", &action{"append <value>", 1, func(a []string) (string, error) {
		l.Append(a[0])
		return show()
	}})
	g.Set("insert_after", &action{"insert_after <anchor> <value>", 2, func(a []string) (string, error) {
		if err := l.InsertAfter(a[0], a[1]); err != nil {
			return "", err
		}
		return show()
	}})
	g.Set("remove", &action{"remove <value>", 1, func(a []string) (string, error) {
		if err := l.Remove(a[0]); err != nil {
			return "", err
		}
		return show()
	}})
	g.Set("delete_head", &action{"delete_head", 0, func([]string) (string, error) {
		return l.DeleteHead()
	}})
	g.Set("pop", &action{"pop", 0, func([]string) (string, error) {
		return l.Pop()
	}})
	g.Set("search", &action{"search <value>", 1, func(a []string) (string, error) {
		i, err := l.Search(a[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(i), nil
	}})
	g.Set("get", &action{"get <index>", 1, func(a []string) (string, error) {
		i, err := strconv.Atoi(a[0])
		if err != nil {
			return "", errors.Wrapf(errdef.ErrInvalidArgument, "index %q", a[0])
		}
		return l.Get(i)
	}})
	g.Set("len", &action{"len", 0, func([]string) (string, error) {
		return strconv.Itoa(l.Len()), nil
	}})
	g.Set("show", &action{"show", 0, func([]string) (string, error) {
		return renderTable("list", l.Values())
	}})
	g.Set("clear", &action{"clear", 0, func([]string) (string, error) {
		l.Clear()
		return "", nil
	}})
	return g
}

func (s *Session) queueCommands() *group {
	q := s.queue
	g := orderedmap.NewOrderedMap[string, *action]()
	g.Set("enqueue", &action{"enqueue <value>", 1, func(a []string) (string, error) {
		q.Enqueue(a[0])
		return s.join(q.Values()), nil
	}})
	g.Set("dequeue", &action{"dequeue", 0, func([]string) (string, error) {
		return q.Dequeue()
	}})
	g.Set("front", &action{"front", 0, func([]string) (string, error) {
		return q.Front()
	}})
	g.Set("rear", &action{"rear", 0, func([]string) (string, error) {
		return q.Rear()
	}})
	g.Set("empty", &action{"empty", 0, func([]string) (string, error) {
		return strconv.FormatBool(q.IsEmpty()), nil
	}})
	g.Set("len", &action{"len", 0, func([]string) (string, error) {
		return strconv.Itoa(q.Len()), nil
	}})
	g.Set("show", &action{"show", 0, func([]string) (string, error) {
		return renderTable("queue", q.Values())
	}})
	g.Set("clear", &action{"clear", 0, func([]string) (string, error) {
		q.Clear()
		return "", nil
	}})
	return g
}

func (s *Session) stackCommands() *group {
	st := s.stack
	g := orderedmap.NewOrderedMap[string, *action]()
	g.Set("push", &action{"push <value>", 1, func(a []string) (string, error) {
		st.Push(a[0])
		return s.join(st.Values()), nil
	}})
	g.Set("pop", &action{"pop", 0, func([]string) (string, error) {
		return st.Pop()
	}})
	g.Set("peek", &action{"peek", 0, func([]string) (string, error) {
		return st.Peek()
	}})
	g.Set("size", &action{"size", 0, func([]string) (string, error) {
		return strconv.Itoa(st.Size()), nil
	}})
	g.Set("empty", &action{"empty", 0, func([]string) (string, error) {
		return strconv.FormatBool(st.IsEmpty()), nil
	}})
	g.Set("show", &action{"show", 0, func([]string) (string, error) {
		return renderTable("stack", st.Values())
	}})
	g.Set("clear", &action{"clear", 0, func([]string) (string, error) {
		st.Clear()
		return "", nil
	}})
	return g
}

func (s *Session) help() string {
	var sb strings.Builder
	s.groups.Range(func(name string, g *group) {
		fmt.Fprintf(&sb, "%s:\n", name)
		usages := make([]string, 0, g.Len())
		g.Range(func(_ string, a *action) {
			usages = append(usages, a.usage)
		})
		for _, row := range utils.Chunks(usages) {
			fmt.Fprintf(&sb, "  %s\n", strings.Join(row, "  "))
		}
	})
	sb.WriteString("reverse <text>\nhelp\nquit | exit\n")
	return sb.String()
}
