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

// Package demo replays sample operation sequences on each container and
// prints the state after every step.
package demo

import (
	"fmt"
	"io"
	"strings"

	"linkedds/internal/linkedlist"
	"linkedds/internal/queue"
	"linkedds/internal/stack"
	"linkedds/internal/utils"

	"github.com/fatih/color"
)

// Runner is a named demo routine.
type Runner func(w io.Writer)

// Runners lists the demos in the order All runs them.
var Runners = []struct {
	Name string
	Run  Runner
}{
	{"list", List},
	{"queue", Queue},
	{"stack", Stack},
}

// Lookup returns the demo called name.
func Lookup(name string) (Runner, bool) {
	for _, r := range Runners {
		if r.Name == name {
			return r.Run, true
		}
	}
	return nil, false
}

// All runs every demo.
func All(w io.Writer) {
	for i, r := range Runners {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.Run(w)
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, color.CyanString(title))
}

func printErr(w io.Writer, err error) {
	fmt.Fprintln(w, color.RedString("error: %v", err))
}

func List(w io.Writer) {
	l := linkedlist.NewLinkedList[int]()

	l.InsertHead(10)
	l.InsertHead(20)
	l.InsertHead(30)
	section(w, "LinkedList after inserting at the head:")
	fmt.Fprintln(w, l)

	l.Append(40)
	l.Append(50)
	section(w, "LinkedList after appending nodes:")
	fmt.Fprintln(w, l)

	section(w, "LinkedList after inserting 25 after 20:")
	if err := l.InsertAfter(20, 25); err != nil {
		printErr(w, err)
	}
	fmt.Fprintln(w, l)

	section(w, "Search for value 25:")
	if pos, err := l.Search(25); err != nil {
		printErr(w, err)
	} else {
		fmt.Fprintln(w, pos)
	}

	section(w, "LinkedList after removing node with value 10:")
	if err := l.Remove(10); err != nil {
		printErr(w, err)
	}
	fmt.Fprintln(w, l)

	section(w, "LinkedList after deleting the head node:")
	if _, err := l.DeleteHead(); err != nil {
		printErr(w, err)
	}
	fmt.Fprintln(w, l)

	section(w, "LinkedList after popping the last node:")
	if _, err := l.Pop(); err != nil {
		printErr(w, err)
	}
	fmt.Fprintln(w, l)

	section(w, "Data at index 1:")
	if v, err := l.Get(1); err != nil {
		printErr(w, err)
	} else {
		fmt.Fprintln(w, v)
	}

	l.Clear()
	section(w, "LinkedList after clearing:")
	fmt.Fprintln(w, l)
}

func Queue(w io.Writer) {
	q := queue.New[int]()
	traverse := func() {
		vals := q.Values()
		ss := make([]string, len(vals))
		for i, v := range vals {
			ss[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(w, strings.Join(ss, " "))
	}

	q.Enqueue(10)
	q.Enqueue(20)
	q.Enqueue(30)
	section(w, "Queue after enqueueing elements:")
	traverse()

	section(w, "Front item:")
	printValue(w, q.Front)
	section(w, "Rear item:")
	printValue(w, q.Rear)

	section(w, "Dequeued element:")
	printValue(w, q.Dequeue)
	section(w, "Queue after dequeuing one element:")
	traverse()

	section(w, "Is the queue empty?")
	fmt.Fprintln(w, q.IsEmpty())

	for !q.IsEmpty() {
		if _, err := q.Dequeue(); err != nil {
			printErr(w, err)
			break
		}
	}
	section(w, "Queue after clearing all elements:")
	traverse()

	section(w, "Is the queue empty?")
	fmt.Fprintln(w, q.IsEmpty())
}

func Stack(w io.Writer) {
	s := stack.New[int]()
	traverse := func() {
		for _, v := range s.Values() {
			fmt.Fprintln(w, v)
		}
	}

	s.Push(10)
	s.Push(20)
	s.Push(30)
	section(w, "Stack after pushing elements:")
	traverse()

	section(w, "Top element:")
	printValue(w, s.Peek)

	section(w, "Popped element:")
	printValue(w, s.Pop)
	section(w, "Stack after popping one element:")
	traverse()

	section(w, "Size of the stack:")
	fmt.Fprintln(w, s.Size())

	section(w, "Reversing string 'Jayesh':")
	fmt.Fprintln(w, utils.Reverse("Jayesh"))
}

func printValue[T any](w io.Writer, f func() (T, error)) {
	v, err := f()
	if err != nil {
		printErr(w, err)
		return
	}
	fmt.Fprintln(w, v)
}
