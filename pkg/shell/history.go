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
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"linkedds/config"
	"linkedds/internal/queue"
	"linkedds/internal/utils"

	"github.com/pkg/errors"
	"github.com/vimiix/pkg/file"
)

const MaxHistory = 1000

// History keeps the most recent input lines, oldest first. Once full, adding
// a line drops the oldest one.
type History struct {
	mu      *sync.Mutex
	path    string
	max     int
	records *queue.Queue[string]
}

// NewHistory loads up to n lines from path. A missing file is not an error.
func NewHistory(path string, n int) (*History, error) {
	if n <= 0 {
		n = MaxHistory
	}
	h := &History{
		mu:      &sync.Mutex{},
		path:    path,
		max:     n,
		records: queue.New[string](),
	}
	if err := h.loadRecords(); err != nil {
		return nil, errors.Wrapf(err, "load history: %s", path)
	}
	return h, nil
}

func historyFile() string {
	return filepath.Join(config.DefaultLocation(), "history")
}

func (h *History) Records() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records.Values()
}

func (h *History) loadRecords() error {
	if h.path == "" || !file.Exists(h.path) {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	f, err := os.Open(h.path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.add(scanner.Text())
	}
	return scanner.Err()
}

func (h *History) Add(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(s)
}

func (h *History) add(s string) {
	if utils.EmptyStr(s) {
		return
	}
	h.records.Enqueue(s)
	for h.records.Len() > h.max {
		_, _ = h.records.Dequeue()
	}
}

// Persist writes the records to the history file, replacing its content.
func (h *History) Persist() error {
	if h.path == "" {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := file.EnsureDirExists(h.path); err != nil {
		return err
	}
	f, err := os.Create(h.path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, s := range h.records.Values() {
		_, _ = w.WriteString(s + "\n")
	}
	return w.Flush()
}
