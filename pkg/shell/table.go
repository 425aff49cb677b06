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
	"bytes"
	"strconv"

	"linkedds/config"

	"github.com/pkg/errors"
	"github.com/xo/tblfmt"
)

// valueSet exposes a snapshot of container values as a tblfmt.ResultSet
// with an index column and a value column.
type valueSet struct {
	vals []string
	pos  int
	done bool
}

var _ tblfmt.ResultSet = (*valueSet)(nil)

func newValueSet(vals []string) *valueSet {
	return &valueSet{vals: vals, pos: -1}
}

func (v *valueSet) Columns() ([]string, error) {
	return []string{"#", "value"}, nil
}

func (v *valueSet) Next() bool {
	if v.done {
		return false
	}
	v.pos++
	return v.pos < len(v.vals)
}

func (v *valueSet) Scan(dest ...interface{}) error {
	if v.pos < 0 || v.pos >= len(v.vals) {
		return errors.New("scan called without a current row")
	}
	if len(dest) != 2 {
		return errors.Errorf("expected 2 destinations, got %d", len(dest))
	}
	row := [2]string{strconv.Itoa(v.pos), v.vals[v.pos]}
	for i, d := range dest {
		switch p := d.(type) {
		case *interface{}:
			*p = row[i]
		case *string:
			*p = row[i]
		case *[]byte:
			*p = []byte(row[i])
		default:
			return errors.Errorf("unsupported scan destination %T", d)
		}
	}
	return nil
}

func (v *valueSet) Err() error {
	return nil
}

func (v *valueSet) Close() error {
	v.done = true
	return nil
}

func (v *valueSet) NextResultSet() bool {
	return false
}

// renderTable formats vals as a table titled with name.
func renderTable(name string, vals []string) (string, error) {
	if len(vals) == 0 {
		return name + " (empty)", nil
	}
	params := make(map[string]string)
	for k, v := range config.GetPrintConfig() {
		params[k] = v
	}
	params["title"] = name

	var buf bytes.Buffer
	if err := tblfmt.EncodeAll(&buf, newValueSet(vals), params); err != nil {
		return "", errors.Wrapf(err, "render %s", name)
	}
	return buf.String(), nil
}
