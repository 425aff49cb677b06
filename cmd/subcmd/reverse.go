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

package subcmd

import (
	"fmt"
	"strings"

	"linkedds/internal/utils"

	"github.com/urfave/cli/v2"
)

func newReverseCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "reverse"
	cmd.Usage = "Reverse text by pushing it through a stack"
	cmd.ArgsUsage = "<text>"
	cmd.Action = func(c *cli.Context) error {
		if ok, err := showHelp(c); ok {
			return err
		}
		if c.NArg() == 0 {
			return fmt.Errorf("missing text to reverse")
		}
		fmt.Fprintln(c.App.Writer, utils.Reverse(strings.Join(c.Args().Slice(), " ")))
		return nil
	}
	return cmd
}
