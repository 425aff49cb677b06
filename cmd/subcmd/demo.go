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

	"linkedds/pkg/demo"

	"github.com/urfave/cli/v2"
)

func newDemoCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "demo"
	cmd.Usage = "Run the sample operations of a container"
	cmd.ArgsUsage = "[list|queue|stack]"
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "List available demos",
	})
	cmd.Action = func(c *cli.Context) error {
		if ok, err := showHelp(c); ok {
			return err
		}
		w := c.App.Writer
		if c.Bool("list") {
			for _, r := range demo.Runners {
				PrintCommand(w, r.Name, fmt.Sprintf("%s demo", r.Name))
			}
			return nil
		}
		if c.NArg() == 0 {
			demo.All(w)
			return nil
		}
		for i, name := range c.Args().Slice() {
			run, ok := demo.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown demo: %q", name)
			}
			if i > 0 {
				fmt.Fprintln(w)
			}
			run(w)
		}
		return nil
	}
	return cmd
}
