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
	"linkedds/config"
	"linkedds/pkg/shell"

	"github.com/urfave/cli/v2"
)

func newShellCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "shell"
	cmd.Usage = "Start an interactive shell over a list, a queue and a stack"
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Do not print the banner",
	})
	cmd.Action = func(c *cli.Context) error {
		if ok, err := showHelp(c); ok {
			return err
		}
		cfg := config.Get()
		if c.Bool("quiet") {
			cfg.LessChatty = true
		}
		sh, err := shell.New(cfg)
		if err != nil {
			return err
		}
		return sh.Run()
	}
	return cmd
}
