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

package main

import (
	"fmt"
	"os"
	"time"

	"linkedds/cmd/subcmd"
	"linkedds/config"
	"linkedds/internal/logger"
	"linkedds/internal/utils"
	"linkedds/pkg/version"

	"github.com/urfave/cli/v2"
)

var (
	authors = []*cli.Author{
		{Name: "Vimiix", Email: "i@vimiix.com"},
	}
	copyright = func() string {
		yearRange := "2024"
		nowYear := time.Now().Year()
		if nowYear > 2024 {
			yearRange = fmt.Sprintf("2024-%d", nowYear)
		}
		return fmt.Sprintf("Copyright (C) %s Vimiix", yearRange)
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = version.Name
	app.Usage = "Linked list, queue and stack playground"
	app.Version = version.Version
	app.HideVersion = true // self control version flag to ensure help massage style is consistent
	app.Authors = authors
	app.Copyright = copyright()
	app.EnableBashCompletion = true
	app.UseShortOptionHandling = true
	app.HideHelp = true
	app.Suggest = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:               "help",
			Aliases:            []string{"?"},
			Usage:              "Show help information",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Aliases:            []string{"v"},
			Usage:              "Print the version",
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:    "log-level",
			EnvVars: []string{"LINKEDDS_LOG_LEVEL"},
			Usage:   "Log level: debug, info, warn, error or fatal",
		},
		&cli.BoolFlag{
			Name:               "silence",
			Aliases:            []string{"s"},
			Usage:              "Mute log output",
			DisableDefaultText: true,
		},
	}
	app.Commands = subcmd.GetSubCmds().Values()

	app.Before = func(c *cli.Context) error {
		if err := config.Init(); err != nil {
			logger.Warn("using default config: %v", err)
		}
		cfg := config.Get()
		if c.IsSet("log-level") {
			cfg.LogLevel = c.String("log-level")
		}
		if c.Bool("silence") {
			cfg.Silence = true
		}

		if cfg.Silence {
			logger.MuteLogger()
		} else {
			logger.SetLogLevelByString(cfg.LogLevel)
		}
		logger.Debug("config loaded from %s", config.DefaultLocation())
		return nil
	}

	app.Action = func(c *cli.Context) error {
		if c.Bool("version") {
			fmt.Fprintln(c.App.Writer, version.GetVersionDetail())
			return nil
		}
		return cli.ShowAppHelp(c)
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		utils.PrintError(err)
		os.Exit(1)
	}
}
