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

package config

import (
	"embed"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"linkedds/internal/utils"

	"github.com/fatih/color"
	syslocale "github.com/jeandeaual/go-locale"
	"github.com/pkg/errors"
	"github.com/vimiix/pkg/file"
	"github.com/xo/terminfo"
	"gopkg.in/ini.v1"
)

//go:embed defaultconfig.ini
var defaultConfigFile embed.FS

var (
	defaultConfig = newDefault()
	printConfig   = newPrintConfig("en-US")
)

const defaultPrompt = "$l/$q/$s> "

// Get returns the loaded configuration, or the defaults before Init.
func Get() *Config {
	return defaultConfig
}

// GetPrintConfig returns the tblfmt encoder parameters.
func GetPrintConfig() map[string]string {
	return printConfig
}

type Config struct {
	Prompt     string `ini:"prompt,omitempty"`
	LessChatty bool   `ini:"less_chatty,omitempty"`
	MaxHistory int    `ini:"max_history,omitempty"`
	LogLevel   string `ini:"log_level,omitempty"`
	Silence    bool   `ini:"silence,omitempty"`
	Separator  string `ini:"separator,omitempty"`

	// auto detected fields
	NoColor bool `ini:"-"`
}

// Sizes feeds the prompt macros.
type Sizes struct {
	List, Queue, Stack int
}

// LivePrompt expands the prompt macros against the sizes returned by f.
func (c *Config) LivePrompt(f func() Sizes) func() (string, bool) {
	return func() (string, bool) {
		p := c.Prompt
		if p == "" {
			p = defaultPrompt
		}
		sz := f()

		rs := []rune(p)
		var buf []byte
		for i := 0; i < len(rs); i++ {
			if rs[i] != '$' || i+1 >= len(rs) {
				buf = append(buf, string(rs[i])...)
				continue
			}

			i++
			switch rs[i] {
			case '$':
				buf = append(buf, '$')
			case 'l':
				buf = strconv.AppendInt(buf, int64(sz.List), 10)
			case 'q':
				buf = strconv.AppendInt(buf, int64(sz.Queue), 10)
			case 's':
				buf = strconv.AppendInt(buf, int64(sz.Stack), 10)
			default:
			}
		}
		return string(buf), true
	}
}

// Init loads the config file, writing the defaults there first if missing.
func Init() error {
	return Load(filepath.Join(DefaultLocation(), "config"))
}

// Load reads the config at path, creating it from the defaults if missing.
func Load(path string) error {
	cfg := newDefault()
	if err := writeDefaultConfig(path, false); err != nil {
		return errors.Wrapf(err, "write default config: %s", path)
	}
	if err := ini.MapTo(cfg, path); err != nil {
		return errors.Wrapf(err, "load config: %s", path)
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 1000
	}
	defaultConfig = cfg
	color.NoColor = color.NoColor || cfg.NoColor

	locale := "en-US"
	if s, err := syslocale.GetLocale(); err == nil && s != "" {
		locale = s
	}
	printConfig = newPrintConfig(locale)
	return nil
}

func newPrintConfig(locale string) map[string]string {
	return map[string]string{
		"border":    "1",
		"format":    "aligned",
		"linestyle": "ascii",
		"locale":    locale,
		"null":      "",
		"footer":    "on",
		"title":     "",
	}
}

func newDefault() *Config {
	noColor := false
	if s, ok := utils.Getenv("NO_COLOR"); ok {
		noColor = s != "0" && s != "false" && s != "off"
	}
	if colorLevel, err := terminfo.ColorLevelFromEnv(); err != nil || colorLevel < terminfo.ColorLevelBasic {
		noColor = true
	}
	return &Config{
		Prompt:     defaultPrompt,
		MaxHistory: 1000,
		LogLevel:   "info",
		Separator:  "->",
		NoColor:    noColor,
	}
}

// DefaultLocation returns the directory holding the config and history
// files: $XDG_CONFIG_HOME/linkedds/ if set, %USERPROFILE%\AppData\Local\linkedds\
// on Windows and ~/.config/linkedds/ otherwise.
func DefaultLocation() string {
	if os.Getenv("XDG_CONFIG_HOME") != "" {
		return filepath.Join(file.ExpandHomePath(os.Getenv("XDG_CONFIG_HOME")), "linkedds")
	}
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE") + "\\AppData\\Local\\linkedds\\"
	}
	return file.ExpandHomePath("~/.config/linkedds/")
}

func writeDefaultConfig(dest string, overwrite bool) error {
	dest = file.ExpandHomePath(dest)
	if !overwrite && file.Exists(dest) {
		return nil
	}

	if err := file.EnsureDirExists(dest); err != nil {
		return err
	}

	src, err := defaultConfigFile.Open("defaultconfig.ini")
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
