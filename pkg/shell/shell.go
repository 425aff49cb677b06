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
	"io"
	"os"
	"strings"

	"linkedds/config"
	"linkedds/internal/logger"
	"linkedds/pkg/version"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/vimiix/go-prompt"
)

var dummyExecutor = func(string) {}

// Shell reads commands from an interactive prompt and runs them against a
// Session.
type Shell struct {
	cfg     *config.Config
	session *Session
	history *History
	prompt  *prompt.Prompt
	out     io.Writer
}

func New(cfg *config.Config) (*Shell, error) {
	history, err := NewHistory(historyFile(), cfg.MaxHistory)
	if err != nil {
		return nil, err
	}
	s := &Shell{
		cfg:     cfg,
		session: NewSession(cfg.Separator),
		history: history,
		out:     os.Stdout,
	}

	cc := &Completer{session: s.session}
	s.prompt = prompt.New(dummyExecutor,
		cc.Complete(),
		prompt.OptionTitle(version.Name),
		prompt.OptionHistory(history.Records()),
		prompt.OptionInputTextColor(prompt.Yellow),
		prompt.OptionLivePrefix(cfg.LivePrompt(s.session.Sizes)),
	)
	return s, nil
}

// Run is the interactive loop. It returns when the user quits.
func (s *Shell) Run() error {
	defer func() {
		if err := s.history.Persist(); err != nil {
			logger.Warn("persist history: %v", err)
		}
	}()

	if !s.cfg.LessChatty {
		fmt.Fprintf(s.out, "%s\n", version.Short())
		fmt.Fprintln(s.out, `Type "help" for more information.`)
		fmt.Fprintln(s.out)
	}

	for {
		in, err := s.prompt.Input()
		if err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				return nil
			}
			return err
		}
		s.history.Add(in)

		if s.handle(in) {
			return nil
		}
	}
}

// handle runs one line and prints its outcome. It reports whether the
// shell should stop.
func (s *Shell) handle(in string) bool {
	res, err := s.session.Exec(in)
	if err != nil {
		fmt.Fprintln(s.out, color.RedString("error: %v", err))
		return false
	}
	if res.Output != "" {
		fmt.Fprintln(s.out, strings.TrimRight(res.Output, "\n"))
	}
	return res.Quit
}
