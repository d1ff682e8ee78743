//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Command gottx is a modal terminal text editor with an embedded golisp
// scripting runtime. Grounded on gott.go's main event loop (open the
// terminal, build an editor/commander, read an optional file, loop on
// render/poll/dispatch until ModeQuit), generalized to wire the
// cobra-based CLI, config loading, structured logging, the script
// bridge, and config-file live reload this repo's ambient stack adds.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gottx/gottx/internal/buffer"
	"github.com/gottx/gottx/internal/commander"
	"github.com/gottx/gottx/internal/config"
	"github.com/gottx/gottx/internal/editor"
	"github.com/gottx/gottx/internal/logging"
	"github.com/gottx/gottx/internal/render"
	"github.com/gottx/gottx/internal/script"
	"github.com/gottx/gottx/internal/syntax"
	"github.com/gottx/gottx/internal/terminal"
)

var (
	configFlag string
	debugFlag  bool
	evalFlag   string
)

func main() {
	root := &cobra.Command{
		Use:   "gottx [file]",
		Short: "a modal terminal text editor with an embedded scripting runtime",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().StringVar(&configFlag, "config", "", "path to a YAML config file (default: .gotxrc.yaml, then ~/.config/gotx/config.yaml)")
	root.Flags().BoolVar(&debugFlag, "debug", false, "log at debug level (use the :debug on command to echo decoded input events to the message bar)")
	root.Flags().StringVar(&evalFlag, "eval", "", "evaluate a lisp expression against the opened file and exit, instead of starting the editor")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logPath := filepath.Join(os.Getenv("HOME"), ".gottxlog")
	log, closeLog, err := logging.New(logPath, debugFlag)
	if err != nil {
		return err
	}
	defer closeLog()

	configPath := configFlag
	if configPath == "" {
		configPath = config.ResolvePath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Warnf("config: %v", err)
	}

	reg := syntax.NewRegistry()
	reg.Register(syntax.NewGoDefinition())
	reg.Register(syntax.NewPlainDefinition())

	renderer := render.NewRenderer()
	if cfg.ShowLineNumbers {
		renderer.Gutter = lineNumberGutter
	}

	e := editor.New(reg, renderer, log)
	e.UndoHistoryBound = cfg.UndoHistoryBound
	// The commander and the script bridge depend on each other (the
	// bridge needs a types.Commander, the commander needs an
	// Evaluator), so the commander is built first with no evaluator and
	// wired up once the bridge exists.
	c := commander.New(e, nil)
	bridge := script.NewBridge(e, c, c.Keymap(), log)
	c.SetEvaluator(bridge)

	if len(args) > 0 {
		if err := e.ReadFile(args[0]); err != nil {
			log.Warnf("reading %s: %v", args[0], err)
		}
	}

	if evalFlag != "" {
		result := bridge.Eval(evalFlag)
		fmt.Println(result)
		return nil
	}

	if cfg.InitScript != "" {
		bridge.EvalFile(cfg.InitScript)
	}

	watcher, err := config.NewWatcher(configPath, cfg.InitScript, log)
	if err != nil {
		log.Warnf("config watcher: %v", err)
	} else {
		defer watcher.Close()
	}

	display := terminal.New()
	if display == nil {
		return fmt.Errorf("could not open the terminal")
	}
	defer display.Close()

	for c.IsRunning() {
		display.Render(e, c)

		if watcher != nil {
			select {
			case <-watcher.Reload:
				if cfg.InitScript != "" {
					bridge.EvalFile(cfg.InitScript)
				}
				if reloaded, err := config.Load(configPath); err == nil {
					cfg = reloaded
				}
			default:
			}
		}

		event := display.GetNextEvent()
		if err := c.ProcessEvent(event); err != nil {
			log.Warnf("processing event: %v", err)
		}
	}
	return nil
}

func lineNumberGutter(b *buffer.Buffer, row int) string {
	return fmt.Sprintf("%3d ", row+1)
}
