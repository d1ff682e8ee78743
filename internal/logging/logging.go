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

// Package logging constructs the editor process's single zap logger. The
// terminal is the editor's display, so nothing may write to stdout/stderr
// while the program is running; in normal (non-debug) operation the
// logger is configured at Warn level and above, writing to a file rather
// than the terminal.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide sugared logger and returns it along with a
// flush function the caller should defer. logPath is the file the logger
// writes to; debug lowers the level to Debug (set by --debug, see
// cmd/gottx) and writes entries to logPath in zap's human readable
// console encoding rather than JSON.
func New(logPath string, debug bool) (*zap.SugaredLogger, func(), error) {
	level := zapcore.WarnLevel
	encoding := "json"
	if debug {
		level = zapcore.DebugLevel
		encoding = "console"
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      debug,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}
