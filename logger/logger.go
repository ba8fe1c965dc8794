// seehuhn.de/go/layers - remove optional content from PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger defines the logging hook used by the layer remover.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// LogLevel represents log severity.
type LogLevel string

// These are the supported log levels.
const (
	DebugLevel LogLevel = "debug"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels.
// The keyvals are alternating keys and values.
type LogFunc func(level LogLevel, msg string, keyvals ...any)

// Nop is a LogFunc which discards all messages.
func Nop(LogLevel, string, ...any) {}

// Debug logs a message at debug level.
// Calling Debug on a nil LogFunc does nothing.
func (f LogFunc) Debug(msg string, keyvals ...any) {
	if f != nil {
		f(DebugLevel, msg, keyvals...)
	}
}

// Error logs a message at error level.
// Calling Error on a nil LogFunc does nothing.
func (f LogFunc) Error(msg string, keyvals ...any) {
	if f != nil {
		f(ErrorLevel, msg, keyvals...)
	}
}

// Writer returns a LogFunc which writes one line per message to w, in the
// form "level msg key=value ...".  Messages below minLevel are discarded.
// The returned function can be called concurrently.
func Writer(w io.Writer, minLevel LogLevel) LogFunc {
	var mu sync.Mutex
	return func(level LogLevel, msg string, keyvals ...any) {
		if minLevel == ErrorLevel && level == DebugLevel {
			return
		}

		b := &strings.Builder{}
		b.WriteString(string(level))
		b.WriteByte(' ')
		b.WriteString(msg)
		for i := 0; i < len(keyvals); i += 2 {
			if i+1 < len(keyvals) {
				fmt.Fprintf(b, " %v=%v", keyvals[i], keyvals[i+1])
			} else {
				fmt.Fprintf(b, " %v=(missing)", keyvals[i])
			}
		}
		b.WriteByte('\n')

		mu.Lock()
		defer mu.Unlock()
		io.WriteString(w, b.String())
	}
}
