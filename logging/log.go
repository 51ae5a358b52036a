/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each package to a single call.
// GetLog returns a named, preconfigured Logger instance; callers across the
// engine share the same stdout backend and format but are distinguished by
// name in the log output.
package logging

import (
	stdlog "log"
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/frankkopp/forkedge/config"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

var (
	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}
)

// GetLog returns the named logger, creating and configuring it on first use.
// The level is read from config.Settings.Log.Level; search and test loggers
// may be reconfigured independently by writing to that struct before first use.
func GetLog(name string) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.Settings.Log.Level), "")
	l.SetBackend(leveled)
	loggers[name] = l
	return l
}
