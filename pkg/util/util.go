/*
Copyright (C) 2022-2024 ApeCloud Co., Ltd

This file is part of gemini-koordinaten project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package util

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"text/template"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/ed23x/gemini-koordinaten/pkg/types"
)

// CloseQuietly closes `io.Closer` quietly. Very handy and helpful for code
// quality too.
func CloseQuietly(d io.Closer) {
	_ = d.Close()
}

// GetCliHomeDir returns koordinaten home dir
func GetCliHomeDir() (string, error) {
	var cliHome string
	if custom := os.Getenv(types.CliHomeEnv); custom != "" {
		cliHome = custom
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		cliHome = filepath.Join(home, types.CliDefaultHome)
	}
	if _, err := os.Stat(cliHome); err != nil && os.IsNotExist(err) {
		if err = os.MkdirAll(cliHome, 0750); err != nil {
			return "", errors.Wrap(err, "error when create koordinaten home directory")
		}
	}
	return cliHome, nil
}

// GetCliLogDir returns koordinaten log dir
func GetCliLogDir() (string, error) {
	cliHome, err := GetCliHomeDir()
	if err != nil {
		return "", err
	}
	logDir := filepath.Join(cliHome, types.CliLogDir)
	if _, err := os.Stat(logDir); err != nil && os.IsNotExist(err) {
		if err = os.MkdirAll(logDir, 0750); err != nil {
			return "", errors.Wrap(err, "error when create koordinaten log directory")
		}
	}
	return logDir, nil
}

// GetCliLogFile returns the log file used while a full screen program runs.
func GetCliLogFile() (string, error) {
	logDir, err := GetCliLogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(logDir, types.CliLogFile), nil
}

type RetryOptions struct {
	MaxRetry int
	Delay    time.Duration
}

// DoWithRetry runs operation until it succeeds, MaxRetry retries are used up
// or ctx is done. Without a fixed Delay the wait doubles on every attempt.
// Errors marked with Permanent are returned without retrying.
func DoWithRetry(ctx context.Context, logger logr.Logger, operation func() error, options *RetryOptions) error {
	err := operation()
	for attempt := 0; err != nil && attempt < options.MaxRetry; attempt++ {
		if IsPermanent(err) {
			break
		}
		delay := time.Duration(int(math.Pow(2, float64(attempt)))) * time.Second
		if options.Delay != 0 {
			delay = options.Delay
		}
		logger.Info(fmt.Sprintf("Failed, retrying in %s ... (%d/%d). Error: %v", delay, attempt+1, options.MaxRetry, err))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return err
		}
		err = operation()
	}
	if p, ok := err.(*permanentError); ok {
		return p.err
	}
	return err
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent marks err so that DoWithRetry stops retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	_, ok := err.(*permanentError)
	return ok
}

func PrintGoTemplate(wr io.Writer, tpl string, values interface{}) error {
	tmpl, err := template.New("output").Parse(tpl)
	if err != nil {
		return err
	}

	err = tmpl.Execute(wr, values)
	if err != nil {
		return err
	}
	return nil
}

// IsWindows returns true if the koordinaten runtime situation is windows
func IsWindows() bool {
	return runtime.GOOS == types.GoosWindows
}
