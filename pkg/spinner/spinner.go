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

package spinner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/ed23x/gemini-koordinaten/pkg/printer"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

type Interface interface {
	Start()
	Done(status string)
	Success()
	Fail()
	SetMessage(msg string)
	SetFinalMsg(msg string)
}

type Spinner struct {
	s *spinner.Spinner
	w io.Writer
	// delay is the spinner refresh interval
	delay time.Duration
}

type Option func(Interface)

func WithMessage(msg string) Option {
	return func(s Interface) {
		s.SetMessage(msg)
	}
}

// New returns a started spinner writing to w. Windows terminals get a
// plain character set.
func New(w io.Writer, opts ...Option) Interface {
	res := &Spinner{w: w, delay: 100 * time.Millisecond}
	chars := spinner.CharSets[11]
	if util.IsWindows() {
		chars = []string{"|", "/", "-", "\\"}
	}
	res.s = spinner.New(chars, res.delay, spinner.WithWriter(w))
	_ = res.s.Color("cyan")
	for _, opt := range opts {
		opt(res)
	}
	res.Start()
	return res
}

func (s *Spinner) Start() {
	s.s.Start()
}

func (s *Spinner) SetMessage(msg string) {
	s.s.Lock()
	s.s.Suffix = " " + msg
	s.s.Unlock()
}

func (s *Spinner) SetFinalMsg(msg string) {
	s.s.Lock()
	s.s.FinalMSG = msg
	s.s.Unlock()
}

// Done stops the spinner and prints the message followed by status.
// The spinner does not animate when w is not a terminal, the final
// message is printed anyway.
func (s *Spinner) Done(status string) {
	if s.s.FinalMSG == "" && status != "" {
		s.SetFinalMsg(fmt.Sprintf("%s %s\n", strings.TrimSpace(s.s.Suffix), status))
	}
	if !s.s.Active() {
		fmt.Fprint(s.w, s.s.FinalMSG)
		return
	}
	s.s.Stop()
}

func (s *Spinner) Success() {
	s.Done(printer.BoldGreen("OK"))
}

func (s *Spinner) Fail() {
	s.Done(printer.BoldRed("FAIL"))
}
