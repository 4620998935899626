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

package prompt

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

var errEmpty = errors.New("value must not be empty")

// NewPrompt creates a prompt reading from in.
func NewPrompt(label string, validate promptui.ValidateFunc, in io.Reader) *promptui.Prompt {
	p := &promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	if in != nil {
		p.Stdin = io.NopCloser(in)
	}
	return p
}

// NewSecretPrompt creates a prompt that masks the typed characters.
func NewSecretPrompt(label string, in io.Reader) *promptui.Prompt {
	p := NewPrompt(label, NotEmpty, in)
	p.Mask = '*'
	return p
}

// NotEmpty rejects blank input.
func NotEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errEmpty
	}
	return nil
}

// Confirm asks the user to type "y" and fails otherwise.
func Confirm(label string, in io.Reader) error {
	_, err := NewPrompt(label, func(input string) error {
		if strings.ToLower(strings.TrimSpace(input)) != "y" {
			return errors.New("type y to confirm")
		}
		return nil
	}, in).Run()
	if err != nil {
		return errors.New("aborted")
	}
	return nil
}
