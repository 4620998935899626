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

package printer

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Format is a type for capturing supported output formats
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// Formats returns all supported output formats.
func Formats() []string {
	return []string{Table.String(), JSON.String(), YAML.String()}
}

func (f Format) String() string {
	return string(f)
}

func (f Format) IsHumanReadable() bool {
	return f == Table
}

// ParseFormat takes a string and returns a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case Table:
		return Table, nil
	case JSON:
		return JSON, nil
	case YAML:
		return YAML, nil
	}
	return "", fmt.Errorf("invalid output format %q, supported formats: %s", s, strings.Join(Formats(), ", "))
}

type outputValue Format

func newOutputValue(defaultValue Format, p *Format) *outputValue {
	*p = defaultValue
	return (*outputValue)(p)
}

func (o *outputValue) String() string {
	return string(*o)
}

func (o *outputValue) Type() string {
	return "format"
}

func (o *outputValue) Set(s string) error {
	outfmt, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*o = outputValue(outfmt)
	return nil
}

// AddOutputFlag adds the -o/--output flag with table as default.
func AddOutputFlag(cmd *cobra.Command, varRef *Format) {
	cmd.Flags().VarP(newOutputValue(Table, varRef), "output", "o",
		fmt.Sprintf("Prints the output in the specified format. Allowed values: %s", strings.Join(Formats(), ", ")))
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}
