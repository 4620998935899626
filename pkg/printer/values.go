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
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v2"
)

const NoneString = "<none>"

// PrintValues prints a key/value map in specified format, supports JSON、YAML and Table
func PrintValues(values map[string]interface{}, format Format, out io.Writer) error {
	if format.IsHumanReadable() {
		p := NewTablePrinter(out)
		p.SetHeader("KEY", "VALUE")
		p.SortBy(1)
		for key, value := range values {
			addRows(key, value, p, true)
		}
		p.Print()
		return nil
	}
	return PrintObject(values, format, out)
}

// PrintObject prints obj as JSON or YAML.
func PrintObject(obj interface{}, format Format, out io.Writer) error {
	var (
		data []byte
		err  error
	)
	if format == YAML {
		data, err = yaml.Marshal(obj)
	} else {
		data, err = json.MarshalIndent(obj, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(data))
	return err
}

// addRows parses the interface value and add it to the Table
func addRows(key string, value interface{}, p *TablePrinter, ori bool) {
	if value == nil || value == "" {
		p.AddRow(key, NoneString)
		return
	}
	if reflect.TypeOf(value).Kind() == reflect.Map && ori {
		m, ok := value.(map[string]interface{})
		if !ok {
			data, _ := json.Marshal(value)
			p.AddRow(key, string(data))
			return
		}
		if len(m) == 0 {
			p.AddRow(key, "{}")
		}
		for k, v := range m {
			addRows(key+"."+k, v, p, false)
		}
		return
	}
	if s, ok := value.(string); ok {
		p.AddRow(key, s)
		return
	}
	data, _ := json.Marshal(value)
	p.AddRow(key, string(data))
}
