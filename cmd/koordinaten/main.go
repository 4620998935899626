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

package main

import (
	"os"

	"k8s.io/component-base/cli"

	"github.com/ed23x/gemini-koordinaten/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultCliCmd()
	if err := cli.RunNoErrOutput(command); err != nil {
		os.Exit(1)
	}
}
