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

package types

const (
	// CliName is the name of the command line tool.
	CliName = "koordinaten"

	// CliHomeEnv overrides the default home directory.
	CliHomeEnv = "KOORDINATEN_HOME"

	// CliDefaultHome is the default home directory under the user home.
	CliDefaultHome = ".koordinaten"

	// CliLogDir is the log directory under the home directory.
	CliLogDir = "logs"

	// CliLogFile is the log file written while the interactive viewer runs.
	CliLogFile = "koordinaten.log"

	// CliConfigName is the config file name without extension.
	CliConfigName = "config"

	// CliConfigType is the config file format.
	CliConfigType = "yaml"

	// EnvPrefix is the prefix of environment variables bound to config keys.
	EnvPrefix = "KOORDINATEN"
)

// config keys
const (
	CfgKeyAPIKey    = "api-key"
	CfgKeyModel     = "model"
	CfgKeyTheme     = "theme"
	CfgKeyLineStyle = "line-style"
	CfgKeyXLabel    = "x-label"
	CfgKeyYLabel    = "y-label"
	CfgKeyEndpoint  = "endpoint"
	CfgKeyTimeout   = "timeout"
	CfgKeyRetries   = "retries"
)

// defaults
const (
	DefaultModel    = "gemini-2.5-flash-lite-preview-06-17"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTheme    = "dark"
	DefaultXLabel   = "pH"
	DefaultYLabel   = "Concentration"
	DefaultTimeout  = "60s"
	DefaultRetries  = 2
)

// DatasetVersion is the version written into exported dataset files.
// Files of the same major version can be imported.
const (
	DatasetVersion           = "1.0"
	DatasetVersionConstraint = ">= 1.0, < 2.0"
)

const GoosWindows = "windows"
