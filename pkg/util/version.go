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
	"fmt"
	"runtime"
	"strings"

	gv "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"github.com/ed23x/gemini-koordinaten/pkg/types"
	"github.com/ed23x/gemini-koordinaten/version"
)

type Version struct {
	Cli      string `json:"cli"`
	Dataset  string `json:"dataset"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

// GetVersionInfo gets the CLI version and the dataset format it writes
func GetVersionInfo() Version {
	return Version{
		Cli:      BuildSemverVersion(version.GetVersion()),
		Dataset:  types.DatasetVersion,
		Go:       runtime.Version(),
		Platform: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// CheckVersionConstraint returns an error if version does not satisfy the
// constraint, e.g. ">= 1.0, < 2.0". An empty version is accepted.
func CheckVersionConstraint(version, constraint string) error {
	if version == "" {
		return nil
	}
	v, err := gv.NewVersion(TrimVersionPrefix(version))
	if err != nil {
		return errors.Wrapf(err, "invalid version %q", version)
	}
	c, err := gv.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %q", constraint)
	}
	if !c.Check(v) {
		return errors.Errorf("version %s does not satisfy %s", version, constraint)
	}
	return nil
}

// BuildSemverVersion build semver version which starts with "v", such as "v1.0.0".
func BuildSemverVersion(version string) string {
	if version == "" {
		return version
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

func TrimVersionPrefix(version string) string {
	version = strings.TrimSpace(version)
	if len(version) > 0 && (version[0] == 'v' || version[0] == 'V') {
		return version[1:]
	}
	return version
}
