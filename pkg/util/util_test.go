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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/ed23x/gemini-koordinaten/pkg/types"
)

func useTempHome() string {
	dir, err := os.MkdirTemp("", "koordinaten-home")
	Expect(err).ShouldNot(HaveOccurred())
	home := filepath.Join(dir, "home")
	old, had := os.LookupEnv(types.CliHomeEnv)
	Expect(os.Setenv(types.CliHomeEnv, home)).Should(Succeed())
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(types.CliHomeEnv, old)
		} else {
			_ = os.Unsetenv(types.CliHomeEnv)
		}
		_ = os.RemoveAll(dir)
	})
	return home
}

var _ = Describe("util", func() {
	It("creates the home and log directories", func() {
		home := useTempHome()
		dir, err := GetCliHomeDir()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(dir).Should(Equal(home))
		Expect(dir).Should(BeADirectory())

		logDir, err := GetCliLogDir()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(logDir).Should(Equal(filepath.Join(home, types.CliLogDir)))
		Expect(logDir).Should(BeADirectory())

		logFile, err := GetCliLogFile()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(filepath.Base(logFile)).Should(Equal(types.CliLogFile))
	})

	It("retries until the operation succeeds", func() {
		calls := 0
		err := DoWithRetry(context.Background(), logr.Discard(), func() error {
			calls++
			if calls < 3 {
				return errors.New("busy")
			}
			return nil
		}, &RetryOptions{MaxRetry: 5, Delay: time.Millisecond})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(calls).Should(Equal(3))
	})

	It("gives up after MaxRetry retries", func() {
		calls := 0
		err := DoWithRetry(context.Background(), logr.Discard(), func() error {
			calls++
			return errors.New("busy")
		}, &RetryOptions{MaxRetry: 2, Delay: time.Millisecond})
		Expect(err).Should(MatchError("busy"))
		Expect(calls).Should(Equal(3))
	})

	It("does not retry permanent errors", func() {
		calls := 0
		cause := errors.New("bad request")
		err := DoWithRetry(context.Background(), logr.Discard(), func() error {
			calls++
			return Permanent(cause)
		}, &RetryOptions{MaxRetry: 3, Delay: time.Millisecond})
		Expect(err).Should(Equal(cause))
		Expect(calls).Should(Equal(1))
		Expect(Permanent(nil)).Should(BeNil())
	})

	It("prints go templates", func() {
		buf := &bytes.Buffer{}
		Expect(PrintGoTemplate(buf, "{{.X}}/{{.Y}}", map[string]int{"X": 1, "Y": 2})).Should(Succeed())
		Expect(buf.String()).Should(Equal("1/2"))
		Expect(PrintGoTemplate(buf, "{{.X", nil)).ShouldNot(Succeed())
	})

	It("checks version constraints", func() {
		Expect(CheckVersionConstraint("", types.DatasetVersionConstraint)).Should(Succeed())
		Expect(CheckVersionConstraint("1.0", types.DatasetVersionConstraint)).Should(Succeed())
		Expect(CheckVersionConstraint("v1.3", types.DatasetVersionConstraint)).Should(Succeed())
		Expect(CheckVersionConstraint("2.0", types.DatasetVersionConstraint)).ShouldNot(Succeed())
		Expect(CheckVersionConstraint("abc", types.DatasetVersionConstraint)).ShouldNot(Succeed())
		Expect(TrimVersionPrefix(" V1.2 ")).Should(Equal("1.2"))
		Expect(BuildSemverVersion("1.2.0")).Should(Equal("v1.2.0"))
	})

	It("reports version info", func() {
		info := GetVersionInfo()
		Expect(info.Cli).Should(HavePrefix("v"))
		Expect(info.Dataset).Should(Equal(types.DatasetVersion))
		Expect(info.Platform).Should(ContainSubstring("/"))
	})
})

var _ = Describe("config", func() {
	var v *viper.Viper

	BeforeEach(func() {
		useTempHome()
		v = viper.New()
		Expect(InitConfig(v)).Should(Succeed())
	})

	It("uses defaults without a config file", func() {
		Expect(v.GetString(types.CfgKeyModel)).Should(Equal(types.DefaultModel))
		Expect(v.GetString(types.CfgKeyXLabel)).Should(Equal(types.DefaultXLabel))
		Expect(GetDuration(v, types.CfgKeyTimeout, time.Second)).Should(Equal(60 * time.Second))
	})

	It("persists valid values", func() {
		Expect(SetConfigValue(v, types.CfgKeyTheme, "light")).Should(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyTimeout, "90s")).Should(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyAPIKey, "secret-key-1234")).Should(Succeed())

		reloaded := viper.New()
		Expect(InitConfig(reloaded)).Should(Succeed())
		Expect(reloaded.GetString(types.CfgKeyTheme)).Should(Equal("light"))
		Expect(GetDuration(reloaded, types.CfgKeyTimeout, time.Second)).Should(Equal(90 * time.Second))

		values := ConfigValues(reloaded)
		Expect(values[types.CfgKeyAPIKey]).Should(Equal("***********1234"))
		Expect(SortedKeys(values)[0]).Should(Equal(types.CfgKeyAPIKey))
	})

	It("writes only the keys that were set", func() {
		Expect(os.Setenv("KOORDINATEN_MODEL", "env-only-model")).Should(Succeed())
		DeferCleanup(os.Unsetenv, "KOORDINATEN_MODEL")
		v = viper.New()
		Expect(InitConfig(v)).Should(Succeed())
		Expect(v.GetString(types.CfgKeyModel)).Should(Equal("env-only-model"))

		Expect(SetConfigValue(v, types.CfgKeyTheme, "light")).Should(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyRetries, "3")).Should(Succeed())

		file, err := GetCliConfigFile()
		Expect(err).ShouldNot(HaveOccurred())
		data, err := os.ReadFile(file)
		Expect(err).ShouldNot(HaveOccurred())
		stored := map[string]interface{}{}
		Expect(yaml.Unmarshal(data, &stored)).Should(Succeed())
		Expect(stored).Should(HaveLen(2))
		Expect(stored).Should(HaveKeyWithValue(types.CfgKeyTheme, "light"))
		Expect(stored).Should(HaveKeyWithValue(types.CfgKeyRetries, BeNumerically("==", 3)))
		Expect(v.GetString(types.CfgKeyTheme)).Should(Equal("light"))
	})

	It("rejects unknown keys and invalid values", func() {
		Expect(SetConfigValue(v, "colour", "red")).ShouldNot(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyTheme, "blue")).ShouldNot(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyLineStyle, "curvy")).ShouldNot(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyTimeout, "-1s")).ShouldNot(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyRetries, "many")).ShouldNot(Succeed())
		Expect(SetConfigValue(v, types.CfgKeyEndpoint, "not a url")).ShouldNot(Succeed())
		Expect(SetConfigValue(v, "apikey", "x")).Should(MatchError(ContainSubstring(`did you mean "api-key"`)))
	})

	It("falls back on invalid durations", func() {
		v.Set(types.CfgKeyTimeout, "soon")
		Expect(GetDuration(v, types.CfgKeyTimeout, 5*time.Second)).Should(Equal(5 * time.Second))
	})

	It("masks secrets", func() {
		Expect(MaskSecret("")).Should(Equal(""))
		Expect(MaskSecret("abc")).Should(Equal("***"))
		Expect(MaskSecret("abcdef")).Should(Equal("**cdef"))
	})
})
