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

package config

import (
	"bytes"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/ed23x/gemini-koordinaten/pkg/printer"
	"github.com/ed23x/gemini-koordinaten/pkg/types"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

var _ = Describe("config", func() {
	var (
		streams genericiooptions.IOStreams
		out     *bytes.Buffer
		v       *viper.Viper
	)

	BeforeEach(func() {
		streams, _, out, _ = genericiooptions.NewTestIOStreams()
		dir, err := os.MkdirTemp("", "config")
		Expect(err).ShouldNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
		Expect(os.Setenv(types.CliHomeEnv, dir)).Should(Succeed())
		DeferCleanup(os.Unsetenv, types.CliHomeEnv)
		v = viper.New()
		Expect(util.InitConfig(v)).Should(Succeed())
	})

	It("has view and set subcommands", func() {
		cmd := NewConfigCmd(streams)
		Expect(cmd.Commands()).Should(HaveLen(2))
	})

	It("sets and views values", func() {
		set := &setOptions{key: types.CfgKeyAPIKey, value: "abcdefgh1234", config: v, IOStreams: streams}
		Expect(set.run()).Should(Succeed())
		Expect(out.String()).Should(Equal("api-key set to ********1234\n"))

		out.Reset()
		view := &viewOptions{format: printer.Table, config: v, IOStreams: streams}
		Expect(view.run()).Should(Succeed())
		Expect(out.String()).Should(ContainSubstring("********1234"))
		Expect(out.String()).ShouldNot(ContainSubstring("abcdefgh"))
		Expect(out.String()).Should(ContainSubstring(types.DefaultModel))

		reloaded := viper.New()
		Expect(util.InitConfig(reloaded)).Should(Succeed())
		Expect(reloaded.GetString(types.CfgKeyAPIKey)).Should(Equal("abcdefgh1234"))
	})

	It("rejects invalid values", func() {
		set := &setOptions{key: types.CfgKeyTheme, value: "blue", config: v, IOStreams: streams}
		Expect(set.run()).ShouldNot(Succeed())
		set = &setOptions{key: "colour", value: "red", config: v, IOStreams: streams}
		Expect(set.run()).Should(MatchError(ContainSubstring("unknown config key")))
	})
})
