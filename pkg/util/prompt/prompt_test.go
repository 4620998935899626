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
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("prompt", func() {
	It("rejects blank input", func() {
		Expect(NotEmpty("  ")).Should(HaveOccurred())
		Expect(NotEmpty("key")).Should(Succeed())
	})

	It("masks secrets", func() {
		p := NewSecretPrompt("API key", bytes.NewBufferString("secret\n"))
		Expect(p.Mask).Should(Equal('*'))
		Expect(p.Label).Should(Equal("API key"))
		v, err := p.Run()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("secret"))
	})

	It("confirms", func() {
		Expect(Confirm("Overwrite?", bytes.NewBufferString("y\n"))).Should(Succeed())
		Expect(Confirm("Overwrite?", bytes.NewBufferString("n\n"))).Should(MatchError("aborted"))
	})
})
