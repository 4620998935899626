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

package request

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("request", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
	)

	BeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
		DeferCleanup(server.Close)
	})

	It("sends the body and headers", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.Method).Should(Equal(http.MethodPost))
			Expect(r.Header.Get("Content-Type")).Should(Equal("application/json"))
			Expect(r.Header.Get("x-goog-api-key")).Should(Equal("key"))
			body, _ := io.ReadAll(r.Body)
			Expect(string(body)).Should(Equal(`{"a":1}`))
			_, _ = w.Write([]byte(`{"ok":true}`))
		}
		body, err := NewRequest(context.Background(), http.MethodPost, server.URL, map[string]string{"x-goog-api-key": "key"}, []byte(`{"a":1}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(body)).Should(Equal(`{"ok":true}`))
	})

	It("decodes the google error envelope", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
		}
		_, err := NewRequest(context.Background(), http.MethodPost, server.URL, nil, nil)
		var statusErr *StatusError
		Expect(errors.As(err, &statusErr)).Should(BeTrue())
		Expect(statusErr.StatusCode).Should(Equal(http.StatusBadRequest))
		Expect(statusErr.Response.Message).Should(Equal("API key not valid"))
		Expect(statusErr.Retryable()).Should(BeFalse())
		Expect(err.Error()).Should(ContainSubstring("INVALID_ARGUMENT API key not valid"))
	})

	It("decodes flat error bodies and keeps raw text", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"code":503,"message":"overloaded","reason":"busy"}`))
		}
		_, err := NewRequest(context.Background(), http.MethodGet, server.URL, nil, nil)
		var statusErr *StatusError
		Expect(errors.As(err, &statusErr)).Should(BeTrue())
		Expect(statusErr.Response.Reason).Should(Equal("busy"))
		Expect(statusErr.Retryable()).Should(BeTrue())

		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("slow down"))
		}
		_, err = NewRequest(context.Background(), http.MethodGet, server.URL, nil, nil)
		Expect(errors.As(err, &statusErr)).Should(BeTrue())
		Expect(statusErr.Response.Message).Should(Equal("slow down"))
		Expect(statusErr.Retryable()).Should(BeTrue())
	})

	It("honours context cancellation", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewRequest(ctx, http.MethodGet, server.URL, nil, nil)
		Expect(err).Should(HaveOccurred())
	})
})
