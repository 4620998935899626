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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"
)

// maxErrorBody bounds the raw body quoted in a StatusError.
const maxErrorBody = 512

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
	Status  string `json:"status"`
}

// errorEnvelope is the Google API error shape {"error": {...}}.
type errorEnvelope struct {
	Error *ErrorResponse `json:"error"`
}

// StatusError is returned for responses with a status code of 400 or above.
type StatusError struct {
	StatusCode int
	Path       string
	Response   ErrorResponse
}

func (e *StatusError) Error() string {
	var parts []string
	for _, s := range []string{e.Response.Reason, e.Response.Status, e.Response.Message} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	reason := strings.Join(parts, " ")
	return fmt.Sprintf("request failed with status code: %d for %s\nreason: %s", e.StatusCode, e.Path, reason)
}

// Retryable reports whether the request may succeed when sent again.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Client sends JSON requests. The zero value uses a clean default client.
type Client struct {
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{HTTPClient: cleanhttp.DefaultClient()}
}

// NewRequest sends requestBody with a JSON content type and returns the
// response body.
func NewRequest(ctx context.Context, method, path string, headers map[string]string, requestBody []byte) ([]byte, error) {
	return NewClient().Do(ctx, method, path, headers, requestBody)
}

func (c *Client) Do(ctx context.Context, method, path string, headers map[string]string, requestBody []byte) ([]byte, error) {
	client := c.HTTPClient
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", path)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to perform request for %s", path)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response body for %s", path)
	}

	if resp.StatusCode >= 400 {
		return nil, newStatusError(resp.StatusCode, path, responseBody)
	}
	return responseBody, nil
}

func newStatusError(code int, path string, body []byte) *StatusError {
	e := &StatusError{StatusCode: code, Path: path}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		e.Response = *envelope.Error
		return e
	}
	if err := json.Unmarshal(body, &e.Response); err == nil && e.Response.Message != "" {
		return e
	}
	raw := strings.TrimSpace(string(body))
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody] + "..."
	}
	e.Response = ErrorResponse{Code: code, Message: raw}
	return e
}
