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

package extract

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ed23x/gemini-koordinaten/pkg/cmd/request"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/types"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

// MaxInlineSize is the largest file sent as inline data.
const MaxInlineSize = 20 * 1024 * 1024

var jsonArray = regexp.MustCompile(`(?s)\[.*\]`)

// generation settings keep the answer close to the prompt format
const (
	temperature = 0.2
	topP        = 0.8
	topK        = 40
)

type Client struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
	Retry    util.RetryOptions
	http     *request.Client
}

type Option func(*Client)

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.Model = model
		}
	}
}

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.Endpoint = strings.TrimSuffix(endpoint, "/")
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.Timeout = d
	}
}

func WithRetry(retries int, delay time.Duration) Option {
	return func(c *Client) {
		c.Retry = util.RetryOptions{MaxRetry: retries, Delay: delay}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = &request.Client{HTTPClient: hc}
	}
}

// NewClient returns a Gemini client for the default model and endpoint.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		APIKey:   apiKey,
		Model:    types.DefaultModel,
		Endpoint: types.DefaultEndpoint,
		Timeout:  60 * time.Second,
		Retry:    util.RetryOptions{MaxRetry: types.DefaultRetries},
		http:     request.NewClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Image is an uploaded file with its sniffed MIME type.
type Image struct {
	Name     string
	MIMEType string
	Data     []byte
}

// LoadImage reads path and detects its MIME type from the content.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return NewImage(filepath.Base(path), data)
}

// NewImage checks that data is an image or a PDF document small enough to
// be sent inline.
func NewImage(name string, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.Errorf("%s is empty", name)
	}
	if len(data) > MaxInlineSize {
		return nil, errors.Errorf("%s is %s, the limit is %s", name,
			humanize.Bytes(uint64(len(data))), humanize.Bytes(MaxInlineSize))
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detect the type of %s", name)
	}
	if kind == filetype.Unknown || !(filetype.IsImage(data) || kind.MIME.Value == "application/pdf") {
		return nil, errors.Errorf("%s is not an image or PDF document", name)
	}
	klog.V(1).Infof("%s: %s, %s", name, kind.MIME.Value, humanize.Bytes(uint64(len(data))))
	return &Image{Name: name, MIMEType: kind.MIME.Value, Data: data}, nil
}

// Prompt asks for the points of the plotted curve as a bare JSON array.
func Prompt(xLabel, yLabel string) string {
	return fmt.Sprintf(`Analyze the uploaded file and extract the points of a coordinate system from it.
The X axis represents "%s" and the Y axis represents "%s".
Return the points as a JSON array in the following format:
[{"x": value, "y": value}, {"x": value, "y": value}, ...]
Make sure the values are numbers, not strings.
Return ONLY the JSON array without any additional text.`, xLabel, yLabel)
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generation_config"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) url() string {
	return fmt.Sprintf("%s/models/%s:generateContent", c.Endpoint, c.Model)
}

// Extract sends img to the model and returns the extracted points sorted by x.
// Rate limits and server errors are retried.
func (c *Client) Extract(ctx context.Context, img *Image, xLabel, yLabel string) ([]plot.Point, error) {
	if c.APIKey == "" {
		return nil, errors.New("an API key is required")
	}
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{
			{Text: Prompt(xLabel, yLabel)},
			{InlineData: &inlineData{MIMEType: img.MIMEType, Data: base64.StdEncoding.EncodeToString(img.Data)}},
		}}},
		GenerationConfig: generationConfig{Temperature: temperature, TopP: topP, TopK: topK},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	headers := map[string]string{"x-goog-api-key": c.APIKey}

	var resp []byte
	err = util.DoWithRetry(ctx, klog.FromContext(ctx), func() error {
		var err error
		resp, err = c.http.Do(ctx, http.MethodPost, c.url(), headers, body)
		var statusErr *request.StatusError
		if errors.As(err, &statusErr) && !statusErr.Retryable() {
			return util.Permanent(err)
		}
		return err
	}, &c.Retry)
	if err != nil {
		var statusErr *request.StatusError
		if errors.As(err, &statusErr) && statusErr.Response.Message != "" {
			return nil, errors.Errorf("%s (status %d)", statusErr.Response.Message, statusErr.StatusCode)
		}
		return nil, err
	}
	return ParseResponse(resp)
}

// ParseResponse reads the text of the first candidate and parses the points in it.
func ParseResponse(body []byte) ([]plot.Point, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 ||
		resp.Candidates[0].Content.Parts[0].Text == "" {
		return nil, errors.New("no answer received from the model")
	}
	return ParsePoints(resp.Candidates[0].Content.Parts[0].Text)
}

// ParsePoints finds the JSON array in text and keeps the objects whose x
// and y are numbers. The result is sorted by x.
func ParsePoints(text string) ([]plot.Point, error) {
	match := jsonArray.FindString(text)
	if match == "" {
		return nil, errors.New("no JSON array found in the answer")
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(match), &items); err != nil {
		return nil, errors.Wrap(err, "the answer is not a valid JSON array")
	}

	var points []plot.Point
	for _, item := range items {
		var obj map[string]interface{}
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			continue
		}
		x, xok := obj["x"].(float64)
		y, yok := obj["y"].(float64)
		if !xok || !yok {
			continue
		}
		points = append(points, plot.Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, errors.New("no valid points found")
	}
	if dropped := len(items) - len(points); dropped > 0 {
		klog.V(1).Infof("ignored %d entries without numeric x and y", dropped)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})
	return points, nil
}
