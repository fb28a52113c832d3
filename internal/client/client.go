// Package client talks to a recordgen server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

var (
	// ErrIncompatibleVersion is returned when the server speaks another major API version.
	ErrIncompatibleVersion = errors.New("incompatible server version")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Is lets errors.Is match 404 responses against ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Client handles HTTP communication with a recordgen server
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			// Contexts carry per-call deadlines; this only bounds calls without one.
			Timeout: 30 * time.Second,
		},
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Generate fetches one page of records.
func (c *Client) Generate(ctx context.Context, req protocol.GenerateRequest) (recordgen.Page, error) {
	var page protocol.GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/generate", req, &page); err != nil {
		return nil, err
	}
	return page, nil
}

// RandomSeed asks the server for a fresh seed.
func (c *Client) RandomSeed(ctx context.Context) (int64, error) {
	var resp protocol.RandomSeedResponse
	if err := c.doJSON(ctx, http.MethodGet, "/random-seed", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Seed, nil
}

// Regions lists the regions the server supports.
func (c *Client) Regions(ctx context.Context) ([]protocol.RegionInfo, error) {
	var resp protocol.RegionListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/regions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Regions, nil
}

// ExportCSV streams the server-rendered CSV of pages 1..q.Pages into w and
// returns the number of bytes written.
func (c *Client) ExportCSV(ctx context.Context, q protocol.ExportQuery, w io.Writer) (int64, error) {
	v := url.Values{}
	v.Set("region", q.Region)
	v.Set("errors", strconv.FormatFloat(q.Errors, 'f', -1, 64))
	v.Set("seed", q.Seed)
	v.Set("pages", strconv.Itoa(q.Pages))

	resp, err := c.do(ctx, http.MethodGet, "/export.csv?"+v.Encode(), nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return io.Copy(w, resp.Body)
}

// CreatePreset saves a preset.
func (c *Client) CreatePreset(ctx context.Context, req protocol.PresetCreateRequest) (protocol.Preset, error) {
	var p protocol.Preset
	err := c.doJSON(ctx, http.MethodPost, "/api/presets", req, &p)
	return p, err
}

// ListPresets returns all saved presets.
func (c *Client) ListPresets(ctx context.Context) ([]protocol.Preset, error) {
	var resp protocol.PresetListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/presets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Presets, nil
}

// GetPreset loads one preset.
func (c *Client) GetPreset(ctx context.Context, id string) (protocol.Preset, error) {
	var p protocol.Preset
	err := c.doJSON(ctx, http.MethodGet, "/api/presets/"+url.PathEscape(id), nil, &p)
	return p, err
}

// DeletePreset removes one preset.
func (c *Client) DeletePreset(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/presets/"+url.PathEscape(id), nil, nil)
}

// PresetPage generates a page of the dataset a preset describes.
func (c *Client) PresetPage(ctx context.Context, id string, page int) (recordgen.Page, error) {
	var p protocol.GenerateResponse
	path := fmt.Sprintf("/api/presets/%s/pages/%d", url.PathEscape(id), page)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// do sends a request and returns the response if it is a 2xx from a
// compatible server. The caller closes the body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if err := checkVersion(resp.Header.Get(protocol.VersionHeader)); err != nil {
		resp.Body.Close()
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, readAPIError(resp)
	}
	return resp, nil
}

// checkVersion rejects servers with another major API version. A missing
// header is tolerated.
func checkVersion(serverVersion string) error {
	if serverVersion == "" {
		return nil
	}
	ok, err := protocol.IsCompatibleVersion(serverVersion, protocol.APIVersion)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIncompatibleVersion, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrIncompatibleVersion,
			protocol.GetCompatibilityError(serverVersion, protocol.APIVersion))
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var er protocol.ErrorResponse
	msg := strings.TrimSpace(string(data))
	if json.Unmarshal(data, &er) == nil && er.Error != "" {
		msg = er.Error
	}
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
