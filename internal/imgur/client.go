// Package imgur is a small client for the Imgur v3 upload API. It streams
// staged files as multipart bodies and hands back the host's JSON answer
// untouched, so callers can relay it verbatim.
package imgur

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Kind selects the endpoint and form field used for an upload.
type Kind string

const (
	KindImage Kind = "image"
	KindGIF   Kind = "gif"
	KindVideo Kind = "video"
)

// maxResponseBytes caps how much of an upstream answer is buffered.
const maxResponseBytes = 4 << 20

// ErrNotConfigured is returned when the client has no client id.
var ErrNotConfigured = errors.New("imgur client id not configured")

// UpstreamError carries a non-2xx answer from the host so it can be relayed.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("imgur: upstream status %d", e.Status)
}

// Client talks to the Imgur API.
type Client struct {
	BaseURL  string // e.g. https://api.imgur.com/3
	ClientID string
	HTTP     *http.Client
}

// New returns a client with its own http.Client bounded by timeout.
func New(baseURL, clientID string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		ClientID: clientID,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// endpoint returns the path and multipart field for kind. Images and gifs
// share the image endpoint; videos go through the generic upload endpoint.
func endpoint(kind Kind) (path, field string, err error) {
	switch kind {
	case KindImage, KindGIF:
		return "/image", "image", nil
	case KindVideo:
		return "/upload", "video", nil
	default:
		return "", "", fmt.Errorf("imgur: unknown upload kind %q", kind)
	}
}

// Upload sends the file at path to the host. filename is the name reported
// to the host. The 2xx response body is returned as-is.
func (c *Client) Upload(ctx context.Context, kind Kind, path, filename string) (json.RawMessage, error) {
	if c.ClientID == "" {
		return nil, ErrNotConfigured
	}
	ep, field, err := endpoint(kind)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		defer f.Close()
		pw.CloseWithError(writeForm(mw, field, filename, f))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+ep, pr)
	if err != nil {
		_ = pr.CloseWithError(err)
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req)
}

func writeForm(mw *multipart.Writer, field, filename string, r io.Reader) error {
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return err
	}
	if err := mw.WriteField("type", "file"); err != nil {
		return err
	}
	if err := mw.WriteField("name", filename); err != nil {
		return err
	}
	return mw.Close()
}

// Delete removes an upload by its delete hash.
func (c *Client) Delete(ctx context.Context, deleteHash string) (json.RawMessage, error) {
	if c.ClientID == "" {
		return nil, ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/image/"+url.PathEscape(deleteHash), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Authorization", "Client-ID "+c.ClientID)
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: body}
	}
	return json.RawMessage(body), nil
}
