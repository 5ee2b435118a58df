package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/verascan/verascan/internal/domain/deepfake"
	"github.com/verascan/verascan/internal/domain/plagiarism"
)

// FallbackMessage is shown when the analysis service rejects a request
// without an error field in the body.
const FallbackMessage = "analysis service error"

// BackendError is a non-2xx reply from the analysis service, carrying
// the message from its {error} body when one was present.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string { return e.Message }

// MalformedError is a 2xx reply whose body did not match the expected
// shape. The service never promises this cannot happen, so it gets its
// own error kind instead of an opaque decode failure.
type MalformedError struct {
	cause error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed analysis response: %v", e.cause)
}

func (e *MalformedError) Unwrap() error { return e.cause }

// Client talks to the analysis service. It implements the
// deepfake.Analyzer and plagiarism.Checker ports.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// AnalyzeURL runs the media verdict for one URL.
// GET {base}/analyze/url?url=<urlencoded>
func (c *Client) AnalyzeURL(ctx context.Context, rawURL string) (*deepfake.Verdict, error) {
	endpoint := fmt.Sprintf("%s/analyze/url?url=%s", c.base, url.QueryEscape(rawURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var v deepfake.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, &MalformedError{cause: err}
	}
	if v.Label == "" {
		return nil, &MalformedError{cause: fmt.Errorf("missing label")}
	}
	return &v, nil
}

// CheckText scans pasted text.
// POST {base}/analyze/plag with a JSON {"text": ...} body.
func (c *Client) CheckText(ctx context.Context, text string) (*plagiarism.Report, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/analyze/plag", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doPlag(req)
}

// CheckFile scans an uploaded document.
// POST {base}/analyze/plag as multipart form data, field name "file".
func (c *Client) CheckFile(ctx context.Context, filename string, file io.Reader) (*plagiarism.Report, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/analyze/plag", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.doPlag(req)
}

func (c *Client) doPlag(req *http.Request) (*plagiarism.Report, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	// A summary pointer distinguishes an absent summary key from a
	// legitimately all-zero one.
	var body struct {
		Summary *plagiarism.Summary          `json:"summary"`
		Results []plagiarism.ParagraphResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &MalformedError{cause: err}
	}
	if body.Summary == nil {
		return nil, &MalformedError{cause: fmt.Errorf("missing summary")}
	}
	return &plagiarism.Report{Summary: *body.Summary, Results: body.Results}, nil
}

// checkStatus turns a non-2xx reply into a BackendError, preferring the
// error message from the body over the generic fallback.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := FallbackMessage
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &BackendError{Status: resp.StatusCode, Message: msg}
}
