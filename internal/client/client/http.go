package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"golang.org/x/sync/errgroup"
)

type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL. A nil hc
// means http.DefaultClient.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

func (c *HTTPClient) endpoint(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func (c *HTTPClient) Upload(ctx context.Context, linkID string, req models.UploadRequest) (*models.UploadResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	g, gctx := errgroup.WithContext(ctx)

	httpReq, err := http.NewRequestWithContext(gctx, http.MethodPost, c.endpoint("upload", linkID), pr)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	// A closed pipe means the request side stopped reading; its own error
	// is the one worth reporting.
	var writeErr error
	g.Go(func() error {
		writeErr = writeUploadForm(gctx, mw, req)
		if writeErr == nil {
			writeErr = mw.Close()
		}
		pw.CloseWithError(writeErr)
		if errors.Is(writeErr, io.ErrClosedPipe) {
			return nil
		}
		return writeErr
	})

	var result models.UploadResult
	g.Go(func() error {
		err := c.do(httpReq, &result)
		_ = pr.Close()
		return err
	})

	err = g.Wait()
	if writeErr != nil && !errors.Is(writeErr, io.ErrClosedPipe) {
		return nil, writeErr
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func writeUploadForm(ctx context.Context, mw *multipart.Writer, req models.UploadRequest) error {
	if err := mw.WriteField("customer_name", req.CustomerName); err != nil {
		return err
	}
	if err := mw.WriteField("session_id", req.SessionID); err != nil {
		return err
	}

	for _, f := range req.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeFilePart(mw, f); err != nil {
			return fmt.Errorf("attach %s: %w", f.Name, err)
		}
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(mw *multipart.Writer, f models.FileHandle) error {
	contentType := f.Type
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="files"; filename="%s"`, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	_, err = io.Copy(part, rc)
	return err
}

func (c *HTTPClient) Files(ctx context.Context, linkID string) (*models.Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("files", linkID), nil)
	if err != nil {
		return nil, err
	}

	var m models.Manifest
	if err := c.do(req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// do sends req and decodes a JSON body into out. Non-2xx statuses become
// *APIError with the body's "detail" when it can be read.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// readDetail extracts "detail" from an error body. FastAPI-style validation
// errors carry a list there; its first "msg" is used.
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &list); err == nil && len(list) > 0 {
		return list[0].Msg
	}
	return ""
}

var _ Client = (*HTTPClient)(nil)

// IsUnavailable reports whether err is a transport failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
