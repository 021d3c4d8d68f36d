package uploader

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/platform"
	"github.com/stretchr/testify/require"
)

type uploadCall struct {
	linkID string
	req    models.UploadRequest
}

type fakeAPI struct {
	mu      sync.Mutex
	calls   []uploadCall
	result  *models.UploadResult
	err     error
	release chan struct{}
}

func (f *fakeAPI) Upload(ctx context.Context, linkID string, req models.UploadRequest) (*models.UploadResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, uploadCall{linkID: linkID, req: req})
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAPI) Files(ctx context.Context, linkID string) (*models.Manifest, error) {
	return nil, errors.New("not used")
}

func (f *fakeAPI) Fetch(ctx context.Context, url string) ([]byte, error) {
	return nil, errors.New("not used")
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSessions struct {
	mu  sync.Mutex
	id  string
	err error
	set []string
}

func (f *fakeSessions) SessionID(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id, f.err
}

func (f *fakeSessions) SetSessionID(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.id = id
	f.set = append(f.set, id)
	return nil
}

type fakeAlerter struct {
	mu   sync.Mutex
	msgs []string
}

func (f *fakeAlerter) Alert(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
}

func (f *fakeAlerter) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.msgs...)
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func memFile(name, mime, content string) models.FileHandle {
	return models.FileHandle{
		Name: name,
		Size: int64(len(content)),
		Type: mime,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(content)), nil },
	}
}

type fixture struct {
	api      *fakeAPI
	sessions *fakeSessions
	alerts   *fakeAlerter
	clip     *fakeClipboard
	fallback *fakeClipboard
	loc      *platform.MemoryLocation
	replaced []string
	c        *Controller
}

func newFixture(t *testing.T, pageURL string) *fixture {
	t.Helper()

	f := &fixture{
		api:      &fakeAPI{result: &models.UploadResult{FilesUploaded: 2}},
		sessions: &fakeSessions{id: "session-1"},
		alerts:   &fakeAlerter{},
		clip:     &fakeClipboard{},
		fallback: &fakeClipboard{},
	}

	loc, err := platform.NewLocation(pageURL, func(u *url.URL) {
		f.replaced = append(f.replaced, u.String())
	})
	require.NoError(t, err)
	f.loc = loc

	f.c = New(Deps{
		API:       f.api,
		Sessions:  f.sessions,
		Location:  loc,
		Alerter:   f.alerts,
		Clipboard: f.clip,
		Fallback:  f.fallback,
	}, Options{
		ProgressInterval:  time.Millisecond,
		ProgressHideDelay: 10 * time.Millisecond,
		CopyFeedback:      10 * time.Millisecond,
	})
	f.c.rnd = func() float64 { return 1 }
	f.c.newLinkID = func() (string, error) { return "k3x9q0az", nil }

	return f
}
