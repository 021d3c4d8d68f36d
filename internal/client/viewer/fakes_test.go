package viewer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/localstore"
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/platform"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeAPI struct {
	mu       sync.Mutex
	manifest *models.Manifest
	err      error
	files    int
	fetched  []string
	data     []byte
	fetchErr error
}

func (f *fakeAPI) Upload(ctx context.Context, linkID string, req models.UploadRequest) (*models.UploadResult, error) {
	return nil, errors.New("not used")
}

func (f *fakeAPI) Files(ctx context.Context, linkID string) (*models.Manifest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files++
	return f.manifest, f.err
}

func (f *fakeAPI) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, url)
	return f.data, f.fetchErr
}

type fakeViewed struct {
	initial []models.FileID
	loadErr error
	saves   [][]models.FileID
}

func (f *fakeViewed) LoadViewed(ctx context.Context, linkID string) (*localstore.ViewedSet, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return localstore.NewViewedSet(f.initial...), nil
}

func (f *fakeViewed) SaveViewed(ctx context.Context, linkID string, set *localstore.ViewedSet) error {
	f.saves = append(f.saves, set.IDs())
	return nil
}

type fakeAlerter struct {
	msgs []string
}

func (f *fakeAlerter) Alert(msg string) { f.msgs = append(f.msgs, msg) }

type fakeWindow struct {
	printed chan struct{}
}

func (w *fakeWindow) OnLoad(fn func()) { fn() }

func (w *fakeWindow) Print() error {
	close(w.printed)
	return nil
}

type fakeBrowser struct {
	tabs    []string
	windows []string
	blocked bool
	window  *fakeWindow
}

func (b *fakeBrowser) OpenTab(url string) error {
	b.tabs = append(b.tabs, url)
	return nil
}

func (b *fakeBrowser) OpenWindow(ctx context.Context, url string) (platform.Window, error) {
	b.windows = append(b.windows, url)
	if b.blocked {
		return nil, platform.ErrPopupBlocked
	}
	return b.window, nil
}

type savedFile struct {
	name string
	data []byte
}

type fakeSaver struct {
	saved []savedFile
	err   error
}

func (s *fakeSaver) Save(name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, savedFile{name: name, data: data})
	return "/downloads/" + name, nil
}

func file(id, name, mime string, expiresIn time.Duration) models.FileRecord {
	return models.FileRecord{
		ID:                models.FileID(id),
		Filename:          name,
		Mimetype:          mime,
		Size:              2048,
		UploadedAt:        models.Timestamp{Time: testNow.Add(-time.Hour)},
		DownloadURL:       "https://files.example.com/" + id,
		CustomerExpiresAt: models.Timestamp{Time: testNow.Add(expiresIn)},
	}
}

func testManifest() *models.Manifest {
	return &models.Manifest{
		ExpiresAt: models.Timestamp{Time: testNow.Add(time.Hour)},
		Customers: models.Customers{
			{Name: "Jane Doe", Files: []models.FileRecord{
				file("1", "contract.pdf", "application/pdf", 4*time.Minute+10*time.Second),
				file("2", "scan.png", "image/png", 4*time.Minute+10*time.Second),
				file("3", "notes.txt", "text/plain", 4*time.Minute+10*time.Second),
			}},
			{Name: "Bob", Files: []models.FileRecord{
				file("4", "invoice.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", 30*time.Second),
			}},
		},
	}
}

type fixture struct {
	api     *fakeAPI
	viewed  *fakeViewed
	alerts  *fakeAlerter
	browser *fakeBrowser
	saver   *fakeSaver
	c       *Controller
}

func newFixture(t *testing.T, pageURL string) *fixture {
	t.Helper()

	loc, err := platform.NewLocation(pageURL, nil)
	require.NoError(t, err)

	f := &fixture{
		api:     &fakeAPI{manifest: testManifest(), data: []byte("%PDF")},
		viewed:  &fakeViewed{},
		alerts:  &fakeAlerter{},
		browser: &fakeBrowser{window: &fakeWindow{printed: make(chan struct{})}},
		saver:   &fakeSaver{},
	}
	f.c = New(Deps{
		API:      f.api,
		Viewed:   f.viewed,
		Location: loc,
		Alerter:  f.alerts,
		Browser:  f.browser,
		Saver:    f.saver,
		Now:      func() time.Time { return testNow },
	}, Options{PrintDelay: time.Millisecond})

	return f
}
