package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/config"
	"github.com/dmitrijs2005/docshare/internal/client/localstore"
	"github.com/dmitrijs2005/docshare/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig(t *testing.T, app config.App, apiBase, pageURL string) *config.Config {
	t.Helper()
	var cfg config.Config
	cfg.LoadDefaults(app)
	cfg.APIBase = apiBase
	cfg.PageURL = pageURL
	cfg.DBPath = filepath.Join(t.TempDir(), "docshare.db")
	cfg.DownloadDir = filepath.Join(t.TempDir(), "downloads")
	cfg.ProgressInterval = time.Millisecond
	cfg.ProgressHideDelay = time.Hour
	return &cfg
}

func TestViewerApp_SelectAndDownload(t *testing.T) {
	capturePrintln(t)

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/files/abc123":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"expired":    false,
				"expires_at": "2030-01-01T00:00:00Z",
				"customers": map[string]any{
					"Jane Doe": []map[string]any{{
						"id":                  1,
						"filename":            "contract.pdf",
						"mimetype":            "application/pdf",
						"size":                2048,
						"uploaded_at":         "2029-12-31T10:00:00Z",
						"download_url":        srv.URL + "/blob/1",
						"customer_expires_at": "2030-01-01T00:00:00Z",
					}},
				},
			})
		case "/blob/1":
			_, _ = io.WriteString(w, "%PDF-1.4")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := testConfig(t, config.AppViewer, srv.URL, "http://localhost:8080/viewer/?id=abc123")
	out := &syncBuffer{}
	in := strings.NewReader("select 1\ndownload 1\nexit\n")

	app, err := NewViewerApp(context.Background(), cfg, in, out, io.Discard)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "[JD] Jane Doe - 1 file (1)")
	assert.Contains(t, out.String(), "[PDF] contract.pdf")

	data, err := os.ReadFile(filepath.Join(cfg.DownloadDir, "contract.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	db, err := localstore.InitDatabase(context.Background(), cfg.DBPath)
	require.NoError(t, err)
	defer db.Close()
	store := localstore.NewStore(localstore.NewSQLiteRepository(db), logging.Discard())
	viewed, err := store.LoadViewed(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, viewed.Has("1"))
}

func TestViewerApp_NoLinkID(t *testing.T) {
	capturePrintln(t)

	cfg := testConfig(t, config.AppViewer, "http://127.0.0.1:1", "http://localhost:8080/viewer/")
	out := &syncBuffer{}

	app, err := NewViewerApp(context.Background(), cfg, strings.NewReader("exit\n"), out, io.Discard)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "No link ID provided")
}

func TestUploaderApp_Upload(t *testing.T) {
	capturePrintln(t)

	var gotCustomer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload/abc123" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			gotCustomer = r.FormValue("customer_name")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"files_uploaded":1,"session_id":"srv-session"}`)
	}))
	defer srv.Close()

	doc := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte("hello"), 0o600))

	cfg := testConfig(t, config.AppUploader, srv.URL, "http://localhost:8080/uploader/?id=abc123")
	out := &syncBuffer{}
	in := strings.NewReader("add " + doc + "\nname\nJane Doe\nupload\nexit\n")

	app, err := NewUploaderApp(context.Background(), cfg, in, out, io.Discard)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, "Jane Doe", gotCustomer)
	assert.Contains(t, out.String(), "1 file uploaded successfully")
	assert.Contains(t, out.String(), "Share link: http://localhost:8080/viewer/?id=abc123")

	db, err := localstore.InitDatabase(context.Background(), cfg.DBPath)
	require.NoError(t, err)
	defer db.Close()
	store := localstore.NewStore(localstore.NewSQLiteRepository(db), logging.Discard())
	session, err := store.SessionID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "srv-session", session)
}
