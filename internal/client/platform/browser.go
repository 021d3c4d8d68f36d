package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/dmitrijs2005/docshare/internal/filex"
)

// ErrPopupBlocked means no window could be opened.
var ErrPopupBlocked = errors.New("popup blocked")

// Window is a document opened for printing.
type Window interface {
	// OnLoad runs fn once the document has finished loading. If it has
	// already loaded, fn runs immediately.
	OnLoad(fn func())
	Print() error
}

// Browser opens URLs outside the client.
type Browser interface {
	OpenTab(url string) error
	OpenWindow(ctx context.Context, url string) (Window, error)
}

// Runner executes an external command.
type Runner func(ctx context.Context, name string, args ...string) error

// Fetcher loads the bytes behind a URL.
type Fetcher func(ctx context.Context, url string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// SystemBrowser hands URLs to the desktop opener and prints through lp.
type SystemBrowser struct {
	run      Runner
	lookPath func(string) (string, error)
	fetch    Fetcher
	tmpDir   string
	goos     string
}

func NewSystemBrowser(fetch Fetcher, tmpDir string) *SystemBrowser {
	return &SystemBrowser{
		run:      execRunner,
		lookPath: exec.LookPath,
		fetch:    fetch,
		tmpDir:   tmpDir,
		goos:     runtime.GOOS,
	}
}

func (b *SystemBrowser) openCommand(target string) (string, []string) {
	switch b.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func (b *SystemBrowser) OpenTab(target string) error {
	name, args := b.openCommand(target)
	if err := b.run(context.Background(), name, args...); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// OpenWindow starts loading target into a temporary file. The returned
// window is loaded once the download finishes; printing goes through lp.
// Without lp there is nowhere to print to, which is reported as
// ErrPopupBlocked.
func (b *SystemBrowser) OpenWindow(ctx context.Context, target string) (Window, error) {
	lp, err := b.lookPath("lp")
	if err != nil {
		return nil, ErrPopupBlocked
	}

	w := &printWindow{run: b.run, lp: lp, loaded: make(chan struct{})}
	go w.load(ctx, b.fetch, b.tmpDir, target)
	return w, nil
}

type printWindow struct {
	run Runner
	lp  string

	mu      sync.Mutex
	loaded  chan struct{}
	path    string
	loadErr error
	onLoad  []func()
}

func (w *printWindow) load(ctx context.Context, fetch Fetcher, tmpDir, target string) {
	path, err := w.download(ctx, fetch, tmpDir, target)

	w.mu.Lock()
	w.path, w.loadErr = path, err
	callbacks := w.onLoad
	w.onLoad = nil
	close(w.loaded)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

func (w *printWindow) download(ctx context.Context, fetch Fetcher, tmpDir, target string) (string, error) {
	data, err := fetch(ctx, target)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureDir(tmpDir)
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(dir, "print-*"+filepath.Ext(filex.SafeName(target)))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", err
	}
	return f.Name(), nil
}

func (w *printWindow) OnLoad(fn func()) {
	w.mu.Lock()
	select {
	case <-w.loaded:
		w.mu.Unlock()
		fn()
	default:
		w.onLoad = append(w.onLoad, fn)
		w.mu.Unlock()
	}
}

func (w *printWindow) Print() error {
	<-w.loaded

	w.mu.Lock()
	path, loadErr := w.path, w.loadErr
	w.mu.Unlock()

	if loadErr != nil {
		return fmt.Errorf("load document: %w", loadErr)
	}
	defer os.Remove(path)

	if err := w.run(context.Background(), w.lp, path); err != nil {
		return fmt.Errorf("lp: %w", err)
	}
	return nil
}
