package uploader

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/client"
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/platform"
	"github.com/dmitrijs2005/docshare/internal/logging"
	"github.com/dmitrijs2005/docshare/internal/shared"
	"github.com/google/uuid"
)

const (
	progressStep = 15
	progressCap  = 90

	pageSegment   = "uploader"
	viewerSegment = "viewer"
)

// SessionStore persists the upload session ID.
type SessionStore interface {
	SessionID(ctx context.Context) (string, error)
	SetSessionID(ctx context.Context, id string) error
}

type Options struct {
	ProgressInterval  time.Duration
	ProgressHideDelay time.Duration
	CopyFeedback      time.Duration
}

func (o Options) withDefaults() Options {
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = 200 * time.Millisecond
	}
	if o.ProgressHideDelay <= 0 {
		o.ProgressHideDelay = 1500 * time.Millisecond
	}
	if o.CopyFeedback <= 0 {
		o.CopyFeedback = 2 * time.Second
	}
	return o
}

// Deps are the collaborators of a Controller. Fallback may be nil.
type Deps struct {
	API       client.Client
	Sessions  SessionStore
	Location  platform.Location
	Alerter   platform.Alerter
	Clipboard platform.Clipboard
	Fallback  platform.Clipboard
	Logger    logging.Logger
	OnChange  func()
}

type success struct {
	count int
	url   string
}

type Controller struct {
	deps Deps
	opts Options

	rnd       func() float64
	newLinkID func() (string, error)

	mu           sync.Mutex
	linkID       string
	sessionID    string
	pending      []models.FileHandle
	customerName string
	submitting   bool
	progress     float64
	showProgress bool
	hideGen      int
	success      *success
	copied       bool
	copyGen      int
}

func New(d Deps, opts Options) *Controller {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return &Controller{
		deps:      d,
		opts:      opts.withDefaults(),
		rnd:       rand.Float64,
		newLinkID: shared.NewLinkID,
	}
}

func (c *Controller) notify() {
	if c.deps.OnChange != nil {
		c.deps.OnChange()
	}
}

// Init reads the link ID from the page URL, generating one and rewriting
// the URL when it is absent, and loads the session ID.
func (c *Controller) Init(ctx context.Context) error {
	u := c.deps.Location.URL()
	linkID := platform.LinkID(u)
	if linkID == "" {
		id, err := c.newLinkID()
		if err != nil {
			return err
		}
		linkID = id
		c.deps.Location.Replace(platform.WithLinkID(u, linkID))
	}

	sessionID, err := c.deps.Sessions.SessionID(ctx)
	if err != nil {
		sessionID = uuid.NewString()
		c.deps.Logger.Warn(ctx, "session id not persisted", "error", err)
	}

	c.mu.Lock()
	c.linkID = linkID
	c.sessionID = sessionID
	c.mu.Unlock()

	c.notify()
	return nil
}

func (c *Controller) LinkID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.linkID
}

func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Pending returns a copy of the current selection.
func (c *Controller) Pending() []models.FileHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.pending)
}

// AddFiles replaces the pending selection with files. An empty pick is
// ignored and keeps the previous selection.
func (c *Controller) AddFiles(files []models.FileHandle) {
	if len(files) == 0 {
		return
	}

	c.mu.Lock()
	c.pending = slices.Clone(files)
	c.mu.Unlock()

	c.notify()
}

// RemoveFile drops the pending file at index and dismisses the success
// panel. It reports false, changing nothing, when index is out of range.
func (c *Controller) RemoveFile(index int) bool {
	c.mu.Lock()
	if index < 0 || index >= len(c.pending) {
		c.mu.Unlock()
		return false
	}
	c.pending = slices.Delete(c.pending, index, index+1)
	c.success = nil
	c.copied = false
	c.mu.Unlock()

	c.notify()
	return true
}

func (c *Controller) SetCustomerName(name string) {
	c.mu.Lock()
	c.customerName = name
	c.mu.Unlock()

	c.notify()
}

// Submit uploads the pending selection. It does nothing when the selection
// is empty or another submission is in flight. Failures are logged and
// alerted here; the returned error is informational.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if len(c.pending) == 0 || c.submitting {
		c.mu.Unlock()
		return nil
	}
	c.submitting = true
	c.progress = 0
	c.showProgress = true
	c.hideGen++
	linkID := c.linkID
	req := models.UploadRequest{
		CustomerName: strings.TrimSpace(c.customerName),
		SessionID:    c.sessionID,
		Files:        slices.Clone(c.pending),
	}
	c.mu.Unlock()
	c.notify()

	stop := c.simulateProgress()
	res, err := c.deps.API.Upload(ctx, linkID, req)
	stop()

	if err != nil {
		c.mu.Lock()
		c.submitting = false
		c.showProgress = false
		c.progress = 0
		c.mu.Unlock()

		c.deps.Logger.Error(ctx, "upload failed", "link_id", linkID, "files", len(req.Files), "error", err)
		c.deps.Alerter.Alert("Upload failed: " + failureDetail(err))
		c.notify()
		return err
	}

	c.adoptSession(ctx, res.SessionID)
	viewerURL := platform.SwapSegment(c.deps.Location.URL(), pageSegment, viewerSegment)

	c.mu.Lock()
	c.submitting = false
	c.progress = 100
	c.success = &success{count: res.FilesUploaded, url: viewerURL}
	c.copied = false
	c.pending = nil
	c.customerName = ""
	gen := c.hideGen
	c.mu.Unlock()

	c.deps.Logger.Info(ctx, "upload complete", "link_id", linkID, "files_uploaded", res.FilesUploaded)
	c.notify()

	time.AfterFunc(c.opts.ProgressHideDelay, func() {
		c.mu.Lock()
		stale := gen != c.hideGen
		if !stale {
			c.showProgress = false
			c.progress = 0
		}
		c.mu.Unlock()
		if !stale {
			c.notify()
		}
	})
	return nil
}

func failureDetail(err error) string {
	if d := client.Detail(err); d != "" {
		return d
	}
	return "Upload failed"
}

func (c *Controller) adoptSession(ctx context.Context, id string) {
	if id == "" {
		return
	}

	c.mu.Lock()
	changed := id != c.sessionID
	c.sessionID = id
	c.mu.Unlock()

	if err := c.deps.Sessions.SetSessionID(ctx, id); err != nil {
		c.deps.Logger.Warn(ctx, "failed to persist session id", "error", err)
		return
	}
	if changed {
		c.deps.Logger.Debug(ctx, "adopted server session id", "session_id", id)
	}
}

// simulateProgress advances the cosmetic progress bar by a random step
// every interval, never past progressCap, until the returned stop is
// called.
func (c *Controller) simulateProgress() (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		t := time.NewTicker(c.opts.ProgressInterval)
		defer t.Stop()

		for {
			select {
			case <-done:
				return
			case <-t.C:
				c.mu.Lock()
				c.progress = math.Min(c.progress+c.rnd()*progressStep, progressCap)
				c.mu.Unlock()
				c.notify()
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

// CopyLink puts the viewer URL on the clipboard. When the clipboard is
// unavailable it falls back to the legacy copier and then to asking the
// user to copy by hand.
func (c *Controller) CopyLink(ctx context.Context) error {
	c.mu.Lock()
	if c.success == nil {
		c.mu.Unlock()
		return nil
	}
	link := c.success.url
	c.mu.Unlock()

	err := c.deps.Clipboard.WriteText(link)
	if err == nil {
		c.markCopied()
		return nil
	}
	c.deps.Logger.Debug(ctx, "clipboard write failed", "error", err)

	if c.deps.Fallback != nil {
		if ferr := c.deps.Fallback.WriteText(link); ferr == nil {
			c.deps.Alerter.Alert("Link copied to clipboard!")
			return nil
		}
	}
	c.deps.Alerter.Alert("Please manually copy the link")
	return err
}

func (c *Controller) markCopied() {
	c.mu.Lock()
	c.copied = true
	c.copyGen++
	gen := c.copyGen
	c.mu.Unlock()
	c.notify()

	time.AfterFunc(c.opts.CopyFeedback, func() {
		c.mu.Lock()
		current := gen == c.copyGen && c.copied
		if current {
			c.copied = false
		}
		c.mu.Unlock()
		if current {
			c.notify()
		}
	})
}

// OnVisible is called when the page becomes visible again. It redraws
// the selection when files are pending and no upload is running, and
// reports whether it did.
func (c *Controller) OnVisible() bool {
	c.mu.Lock()
	redraw := !c.submitting && len(c.pending) > 0
	c.mu.Unlock()

	if redraw {
		c.notify()
	}
	return redraw
}

func (c *Controller) Progress() (percent int, visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(math.Round(c.progress)), c.showProgress
}
