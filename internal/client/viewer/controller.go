package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/client"
	"github.com/dmitrijs2005/docshare/internal/client/localstore"
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/platform"
	"github.com/dmitrijs2005/docshare/internal/logging"
	"github.com/dmitrijs2005/docshare/internal/shared"
)

const (
	msgNoLinkID    = "No link ID provided"
	msgLoadFailed  = "Failed to load files"
	msgExpired     = "This link has expired"
	msgNoFiles     = "No files found"
	msgPopups      = "Please allow popups to use the print function"
	errorMsgPrefix = "Error: "
)

var (
	ErrNoSuchFile  = errors.New("no such file")
	ErrNoSelection = errors.New("no customer selected")
	ErrNoPreview   = errors.New("nothing previewed")
)

// Dismiss says where a request to close the preview came from.
type Dismiss int

const (
	// DismissBackdrop is a click outside the modal content.
	DismissBackdrop Dismiss = iota + 1
	// DismissKey is the escape key.
	DismissKey
	// DismissContent is a click that landed on the content itself.
	DismissContent
)

// ViewedStore persists the per-link viewed sets.
type ViewedStore interface {
	LoadViewed(ctx context.Context, linkID string) (*localstore.ViewedSet, error)
	SaveViewed(ctx context.Context, linkID string, set *localstore.ViewedSet) error
}

type Options struct {
	PrintDelay time.Duration
}

type Deps struct {
	API      client.Client
	Viewed   ViewedStore
	Location platform.Location
	Alerter  platform.Alerter
	Browser  platform.Browser
	Saver    platform.Saver
	Logger   logging.Logger
	OnChange func()
	Now      func() time.Time
}

type Controller struct {
	deps Deps
	opts Options

	mu        sync.Mutex
	linkID    string
	customers models.Customers
	expiresAt models.Timestamp
	viewed    *localstore.ViewedSet
	selected  string
	hasSel    bool
	message   string
	notice    string
	loading   bool
	query     string

	// the file the preview was last opened on; survives closing
	previewCustomer string
	previewIndex    int
	hasPreview      bool
	modalOpen       bool
	frameSrc        string
}

func New(d Deps, opts Options) *Controller {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if opts.PrintDelay <= 0 {
		opts.PrintDelay = 500 * time.Millisecond
	}
	return &Controller{deps: d, opts: opts, viewed: localstore.NewViewedSet()}
}

func (c *Controller) notify() {
	if c.deps.OnChange != nil {
		c.deps.OnChange()
	}
}

// Init reads the link ID from the page URL, restores the viewed set and
// loads the manifest. Without a link ID it only shows the sidebar message.
func (c *Controller) Init(ctx context.Context) error {
	linkID := platform.LinkID(c.deps.Location.URL())
	if linkID == "" {
		c.mu.Lock()
		c.message = msgNoLinkID
		c.mu.Unlock()
		c.notify()
		return shared.ErrNoLinkID
	}

	viewed, err := c.deps.Viewed.LoadViewed(ctx, linkID)
	if err != nil {
		c.deps.Logger.Warn(ctx, "failed to load viewed files", "link_id", linkID, "error", err)
		viewed = localstore.NewViewedSet()
	}

	c.mu.Lock()
	c.linkID = linkID
	c.viewed = viewed
	c.mu.Unlock()

	return c.Load(ctx)
}

// Load fetches the manifest from scratch and replaces the customer list.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	linkID := c.linkID
	if linkID == "" {
		c.mu.Unlock()
		return shared.ErrNoLinkID
	}
	c.loading = true
	c.message = ""
	c.customers = nil
	c.mu.Unlock()
	c.notify()

	m, err := c.deps.API.Files(ctx, linkID)

	c.mu.Lock()
	c.loading = false
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		c.message = msgLoadFailed
	case err != nil:
		c.message = errorMsgPrefix + err.Error()
	case m.Expired:
		c.message = msgExpired
		err = shared.ErrLinkExpired
	case len(m.Customers) == 0:
		c.message = msgNoFiles
	default:
		c.customers = m.Customers
		c.expiresAt = m.ExpiresAt
	}
	if _, ok := c.customers.Find(c.selected); !ok {
		c.selected, c.hasSel = "", false
	}
	c.mu.Unlock()

	if err != nil {
		c.deps.Logger.Warn(ctx, "failed to load files", "link_id", linkID, "error", err)
	}
	c.notify()
	return err
}

// Refresh re-runs Load.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// SelectCustomer makes name the only selected customer.
func (c *Controller) SelectCustomer(name string) bool {
	c.mu.Lock()
	if _, ok := c.customers.Find(name); !ok {
		c.mu.Unlock()
		return false
	}
	c.selected, c.hasSel = name, true
	c.mu.Unlock()

	c.notify()
	return true
}

// SelectIndex selects the customer shown at position i of the list.
func (c *Controller) SelectIndex(i int) bool {
	c.mu.Lock()
	if i < 0 || i >= len(c.customers) {
		c.mu.Unlock()
		return false
	}
	name := c.customers[i].Name
	c.mu.Unlock()

	return c.SelectCustomer(name)
}

// Selected returns the selected customer name.
func (c *Controller) Selected() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.hasSel
}

func (c *Controller) file(customer string, index int) (models.FileRecord, error) {
	g, ok := c.customers.Find(customer)
	if !ok || index < 0 || index >= len(g.Files) {
		return models.FileRecord{}, fmt.Errorf("%w: %q #%d", ErrNoSuchFile, customer, index+1)
	}
	return g.Files[index], nil
}

// markViewed adds id to the viewed set and persists it. Callers hold mu.
func (c *Controller) markViewed(ctx context.Context, id models.FileID) {
	if !c.viewed.Add(id) {
		return
	}
	if err := c.deps.Viewed.SaveViewed(ctx, c.linkID, c.viewed); err != nil {
		c.deps.Logger.Warn(ctx, "failed to save viewed files", "link_id", c.linkID, "error", err)
	}
}

// Viewed reports whether the file has been opened, downloaded or printed.
func (c *Controller) Viewed(id models.FileID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewed.Has(id)
}

// OpenPreview marks the file viewed and shows it in the preview modal.
func (c *Controller) OpenPreview(ctx context.Context, customer string, index int) error {
	c.mu.Lock()
	f, err := c.file(customer, index)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.markViewed(ctx, f.ID)
	c.previewCustomer, c.previewIndex, c.hasPreview = customer, index, true
	c.selected, c.hasSel = customer, true
	c.modalOpen = true
	c.frameSrc = f.DownloadURL
	c.mu.Unlock()

	c.notify()
	return nil
}

// ClosePreview hides the modal when the dismissal came from the backdrop
// or the keyboard. Clicks on the content itself are ignored.
func (c *Controller) ClosePreview(origin Dismiss) bool {
	if origin != DismissBackdrop && origin != DismissKey {
		return false
	}

	c.mu.Lock()
	c.modalOpen = false
	c.frameSrc = ""
	c.mu.Unlock()

	c.notify()
	return true
}

// Download marks the file viewed and saves it under its original name.
// When fetching or saving fails the URL is opened in a new tab instead.
func (c *Controller) Download(ctx context.Context, customer string, index int) error {
	c.mu.Lock()
	f, err := c.file(customer, index)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.markViewed(ctx, f.ID)
	c.mu.Unlock()
	c.notify()

	path, err := c.save(ctx, f)
	if err != nil {
		c.deps.Logger.Error(ctx, "download failed", "file_id", f.ID, "url", f.DownloadURL, "error", err)
		if terr := c.deps.Browser.OpenTab(f.DownloadURL); terr != nil {
			c.deps.Logger.Error(ctx, "failed to open download url", "url", f.DownloadURL, "error", terr)
		}
		c.setNotice("Opened " + f.DownloadURL)
		return err
	}

	c.deps.Logger.Info(ctx, "file saved", "file_id", f.ID, "path", path)
	c.setNotice(fmt.Sprintf("Saved %s to %s", f.Filename, path))
	return nil
}

func (c *Controller) save(ctx context.Context, f models.FileRecord) (string, error) {
	data, err := c.deps.API.Fetch(ctx, f.DownloadURL)
	if err != nil {
		return "", err
	}
	return c.deps.Saver.Save(f.Filename, data)
}

func (c *Controller) setNotice(s string) {
	c.mu.Lock()
	c.notice = s
	c.mu.Unlock()
	c.notify()
}

// Print marks the file viewed, opens it in a new window and prints it
// PrintDelay after the window has loaded.
func (c *Controller) Print(ctx context.Context, customer string, index int) error {
	c.mu.Lock()
	f, err := c.file(customer, index)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.markViewed(ctx, f.ID)
	c.mu.Unlock()

	w, err := c.deps.Browser.OpenWindow(ctx, f.DownloadURL)
	if err != nil {
		c.deps.Logger.Warn(ctx, "print window not opened", "url", f.DownloadURL, "error", err)
		c.deps.Alerter.Alert(msgPopups)
		c.notify()
		return err
	}

	w.OnLoad(func() {
		time.AfterFunc(c.opts.PrintDelay, func() {
			if err := w.Print(); err != nil {
				c.deps.Logger.Error(ctx, "print failed", "file_id", f.ID, "error", err)
			}
		})
	})

	c.notify()
	return nil
}

func (c *Controller) previewTarget() (string, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasPreview {
		return "", 0, ErrNoPreview
	}
	return c.previewCustomer, c.previewIndex, nil
}

// DownloadFromPreview downloads the file the preview was last opened on.
func (c *Controller) DownloadFromPreview(ctx context.Context) error {
	customer, index, err := c.previewTarget()
	if err != nil {
		return err
	}
	return c.Download(ctx, customer, index)
}

// PrintFromPreview prints the file the preview was last opened on.
func (c *Controller) PrintFromPreview(ctx context.Context) error {
	customer, index, err := c.previewTarget()
	if err != nil {
		return err
	}
	return c.Print(ctx, customer, index)
}

// Search filters the customer list by the visible text of each row.
func (c *Controller) Search(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()

	c.notify()
}
