package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/docshare/internal/client/client"
	"github.com/dmitrijs2005/docshare/internal/client/config"
	"github.com/dmitrijs2005/docshare/internal/client/event"
	"github.com/dmitrijs2005/docshare/internal/client/localstore"
	"github.com/dmitrijs2005/docshare/internal/client/platform"
	"github.com/dmitrijs2005/docshare/internal/client/uploader"
	"github.com/dmitrijs2005/docshare/internal/client/view"
	"github.com/dmitrijs2005/docshare/internal/client/viewer"
	"github.com/dmitrijs2005/docshare/internal/logging"

	_ "modernc.org/sqlite"
)

// App is one interactive client: a controller, its event table and the
// resources behind them.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	in      io.Reader
	out     io.Writer
	prompt  string
	init    func(ctx context.Context) error
	table   event.Table
	visible func()
}

// env holds what both apps share.
type env struct {
	cfg   *config.Config
	log   logging.Logger
	db    *sql.DB
	store *localstore.Store
	api   *client.HTTPClient
	loc   *platform.MemoryLocation
	alert *platform.ConsoleAlerter
	scr   *screen
}

func newEnv(ctx context.Context, cfg *config.Config, out, errOut io.Writer) (*env, error) {
	log := logging.New(errOut, logging.Options{
		Backend: cfg.LogBackend,
		Format:  cfg.LogFormat,
		Level:   cfg.LogLevel,
	})

	db, err := localstore.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DBPath, "error", err)
		return nil, err
	}

	loc, err := platform.NewLocation(cfg.PageURL, func(u *url.URL) {
		log.Debug(ctx, "page url replaced", "url", u.String())
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("invalid page url: %w", err)
	}

	return &env{
		cfg:   cfg,
		log:   log,
		db:    db,
		store: localstore.NewStore(localstore.NewSQLiteRepository(db), log),
		api:   client.NewHTTPClient(cfg.APIBase, http.DefaultClient),
		loc:   loc,
		alert: platform.NewConsoleAlerter(out),
		scr:   newScreen(out),
	}, nil
}

// NewUploaderApp wires the upload page.
func NewUploaderApp(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	e, err := newEnv(ctx, cfg, out, errOut)
	if err != nil {
		return nil, err
	}

	var ctrl *uploader.Controller
	ctrl = uploader.New(uploader.Deps{
		API:       e.api,
		Sessions:  e.store,
		Location:  e.loc,
		Alerter:   e.alert,
		Clipboard: platform.SystemClipboard{},
		Fallback:  platform.NewTerminalCopier(out, view.IsTerminal(out)),
		Logger:    e.log.With("app", "uploader"),
		OnChange: func() {
			if err := e.scr.uploader(ctrl.View()); err != nil {
				e.log.Error(ctx, "render failed", "error", err)
			}
		},
	}, uploader.Options{
		ProgressInterval:  cfg.ProgressInterval,
		ProgressHideDelay: cfg.ProgressHideDelay,
		CopyFeedback:      cfg.CopyFeedback,
	})

	a := e.app(in, out, "upload", ctrl.Init, ctrl.Handlers())
	a.visible = func() { ctrl.OnVisible() }
	return a, nil
}

// NewViewerApp wires the share page.
func NewViewerApp(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	e, err := newEnv(ctx, cfg, out, errOut)
	if err != nil {
		return nil, err
	}

	var ctrl *viewer.Controller
	ctrl = viewer.New(viewer.Deps{
		API:      e.api,
		Viewed:   e.store,
		Location: e.loc,
		Alerter:  e.alert,
		Browser:  platform.NewSystemBrowser(e.api.Fetch, filepath.Join(os.TempDir(), "docshare")),
		Saver:    platform.NewDirSaver(cfg.DownloadDir),
		Logger:   e.log.With("app", "viewer"),
		OnChange: func() {
			if err := e.scr.viewer(ctrl.View()); err != nil {
				e.log.Error(ctx, "render failed", "error", err)
			}
		},
	}, viewer.Options{PrintDelay: cfg.PrintDelay})

	return e.app(in, out, "view", ctrl.Init, ctrl.Handlers()), nil
}

func (e *env) app(in io.Reader, out io.Writer, prompt string, init func(context.Context) error, table event.Table) *App {
	return &App{
		config: e.cfg,
		log:    e.log,
		db:     e.db,
		in:     in,
		out:    out,
		prompt: prompt,
		init:   init,
		table:  table,
	}
}

// Run initialises the page and blocks in the REPL until the user exits,
// input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("docshare (type 'help' for commands)")
	if err := a.init(ctx); err != nil {
		a.log.Warn(ctx, "page initialisation incomplete", "error", err)
	}

	if a.visible != nil {
		stop := watchVisibility(ctx, a.visible)
		defer stop()
	}

	scanner := bufio.NewScanner(a.in)
	runREPL(ctx, a.withPrompts(scanner), a.prompt, scanner)
	return nil
}

// withPrompts makes "name" without arguments ask for the name
// interactively instead of clearing it.
func (a *App) withPrompts(scanner *bufio.Scanner) event.Table {
	table := make(event.Table, len(a.table))
	copy(table, a.table)

	for i, h := range table {
		if h.Name != "name" {
			continue
		}
		run := h.Run
		table[i].Run = func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return run(ctx, args)
			}
			name, err := GetSimpleText(scanner, "Customer name (optional)", a.out)
			if err != nil {
				return err
			}
			return run(ctx, []string{name})
		}
	}
	return table
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
