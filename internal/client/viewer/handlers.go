package viewer

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docshare/internal/client/event"
)

// Handlers is the viewer's event table. File numbers refer to the grid of
// the selected customer.
func (c *Controller) Handlers() event.Table {
	return event.Table{
		{Name: "list", Usage: "list", Help: "show the customer list", Run: c.onShow},
		{Name: "select", Usage: "select <n>", Help: "select customer n", Run: c.onSelect},
		{Name: "open", Usage: "open <n>", Help: "preview file n", Run: c.onFile(c.OpenPreview)},
		{Name: "close", Usage: "close", Help: "close the preview", Run: c.onClose},
		{Name: "download", Usage: "download <n>", Help: "save file n to the download directory", Run: c.onFile(c.Download)},
		{Name: "print", Usage: "print <n>", Help: "print file n", Run: c.onFile(c.Print)},
		{Name: "pdownload", Usage: "pdownload", Help: "download the previewed file", Run: c.onPreview(c.DownloadFromPreview)},
		{Name: "pprint", Usage: "pprint", Help: "print the previewed file", Run: c.onPreview(c.PrintFromPreview)},
		{Name: "search", Usage: "search [text]", Help: "filter customers; no text clears", Run: c.onSearch},
		{Name: "refresh", Usage: "refresh", Help: "reload the files", Run: c.onRefresh},
		{Name: "show", Usage: "show", Help: "redraw the page", Run: c.onShow},
	}
}

func (c *Controller) onShow(ctx context.Context, args []string) error {
	c.notify()
	return nil
}

func (c *Controller) onSelect(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: select <n>", event.ErrUsage)
	}
	i, err := event.Index(args[0])
	if err != nil {
		return err
	}
	if !c.SelectIndex(i) {
		return fmt.Errorf("no customer #%s", args[0])
	}
	return nil
}

type fileAction func(ctx context.Context, customer string, index int) error

func (c *Controller) onFile(action fileAction) event.HandlerFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: expected a file number", event.ErrUsage)
		}
		customer, ok := c.Selected()
		if !ok {
			return fmt.Errorf("%w: use select <n> first", ErrNoSelection)
		}
		i, err := event.Index(args[0])
		if err != nil {
			return err
		}
		return action(ctx, customer, i)
	}
}

func (c *Controller) onPreview(action func(ctx context.Context) error) event.HandlerFunc {
	return func(ctx context.Context, args []string) error {
		return action(ctx)
	}
}

func (c *Controller) onClose(ctx context.Context, args []string) error {
	c.ClosePreview(DismissKey)
	return nil
}

func (c *Controller) onSearch(ctx context.Context, args []string) error {
	c.Search(event.Rest(args))
	return nil
}

func (c *Controller) onRefresh(ctx context.Context, args []string) error {
	// outcomes are shown in the sidebar
	_ = c.Refresh(ctx)
	return nil
}
