package uploader

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docshare/internal/client/event"
)

// Handlers is the uploader's event table.
func (c *Controller) Handlers() event.Table {
	return event.Table{
		{Name: "add", Usage: "add <path...>", Help: "choose files to upload (replaces the selection)", Run: c.onAdd(false)},
		{Name: "drop", Usage: "drop <dir|path...>", Help: "drop files or whole directories", Run: c.onAdd(true)},
		{Name: "remove", Usage: "remove <n>", Help: "remove file n from the selection", Run: c.onRemove},
		{Name: "name", Usage: "name [customer name]", Help: "set the optional customer name", Run: c.onName},
		{Name: "upload", Usage: "upload", Help: "upload the selected files", Run: c.onUpload},
		{Name: "copy", Usage: "copy", Help: "copy the share link", Run: c.onCopy},
		{Name: "show", Usage: "show", Help: "redraw the page", Run: c.onShow},
	}
}

func (c *Controller) onAdd(expandDirs bool) event.HandlerFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: no paths given", event.ErrUsage)
		}
		files, err := Pick(args, expandDirs)
		if err != nil {
			return err
		}
		c.AddFiles(files)
		return nil
	}
}

func (c *Controller) onRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: remove <n>", event.ErrUsage)
	}
	i, err := event.Index(args[0])
	if err != nil {
		return err
	}
	c.RemoveFile(i)
	return nil
}

func (c *Controller) onName(ctx context.Context, args []string) error {
	c.SetCustomerName(event.Rest(args))
	return nil
}

func (c *Controller) onUpload(ctx context.Context, args []string) error {
	// failures are already alerted and logged
	_ = c.Submit(ctx)
	return nil
}

func (c *Controller) onCopy(ctx context.Context, args []string) error {
	_ = c.CopyLink(ctx)
	return nil
}

func (c *Controller) onShow(ctx context.Context, args []string) error {
	c.notify()
	return nil
}
