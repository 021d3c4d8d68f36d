package uploader

import (
	"math"

	"github.com/dmitrijs2005/docshare/internal/client/view"
	"github.com/dmitrijs2005/docshare/internal/format"
)

// View snapshots the page for rendering.
func (c *Controller) View() view.UploaderView {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := view.UploaderView{
		LinkID:       c.linkID,
		CustomerName: c.customerName,
		CanSubmit:    len(c.pending) > 0 && !c.submitting,
		Submitting:   c.submitting,
	}

	for i, f := range c.pending {
		v.Files = append(v.Files, view.PendingFile{
			Number: i + 1,
			Name:   f.Name,
			Size:   format.FormatSize(f.Size),
			Icon:   format.FileIcon(f.Type),
		})
	}

	if c.showProgress {
		v.Progress = &view.Progress{Percent: int(math.Round(c.progress))}
	}
	if c.success != nil {
		v.Success = &view.SuccessPanel{
			Message: format.Plural(c.success.count, "file") + " uploaded successfully",
			URL:     c.success.url,
			Copied:  c.copied,
		}
	}
	return v
}
