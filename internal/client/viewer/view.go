package viewer

import (
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/view"
	"github.com/dmitrijs2005/docshare/internal/format"
)

// View snapshots the page for rendering.
func (c *Controller) View() view.ViewerView {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.deps.Now()
	v := view.ViewerView{
		LinkID:  c.linkID,
		Loading: c.loading,
		Message: c.message,
		Notice:  c.notice,
		Query:   c.query,
	}
	if !c.expiresAt.IsZero() && c.message == "" {
		v.ExpiresAt = format.FormatExpiry(c.expiresAt.Time)
	}

	for i, g := range c.customers {
		row := view.CustomerRow{
			Number:    i + 1,
			Name:      g.Name,
			Initials:  format.Initials(g.Name),
			FileCount: format.Plural(len(g.Files), "file"),
			Unviewed:  c.viewed.Unviewed(g.Files),
			Selected:  c.hasSel && g.Name == c.selected,
		}
		row.Hidden = !row.Matches(c.query)
		v.Customers = append(v.Customers, row)
	}

	if g, ok := c.customers.Find(c.selected); ok && c.hasSel {
		v.Selected = &view.CustomerPanel{
			Initials:  format.Initials(g.Name),
			Name:      g.Name,
			FileCount: format.Plural(len(g.Files), "file"),
			TimeLeft:  format.TimeLeft(g.ExpiresAt().Time, now),
			Files:     c.cards(g.Files),
		}
	}

	if c.modalOpen {
		if f, err := c.file(c.previewCustomer, c.previewIndex); err == nil {
			v.Preview = &view.Preview{Title: f.Filename, Source: c.frameSrc}
		}
	}
	return v
}

func (c *Controller) cards(files []models.FileRecord) []view.FileCard {
	out := make([]view.FileCard, len(files))
	for i, f := range files {
		card := view.FileCard{
			Number: i + 1,
			Name:   f.Filename,
			Size:   format.FormatSize(f.Size),
			Icon:   format.FileIcon(f.Mimetype),
			Viewed: c.viewed.Has(f.ID),
		}
		if !f.UploadedAt.IsZero() {
			card.Uploaded = format.FormatDateTime(f.UploadedAt.Time)
		}
		out[i] = card
	}
	return out
}
