package view

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/docshare/internal/format"
)

// PendingFile is one row of the uploader's selection list.
type PendingFile struct {
	Number int
	Name   string
	Size   string
	Icon   format.Icon
}

type Progress struct {
	Percent int
}

// SuccessPanel is shown after an upload went through.
type SuccessPanel struct {
	Message string
	URL     string
	Copied  bool
}

type UploaderView struct {
	LinkID       string
	Files        []PendingFile
	CustomerName string
	CanSubmit    bool
	Submitting   bool
	Progress     *Progress
	Success      *SuccessPanel
}

// CustomerRow is one entry of the viewer's sidebar.
type CustomerRow struct {
	Number    int
	Name      string
	Initials  string
	FileCount string
	Unviewed  int
	Selected  bool
	Hidden    bool
}

// Label is the name as displayed; unnamed customers still get a row.
func (r CustomerRow) Label() string {
	if r.Name == "" {
		return "(unnamed)"
	}
	return r.Name
}

// Text is the row's visible text, the haystack for the search box.
func (r CustomerRow) Text() string {
	parts := []string{r.Initials, r.Label(), r.FileCount}
	if r.Unviewed > 0 {
		parts = append(parts, strconv.Itoa(r.Unviewed))
	}
	return strings.Join(parts, " ")
}

// Matches reports whether the row stays visible for query.
func (r CustomerRow) Matches(query string) bool {
	return strings.Contains(strings.ToLower(r.Text()), strings.ToLower(query))
}

// FileCard is one file in the selected customer's grid.
type FileCard struct {
	Number   int
	Name     string
	Size     string
	Uploaded string
	Icon     format.Icon
	Viewed   bool
}

// CustomerPanel is the main panel once a customer is selected.
type CustomerPanel struct {
	Initials  string
	Name      string
	FileCount string
	TimeLeft  string
	Files     []FileCard
}

type Preview struct {
	Title  string
	Source string
}

type ViewerView struct {
	LinkID    string
	ExpiresAt string
	Loading   bool
	Message   string
	Notice    string
	Query     string
	Customers []CustomerRow
	Selected  *CustomerPanel
	Preview   *Preview
}

// VisibleCustomers returns the rows not hidden by the search filter.
func (v ViewerView) VisibleCustomers() []CustomerRow {
	out := make([]CustomerRow, 0, len(v.Customers))
	for _, r := range v.Customers {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}
