package format

import "strings"

// Icon names a file-type icon. The values are the icon class names used by
// the web pages, so they double as stable identifiers.
type Icon string

const (
	IconBlank   Icon = "bi-file-earmark"
	IconPDF     Icon = "bi-file-earmark-pdf-fill"
	IconImage   Icon = "bi-file-earmark-image-fill"
	IconWord    Icon = "bi-file-earmark-word-fill"
	IconExcel   Icon = "bi-file-earmark-excel-fill"
	IconPPT     Icon = "bi-file-earmark-ppt-fill"
	IconText    Icon = "bi-file-earmark-text-fill"
	IconZip     Icon = "bi-file-earmark-zip-fill"
	IconGeneric Icon = "bi-file-earmark-fill"
)

var iconRules = []struct {
	needles []string
	icon    Icon
}{
	{[]string{"pdf"}, IconPDF},
	{[]string{"image"}, IconImage},
	{[]string{"word", "document"}, IconWord},
	{[]string{"excel", "spreadsheet"}, IconExcel},
	{[]string{"powerpoint", "presentation"}, IconPPT},
	{[]string{"text"}, IconText},
	{[]string{"zip", "compressed"}, IconZip},
}

// FileIcon maps a MIME type to an icon. Rules are checked in order and the
// first substring hit wins, so "application/vnd.openxmlformats-officedocument.
// spreadsheetml.sheet" resolves to the word icon because it contains
// "document" before "spreadsheet" is considered.
func FileIcon(mime string) Icon {
	if mime == "" {
		return IconBlank
	}
	for _, rule := range iconRules {
		for _, n := range rule.needles {
			if strings.Contains(mime, n) {
				return rule.icon
			}
		}
	}
	return IconGeneric
}

var glyphs = map[Icon]string{
	IconBlank:   "[ ]",
	IconPDF:     "[PDF]",
	IconImage:   "[IMG]",
	IconWord:    "[DOC]",
	IconExcel:   "[XLS]",
	IconPPT:     "[PPT]",
	IconText:    "[TXT]",
	IconZip:     "[ZIP]",
	IconGeneric: "[FILE]",
}

// Glyph is the short terminal label for the icon.
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return glyphs[IconGeneric]
}
