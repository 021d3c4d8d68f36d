package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/docshare/internal/client/view"
)

// screen serialises redraws; controllers fire them from timer goroutines
// as well as from the REPL.
type screen struct {
	mu         sync.Mutex
	w          io.Writer
	style      view.Style
	inProgress bool
}

func newScreen(w io.Writer) *screen {
	return &screen{w: w, style: view.StyleFor(w)}
}

// uploader draws v. While an upload runs only the progress line is
// rewritten in place.
func (s *screen) uploader(v view.UploaderView) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.Submitting && v.Progress != nil {
		s.inProgress = true
		_, err := fmt.Fprintf(s.w, "\rUploading... %3d%%", v.Progress.Percent)
		return err
	}
	if s.inProgress {
		s.inProgress = false
		fmt.Fprintln(s.w)
	}
	fmt.Fprintln(s.w)
	return view.RenderUploader(s.w, v, s.style)
}

func (s *screen) viewer(v view.ViewerView) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.w)
	return view.RenderViewer(s.w, v, s.style)
}
