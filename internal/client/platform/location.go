package platform

import (
	"net/url"
	"strings"
	"sync"
)

// Location is the current page URL. Replace swaps it without a reload.
type Location interface {
	URL() *url.URL
	Replace(u *url.URL)
}

type MemoryLocation struct {
	mu        sync.Mutex
	u         *url.URL
	onReplace func(*url.URL)
}

// NewLocation parses raw as the initial URL. onReplace, if set, is told
// about every replacement.
func NewLocation(raw string, onReplace func(*url.URL)) (*MemoryLocation, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &MemoryLocation{u: u, onReplace: onReplace}, nil
}

func (l *MemoryLocation) URL() *url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := *l.u
	return &c
}

func (l *MemoryLocation) Replace(u *url.URL) {
	c := *u
	l.mu.Lock()
	l.u = &c
	l.mu.Unlock()

	if l.onReplace != nil {
		l.onReplace(&c)
	}
}

// LinkID reads the "id" query parameter.
func LinkID(u *url.URL) string {
	return u.Query().Get("id")
}

// WithLinkID returns a copy of u whose query is exactly ?id=linkID.
func WithLinkID(u *url.URL, linkID string) *url.URL {
	c := *u
	c.RawQuery = url.Values{"id": {linkID}}.Encode()
	return &c
}

// SwapSegment replaces the first occurrence of from with to in the full
// URL text. Uploader and viewer pages live under matching paths, so the
// share link is derived this way.
func SwapSegment(u *url.URL, from, to string) string {
	return strings.Replace(u.String(), from, to, 1)
}
