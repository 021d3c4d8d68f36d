package platform

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocation_Replace(t *testing.T) {
	var seen []string
	loc, err := NewLocation("https://share.example.com/uploader/", func(u *url.URL) {
		seen = append(seen, u.String())
	})
	require.NoError(t, err)
	assert.Equal(t, "", LinkID(loc.URL()))

	loc.Replace(WithLinkID(loc.URL(), "ab12cd34"))

	assert.Equal(t, "ab12cd34", LinkID(loc.URL()))
	assert.Equal(t, []string{"https://share.example.com/uploader/?id=ab12cd34"}, seen)
}

func TestMemoryLocation_URLIsCopy(t *testing.T) {
	loc, err := NewLocation("https://share.example.com/viewer/?id=x", nil)
	require.NoError(t, err)

	u := loc.URL()
	u.RawQuery = "id=y"

	assert.Equal(t, "x", LinkID(loc.URL()))
}

func TestWithLinkID_DropsOtherParams(t *testing.T) {
	u, err := url.Parse("https://h/uploader/?id=old&x=1#frag")
	require.NoError(t, err)

	got := WithLinkID(u, "new")
	assert.Equal(t, "id=new", got.RawQuery)
	assert.Equal(t, "https://h/uploader/?id=old&x=1#frag", u.String())
}

func TestSwapSegment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"path", "https://h/uploader/?id=a", "https://h/viewer/?id=a"},
		{"first only", "https://uploader.h/uploader/?id=a", "https://viewer.h/uploader/?id=a"},
		{"absent", "https://h/share/?id=a", "https://h/share/?id=a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, SwapSegment(u, "uploader", "viewer"))
		})
	}
}
