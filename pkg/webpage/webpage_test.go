package webpage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html><head><title>Trail Shoes Guide</title></head>
<body>
<nav><a href="/">Home</a> <a href="/shop">Shop</a></nav>
<article>
<h1>Trail Shoes Guide</h1>
<p>Choosing trail running shoes depends on terrain, distance and the kind of grip you need on wet rock.
Lugs between four and six millimetres work for most mixed trails, while deeper lugs suit mud.</p>
<p>Cushioning matters on long runs. A rock plate protects the foot on technical descents without
adding much weight, and a wider toe box helps when feet swell late in an ultra.</p>
<p>Finally, try shoes in the afternoon and bring the socks you race in so the fit is realistic.</p>
</article>
<footer>Copyright Example Shop</footer>
</body></html>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	text, err := NewFetcher(Config{}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "rock plate")
	assert.NotContains(t, text, "\n\n\n")
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher(Config{}).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestCollapseBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", collapseBlankLines("a\n\n\n  \nb"))
}
