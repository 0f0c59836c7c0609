package dictcc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/launcher-plugins/internal/config"
)

const englishGermanPage = `<html><body><table>
<tr><td class="td2" dir="ltr"><b>Englisch</b></td><td class="td2" dir="ltr"><b>Deutsch</b></td></tr>
<tr><td class="td7nl" dir="ltr"><a>dog</a></td><td class="td7nl" dir="ltr"><a>Hund</a> <var>{m}</var></td></tr>
<tr><td class="td7nl" dir="ltr"><a>hound</a></td><td class="td7nl" dir="ltr"><a>Hund</a></td></tr>
<tr><td class="td7nl" dir="ltr"></td></tr>
</table></body></html>`

type fakeSite struct {
	srv      *httptest.Server
	hits     atomic.Int32
	mu       sync.Mutex
	lastPath string
	lastS    string
	lastRawQ string
	lastUA   string
}

func newFakeSite(t *testing.T, status int, body string) *fakeSite {
	t.Helper()
	f := &fakeSite{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.mu.Lock()
		f.lastPath = r.URL.Path
		f.lastS = r.URL.Query().Get("s")
		f.lastRawQ = r.URL.RawQuery
		f.lastUA = r.Header.Get("User-Agent")
		f.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeSite) client() *Client {
	return NewClient(f.srv.URL+"/{pair}/", config.DefaultUserAgent, 2*time.Second)
}

func TestClient_Request(t *testing.T) {
	site := newFakeSite(t, http.StatusOK, "<html></html>")

	body, err := site.client().Fetch(context.Background(), "heißer Hund", "DE", "en")
	require.NoError(t, err)

	site.mu.Lock()
	defer site.mu.Unlock()
	assert.Equal(t, "<html></html>", body)
	assert.Equal(t, "/deen/", site.lastPath)
	assert.Equal(t, "heißer Hund", site.lastS)
	assert.Contains(t, site.lastRawQ, "+", "spaces are form-encoded")
	assert.Equal(t, config.DefaultUserAgent, site.lastUA)
}

func TestClient_URL(t *testing.T) {
	c := NewClient("https://{pair}.dict.cc/", "ua", time.Second)
	assert.Equal(t, "https://defr.dict.cc/", c.URL("de", "FR"))
}

func TestClient_HTTPError(t *testing.T) {
	site := newFakeSite(t, http.StatusInternalServerError, "oops")

	_, err := site.client().Fetch(context.Background(), "Hund", "de", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDictionary_TranslateCorrectsOrder(t *testing.T) {
	site := newFakeSite(t, http.StatusOK, englishGermanPage)

	res, err := NewDictionary(site.client()).Translate(context.Background(), "Hund", "de", "en")
	require.NoError(t, err)

	assert.Equal(t, "Deutsch", res.FromLang)
	assert.Equal(t, "Englisch", res.ToLang)
	assert.Equal(t, []Pair{
		{Source: "Hund {m}", Target: "dog"},
		{Source: "Hund", Target: "hound"},
	}, res.Pairs)
}

func TestDictionary_UnavailableLanguage(t *testing.T) {
	site := newFakeSite(t, http.StatusOK, englishGermanPage)

	_, err := NewDictionary(site.client()).Translate(context.Background(), "Hund", "de", "xx")

	var langErr *UnavailableLanguageError
	require.True(t, errors.As(err, &langErr))
	assert.Equal(t, "xx", langErr.Code)
	assert.Contains(t, err.Error(), "bg, de, en, es, fr, it, pt, ro, ru, sv")
	assert.Equal(t, int32(0), site.hits.Load(), "no request for an unsupported pair")
}

func TestDictionary_UnrecognizedLayout(t *testing.T) {
	site := newFakeSite(t, http.StatusOK, "<html><body>maintenance</body></html>")

	res, err := NewDictionary(site.client()).Translate(context.Background(), "Hund", "de", "en")
	assert.ErrorIs(t, err, ErrUnrecognizedLayout)
	assert.Zero(t, res.Len())
}

func TestLabelCode(t *testing.T) {
	for label, want := range map[string]string{
		"Deutsch":    "de",
		" Englisch ": "en",
		"English":    "en",
		"german":     "de",
		"Russisch":   "ru",
	} {
		got, err := LabelCode(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}

	_, err := LabelCode("Klingonisch")
	var labelErr *UnknownLabelError
	assert.True(t, errors.As(err, &labelErr))
}
