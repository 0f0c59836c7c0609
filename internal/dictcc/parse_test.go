package dictcc

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suggestionsPage = `<html><body><table>
<tr><td class="td2">Deutsch</td><td class="td2">Englisch</td><td class="td2">ignored</td></tr>
<tr>
  <td class="td3nl"><a href="?s=Hund">Hund</a> <a href="?s=Hunde">Hunde</a></td>
  <td class="td3nl"><a href="?s=dog">dog</a> <a href="?s=hound">hound</a> <a href="?s=cur">cur</a></td>
</tr>
</table></body></html>`

const translationsPage = `<html><body><table>
<tr><td class="td2" dir="ltr"><b>Englisch</b> 3 Treffer</td><td class="td2" dir="ltr"> <b>Deutsch</b></td></tr>
<tr><td class="td7nl" dir="ltr"><a href="#">dog</a></td><td class="td7nl" dir="ltr"><a href="#">Hund</a> <var>{m}</var></td></tr>
<tr><td class="td7nl" dir="ltr"><a>hot</a> <a>dog</a></td><td class="td7nl" dir="ltr"><a>Hot</a> <a><b>Dog</b></a> <var>{m}</var></td></tr>
<tr><td class="td7nl" dir="ltr"><a>trailing</a></td></tr>
</table></body></html>`

func mustDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		name string
		page string
		want Layout
	}{
		{name: "suggestions", page: suggestionsPage, want: LayoutSuggestions},
		{name: "translations", page: translationsPage, want: LayoutTranslations},
		{name: "empty", page: "<html><body><p>Keine Treffer</p></body></html>", want: LayoutUnknown},
		{
			name: "single_translation_cell",
			page: `<table><tr><td class="td7nl" dir="ltr">x</td></tr></table>`,
			want: LayoutUnknown,
		},
		{
			name: "rtl_cells_do_not_count",
			page: `<table><tr><td class="td7nl" dir="rtl">x</td><td class="td7nl" dir="rtl">y</td></tr></table>`,
			want: LayoutUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLayout(mustDoc(t, tt.page)))
		})
	}
}

func TestParsePage_Suggestions(t *testing.T) {
	res, layout, err := ParsePage(strings.NewReader(suggestionsPage))
	require.NoError(t, err)

	assert.Equal(t, LayoutSuggestions, layout)
	assert.Equal(t, "Deutsch", res.FromLang)
	assert.Equal(t, "Englisch", res.ToLang)
	assert.Equal(t, []Pair{
		{Source: "Hund", Target: "dog"},
		{Source: "Hunde", Target: "hound"},
	}, res.Pairs, "columns are zipped to the shorter one")
}

func TestParsePage_Translations(t *testing.T) {
	res, layout, err := ParsePage(strings.NewReader(translationsPage))
	require.NoError(t, err)

	assert.Equal(t, LayoutTranslations, layout)
	assert.Equal(t, "Englisch", res.FromLang)
	assert.Equal(t, "Deutsch", res.ToLang)
	assert.Equal(t, []Pair{
		{Source: "dog", Target: "Hund {m}"},
		{Source: "hot dog", Target: "Hot Dog {m}"},
	}, res.Pairs)
}

func TestParsePage_Unrecognized(t *testing.T) {
	res, layout, err := ParsePage(strings.NewReader("<html><body>nothing here</body></html>"))
	assert.ErrorIs(t, err, ErrUnrecognizedLayout)
	assert.Equal(t, LayoutUnknown, layout)
	assert.Zero(t, res.Len())
}

func TestParsePage_LayoutChanged(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{
			name: "suggestions_without_labels",
			page: `<table><tr><td class="td3nl"><a>a</a></td><td class="td3nl"><a>b</a></td></tr></table>`,
		},
		{
			name: "translations_with_three_labels",
			page: `<table>
<tr><td class="td2" dir="ltr">Englisch</td><td class="td2" dir="ltr">Deutsch</td><td class="td2" dir="ltr">Extra</td></tr>
<tr><td class="td7nl" dir="ltr"><a>a</a></td><td class="td7nl" dir="ltr"><a>b</a></td></tr>
</table>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePage(strings.NewReader(tt.page))
			assert.ErrorIs(t, err, ErrLayoutChanged)
		})
	}
}

func TestLayoutString(t *testing.T) {
	assert.Equal(t, "suggestions", LayoutSuggestions.String())
	assert.Equal(t, "translations", LayoutTranslations.String())
	assert.Equal(t, "unknown", LayoutUnknown.String())
}
