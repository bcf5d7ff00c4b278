package templates

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/recipients/internal/recipient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func seedView() recipient.View {
	return recipient.Project(recipient.NewSnapshot(recipient.Seed()))
}

func TestPageWrapsWidget(t *testing.T) {
	t.Parallel()

	out := render(t, Page(seedView()))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Email Manager</title>")
	assert.Contains(t, out, `href="/static/picker.css"`)
	assert.Contains(t, out, `id="picker"`)
	assert.True(t, strings.HasSuffix(out, "</main></body></html>"))
}

func TestWidgetRendersDomainCheckboxState(t *testing.T) {
	t.Parallel()

	out := render(t, Widget(seedView()))

	assert.Contains(t, out, `checked hx-post="/domains/select" hx-target="#picker" hx-swap="outerHTML" hx-vals="{&#34;domain&#34;:&#34;hello.com&#34;}"`)
	assert.Contains(t, out, `<input type="checkbox" hx-post="/domains/select" hx-target="#picker" hx-swap="outerHTML" hx-vals="{&#34;domain&#34;:&#34;qwerty.com&#34;}"`)
	assert.Contains(t, out, `checked hx-post="/recipients/toggle" hx-target="#picker" hx-swap="outerHTML" hx-vals="{&#34;email&#34;:&#34;brian@qwerty.com&#34;}"`)
}

func TestWidgetSelectedPanelListsOnlySelected(t *testing.T) {
	t.Parallel()

	out := render(t, Widget(seedView()))
	_, selectedPanel, ok := strings.Cut(out, `<section class="panel right-panel">`)
	require.True(t, ok)

	assert.Contains(t, selectedPanel, "<b>qwerty.com</b>")
	assert.Contains(t, selectedPanel, "<b>hello.com</b>")
	assert.NotContains(t, selectedPanel, "timescale.com")
	assert.NotContains(t, selectedPanel, "awesome.com")
	assert.Contains(t, selectedPanel, `aria-label="Remove kate@qwerty.com"`)
	assert.Less(t, strings.Index(selectedPanel, "qwerty.com"), strings.Index(selectedPanel, "hello.com"))
}

func TestSuggestionsRenderUnselectedMatches(t *testing.T) {
	t.Parallel()

	view := recipient.Project(recipient.SetSearchText(recipient.NewSnapshot(recipient.Seed()), "ja"))
	out := render(t, Suggestions(view))

	assert.True(t, strings.HasPrefix(out, `<ul class="suggestions" role="listbox" id="suggestions">`))
	assert.Contains(t, out, `value="james@qwerty.com"`)
	assert.Contains(t, out, `value="jane@awesome.com"`)
	assert.NotContains(t, out, "ann@timescale.com")
}

func TestWidgetEscapesUserText(t *testing.T) {
	t.Parallel()

	snap := recipient.SetSearchText(recipient.NewSnapshot([]recipient.Recipient{
		{Email: `<b>x</b>@evil"dom`, IsSelected: true},
	}), `"><script>`)
	out := render(t, Widget(recipient.Project(snap)))

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>x</b>")
	assert.Contains(t, out, `value="&#34;&gt;&lt;script&gt;"`)
}

func TestSuggestionsAndActionsEscapeEmails(t *testing.T) {
	t.Parallel()

	hostile := `x"><i>@evil.io`
	view := recipient.Project(recipient.SetSearchText(recipient.NewSnapshot([]recipient.Recipient{
		{Email: hostile},
	}), "evil"))
	require.Len(t, view.Suggestions, 1)

	for _, out := range []string{render(t, Suggestions(view)), render(t, Widget(view))} {
		assert.NotContains(t, out, "<i>")
		assert.NotContains(t, out, `x">`)
		assert.Contains(t, out, "x&#34;&gt;&lt;i&gt;@evil.io")
	}
	assert.Contains(t, render(t, Widget(view)), `hx-vals="{&#34;email&#34;:`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWidgetReportsWriteErrors(t *testing.T) {
	t.Parallel()

	err := Widget(seedView()).Render(context.Background(), failingWriter{})
	assert.EqualError(t, err, "closed")
	err = Page(seedView()).Render(context.Background(), failingWriter{})
	assert.EqualError(t, err, "closed")
}
