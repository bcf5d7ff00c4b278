// Package templates renders the recipient picker markup.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/recipients/internal/recipient"
	"github.com/louisbranch/recipients/internal/services/picker/routepath"
	"github.com/louisbranch/recipients/internal/services/shared/htmx"
)

// Element ids targeted by htmx swaps.
const (
	WidgetID      = "picker"
	SuggestionsID = "suggestions"
)

// AppName is shown in the page heading and title.
const AppName = "Email Manager"

// htmxScript is the htmx build the page loads.
const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Page renders the full document around the widget.
func Page(view recipient.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(htmx.TitleTag(AppName))
		hw.raw(`<link rel="stylesheet"`)
		hw.attr("href", routepath.Stylesheet)
		hw.raw(`><script`)
		hw.attr("src", htmxScript)
		hw.raw(`></script></head><body><main class="container"><h2>`)
		hw.text(AppName)
		hw.raw(`</h2>`)
		if hw.err != nil {
			return hw.err
		}
		if err := Widget(view).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

// Widget renders the available and selected panels.
func Widget(view recipient.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="picker"`)
		hw.attr("id", WidgetID)
		hw.raw(`>`)
		writeAvailablePanel(hw, view)
		writeSelectedPanel(hw, view)
		hw.raw(`</div>`)
		return hw.err
	})
}

// Suggestions renders the autocomplete option list.
func Suggestions(view recipient.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		writeSuggestions(hw, view.Suggestions)
		return hw.err
	})
}

func writeAvailablePanel(hw *htmlWriter, view recipient.View) {
	hw.raw(`<section class="panel left-panel"><header><b>Available Recipients</b>`)
	hw.raw(`<form class="autocomplete" method="post"`)
	hw.attr("action", routepath.Choose)
	hw.swap(routepath.Choose)
	hw.raw(`><input type="search" name="q" autocomplete="off" placeholder="Search or enter email"`)
	hw.attr("value", view.SearchText)
	hw.attr("hx-get", routepath.Suggestions)
	hw.attr("hx-trigger", "input changed delay:150ms, search")
	hw.attr("hx-target", "#"+SuggestionsID)
	hw.attr("hx-swap", "outerHTML")
	hw.raw(`>`)
	writeSuggestions(hw, view.Suggestions)
	hw.raw(`</form></header><ul class="domains">`)
	for _, group := range view.Available {
		hw.raw(`<li class="domain"><label><input type="checkbox"`)
		if group.AllSelected() {
			hw.raw(` checked`)
		}
		hw.swap(routepath.DomainSelect)
		hw.vals("domain", group.Domain)
		hw.raw(`> `)
		hw.text(group.Domain)
		hw.raw(`</label><ul class="members">`)
		for _, r := range group.Recipients {
			hw.raw(`<li><label><input type="checkbox"`)
			if r.IsSelected {
				hw.raw(` checked`)
			}
			hw.swap(routepath.Toggle)
			hw.vals("email", r.Email)
			hw.raw(`> `)
			hw.text(r.Email)
			hw.raw(`</label></li>`)
		}
		hw.raw(`</ul></li>`)
	}
	hw.raw(`</ul></section>`)
}

func writeSuggestions(hw *htmlWriter, suggestions []recipient.Recipient) {
	hw.raw(`<ul class="suggestions" role="listbox"`)
	hw.attr("id", SuggestionsID)
	hw.raw(`>`)
	for _, r := range suggestions {
		hw.raw(`<li role="option"><button type="submit" name="email"`)
		hw.attr("value", r.Email)
		hw.raw(`>`)
		hw.text(r.Email)
		hw.raw(`</button></li>`)
	}
	hw.raw(`</ul>`)
}

func writeSelectedPanel(hw *htmlWriter, view recipient.View) {
	hw.raw(`<section class="panel right-panel"><header><b>Selected Recipients</b>`)
	hw.raw(`<form method="post"`)
	hw.attr("action", routepath.Clear)
	hw.raw(`><button type="submit" class="link danger"`)
	hw.swap(routepath.Clear)
	hw.raw(`>Clear All</button></form></header><ul class="domains">`)
	for _, group := range view.Selected {
		hw.raw(`<li class="domain"><b>`)
		hw.text(group.Domain)
		hw.raw(`</b><ul class="members">`)
		for _, r := range group.Recipients {
			hw.raw(`<li>`)
			hw.text(r.Email)
			hw.raw(`<form method="post"`)
			hw.attr("action", routepath.Deselect)
			hw.raw(`><input type="hidden" name="email"`)
			hw.attr("value", r.Email)
			hw.raw(`><button type="submit" class="icon danger"`)
			hw.attr("aria-label", "Remove "+r.Email)
			hw.swap(routepath.Deselect)
			hw.vals("email", r.Email)
			hw.raw(`>&#x1F5D1;</button></form></li>`)
		}
		hw.raw(`</ul></li>`)
	}
	hw.raw(`</ul></section>`)
}
