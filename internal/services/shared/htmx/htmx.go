// Package htmx renders components for htmx partial requests and full page
// loads alike.
package htmx

import (
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage writes fragment for HTMX requests and full otherwise. A nil
// component falls back to the other one.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component) error {
	target := full
	if IsHTMXRequest(r) {
		target = fragment
	}
	if target == nil {
		target = fragment
		if target == nil {
			target = full
		}
	}
	if target == nil {
		return nil
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return target.Render(r.Context(), w)
}

// RespondAfterMutation renders fragment for HTMX requests; plain form posts
// are redirected to location so a reload does not resubmit them.
func RespondAfterMutation(w http.ResponseWriter, r *http.Request, fragment templ.Component, location string) error {
	if !IsHTMXRequest(r) {
		http.Redirect(w, r, location, http.StatusSeeOther)
		return nil
	}
	return RenderPage(w, r, fragment, nil)
}
