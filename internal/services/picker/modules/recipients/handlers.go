package recipients

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/recipients/internal/services/picker/module"
	"github.com/louisbranch/recipients/internal/services/picker/platform/httpx"
	"github.com/louisbranch/recipients/internal/services/picker/routepath"
	"github.com/louisbranch/recipients/internal/services/picker/templates"
	"github.com/louisbranch/recipients/internal/services/shared/htmx"
)

type handlers struct {
	service service
	logger  *slog.Logger
}

func newHandlers(s service, deps module.Dependencies) handlers {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return handlers{service: s, logger: logger}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := h.service.view()
	h.write(w, r, htmx.RenderPage(w, r, templates.Widget(view), templates.Page(view)))
}

func (h handlers) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	view := h.service.search(r.Context(), r.URL.Query().Get("q"))
	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
		return
	}
	h.write(w, r, htmx.RenderPage(w, r, templates.Suggestions(view), nil))
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	email, ok := h.formValue(w, r, "email")
	if !ok {
		return
	}
	h.respond(w, r, templates.Widget(h.service.toggle(r.Context(), email)))
}

func (h handlers) handleChoose(w http.ResponseWriter, r *http.Request) {
	email, ok := h.formValue(w, r, "email")
	if !ok {
		return
	}
	h.respond(w, r, templates.Widget(h.service.choose(r.Context(), email)))
}

func (h handlers) handleDeselect(w http.ResponseWriter, r *http.Request) {
	email, ok := h.formValue(w, r, "email")
	if !ok {
		return
	}
	h.respond(w, r, templates.Widget(h.service.deselect(r.Context(), email)))
}

func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, templates.Widget(h.service.clear(r.Context())))
}

func (h handlers) handleDomainSelect(w http.ResponseWriter, r *http.Request) {
	domain, ok := h.formValue(w, r, "domain")
	if !ok {
		return
	}
	h.respond(w, r, templates.Widget(h.service.selectDomain(r.Context(), domain)))
}

// formValue reads one posted field. A missing field yields "", which the
// store treats as an unmatched key.
func (h handlers) formValue(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return "", false
	}
	return r.PostForm.Get(key), true
}

func (h handlers) respond(w http.ResponseWriter, r *http.Request, widget templ.Component) {
	h.write(w, r, htmx.RespondAfterMutation(w, r, widget, routepath.Root))
}

func (h handlers) write(_ http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	// Headers are already sent once rendering starts; log and move on.
	h.logger.Error("render picker",
		"path", r.URL.Path,
		"request_id", httpx.RequestIDFromContext(r.Context()),
		"error", err,
	)
}
