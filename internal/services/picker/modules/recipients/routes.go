package recipients

import (
	"net/http"

	"github.com/louisbranch/recipients/internal/services/picker/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	// The search text lives in the shared store, so every browser sees the
	// latest query on its next full render.
	mux.HandleFunc(http.MethodGet+" "+routepath.Suggestions, h.handleSuggestions)
	mux.HandleFunc(http.MethodPost+" "+routepath.Toggle, h.handleToggle)
	mux.HandleFunc(http.MethodPost+" "+routepath.Choose, h.handleChoose)
	mux.HandleFunc(http.MethodPost+" "+routepath.Deselect, h.handleDeselect)
	mux.HandleFunc(http.MethodPost+" "+routepath.Clear, h.handleClear)
	mux.HandleFunc(http.MethodPost+" "+routepath.DomainSelect, h.handleDomainSelect)
}
