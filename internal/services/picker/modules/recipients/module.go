// Package recipients serves the recipient picker page and its actions.
package recipients

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/recipients/internal/services/picker/module"
	"github.com/louisbranch/recipients/internal/services/picker/routepath"
)

// Module provides the picker page and recipient mutation routes.
type Module struct{}

// New returns a recipients module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "recipients" }

// Mount wires recipient route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Store == nil {
		return module.Mount{}, errors.New("recipient store is required")
	}
	mux := http.NewServeMux()
	svc := newService(deps)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
