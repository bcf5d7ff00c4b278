// Package module defines the contract between the picker server and the
// feature modules it mounts.
package module

import (
	"log/slog"
	"net/http"

	"github.com/louisbranch/recipients/internal/recipient"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies carries shared runtime collaborators into modules.
type Dependencies struct {
	Store  *recipient.Store
	Logger *slog.Logger
	Tracer trace.Tracer
}

// Mount is a module's mounted handler and the prefix it owns.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a mountable feature area of the picker.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
