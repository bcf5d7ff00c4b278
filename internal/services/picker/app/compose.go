// Package app composes picker modules into a root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/recipients/internal/services/picker/module"
)

// ComposeInput carries the modules to mount and their shared dependencies.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Compose mounts every module on root, rejecting nil modules, empty mounts
// and prefixes claimed twice.
func Compose(root *http.ServeMux, input ComposeInput) error {
	if root == nil {
		return fmt.Errorf("root mux is required")
	}
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return err
		}
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}
	return nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	if prefix == "" {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
