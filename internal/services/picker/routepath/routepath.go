// Package routepath centralizes picker URL paths.
package routepath

const (
	Root         = "/"
	Health       = "/up"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
)

// Recipient routes.
const (
	RecipientsPrefix = "/recipients/"
	Suggestions      = "/recipients/suggestions"
	Toggle           = "/recipients/toggle"
	Choose           = "/recipients/choose"
	Deselect         = "/recipients/deselect"
	Clear            = "/recipients/clear"
)

// Domain routes.
const (
	DomainsPrefix = "/domains/"
	DomainSelect  = "/domains/select"
)

// Stylesheet is the embedded picker stylesheet URL.
const Stylesheet = StaticPrefix + "picker.css"
