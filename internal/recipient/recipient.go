// Package recipient holds the recipient selection state and the pure views
// derived from it.
//
// A Snapshot is immutable once produced. Every mutation maps the previous
// snapshot into a new one, and the Store publishes whole snapshots so readers
// never observe a half-applied change.
package recipient

import "strings"

// Recipient is an email address plus its selection flag.
type Recipient struct {
	Email      string
	IsSelected bool
}

// Domain returns the grouping key of the recipient's email.
func (r Recipient) Domain() string {
	return Domain(r.Email)
}

// Domain returns the segment of email following the first "@" and preceding
// any later "@". Emails without "@" have an empty domain.
func Domain(email string) string {
	_, rest, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}
	domain, _, _ := strings.Cut(rest, "@")
	return domain
}

// Seed returns the fixed recipient list the picker starts with.
func Seed() []Recipient {
	return []Recipient{
		{Email: "ann@timescale.com", IsSelected: false},
		{Email: "bob@timescale.com", IsSelected: false},
		{Email: "brian@qwerty.com", IsSelected: true},
		{Email: "james@qwerty.com", IsSelected: false},
		{Email: "jane@awesome.com", IsSelected: false},
		{Email: "kate@qwerty.com", IsSelected: true},
		{Email: "mike@hello.com", IsSelected: true},
	}
}
