package recipient

import (
	"strings"

	"github.com/samber/lo"
)

// Snapshot is the full picker state at one point in time.
type Snapshot struct {
	recipients []Recipient
	searchText string
}

// NewSnapshot copies recipients into a new snapshot with empty search text.
func NewSnapshot(recipients []Recipient) Snapshot {
	return Snapshot{recipients: cloneRecipients(recipients)}
}

// Recipients returns a copy of the ordered recipient sequence.
func (s Snapshot) Recipients() []Recipient {
	return cloneRecipients(s.recipients)
}

// SearchText returns the current search string.
func (s Snapshot) SearchText() string {
	return s.searchText
}

// Len reports the number of recipients.
func (s Snapshot) Len() int {
	return len(s.recipients)
}

// SelectedCount reports how many recipients are selected.
func (s Snapshot) SelectedCount() int {
	return lo.CountBy(s.recipients, func(r Recipient) bool { return r.IsSelected })
}

// ToggleSelection flips the selection of the recipient matching email.
// Unknown emails leave the selection unchanged.
func ToggleSelection(s Snapshot, email string) Snapshot {
	return s.update(
		func(r Recipient) bool { return r.Email == email },
		func(r Recipient) Recipient { r.IsSelected = !r.IsSelected; return r },
	)
}

// SelectAllInDomain selects every recipient whose email ends with "@"+domain.
// It never deselects.
func SelectAllInDomain(s Snapshot, domain string) Snapshot {
	suffix := "@" + domain
	return s.update(
		func(r Recipient) bool { return strings.HasSuffix(r.Email, suffix) },
		selectRecipient,
	)
}

// Deselect clears the selection of the recipient matching email.
func Deselect(s Snapshot, email string) Snapshot {
	return s.update(
		func(r Recipient) bool { return r.Email == email },
		deselectRecipient,
	)
}

// ClearAll deselects every recipient.
func ClearAll(s Snapshot) Snapshot {
	return s.update(func(Recipient) bool { return true }, deselectRecipient)
}

// SetSearchText replaces the search string. Any string is accepted.
func SetSearchText(s Snapshot, text string) Snapshot {
	return Snapshot{recipients: cloneRecipients(s.recipients), searchText: text}
}

// ChooseSuggestion applies an autocomplete pick: the search text is cleared
// and the chosen email is toggled.
func ChooseSuggestion(s Snapshot, email string) Snapshot {
	return ToggleSelection(SetSearchText(s, ""), email)
}

func (s Snapshot) update(match func(Recipient) bool, apply func(Recipient) Recipient) Snapshot {
	next := lo.Map(s.recipients, func(r Recipient, _ int) Recipient {
		if match(r) {
			return apply(r)
		}
		return r
	})
	return Snapshot{recipients: next, searchText: s.searchText}
}

func selectRecipient(r Recipient) Recipient {
	r.IsSelected = true
	return r
}

func deselectRecipient(r Recipient) Recipient {
	r.IsSelected = false
	return r
}

func cloneRecipients(recipients []Recipient) []Recipient {
	if recipients == nil {
		return []Recipient{}
	}
	out := make([]Recipient, len(recipients))
	copy(out, recipients)
	return out
}
