package land

import (
	"strings"

	"landlisting/domain/shared"
)

// Status is the lifecycle state of a listing. Closed enumeration.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusSold      Status = "sold"
	StatusReserved  Status = "reserved"
	StatusArchived  Status = "archived"
)

// statusTransitions encodes the allowed transition graph as data.
// No state is terminal: archived can always be revived to draft.
var statusTransitions = map[Status][]Status{
	StatusDraft:     {StatusPublished},
	StatusPublished: {StatusSold, StatusReserved, StatusArchived},
	StatusReserved:  {StatusPublished, StatusSold, StatusArchived},
	StatusSold:      {StatusArchived},
	StatusArchived:  {StatusDraft},
}

// NewStatus validates a raw value against the closed enumeration.
func NewStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := statusTransitions[s]; !ok {
		return "", shared.NewValidationError("LandStatus", "value", "invalid land status: "+raw)
	}
	return s, nil
}

// AllStatuses lists the valid status variants.
func AllStatuses() []Status {
	return []Status{StatusDraft, StatusPublished, StatusSold, StatusReserved, StatusArchived}
}

// IsValid reports membership in the enumeration.
func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }

// CanTransitionTo consults the transition graph.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsPubliclyVisible reports whether the listing appears in public searches.
// Reserved listings stay visible so buyers can see they were beaten to it.
func (s Status) IsPubliclyVisible() bool {
	return s == StatusPublished || s == StatusReserved
}

// IsEditable reports whether content edits are accepted in this state.
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusReserved
}

// IsDeletable reports whether the storage layer may delete the listing.
func (s Status) IsDeletable() bool {
	return s == StatusDraft || s == StatusArchived
}
