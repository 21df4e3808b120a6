package land

import "testing"

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusDraft, StatusPublished},
		{StatusPublished, StatusSold},
		{StatusPublished, StatusReserved},
		{StatusPublished, StatusArchived},
		{StatusReserved, StatusPublished},
		{StatusReserved, StatusSold},
		{StatusReserved, StatusArchived},
		{StatusSold, StatusArchived},
		{StatusArchived, StatusDraft},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s → %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusDraft, StatusSold},
		{StatusDraft, StatusReserved},
		{StatusDraft, StatusArchived},
		{StatusSold, StatusPublished},
		{StatusSold, StatusDraft},
		{StatusArchived, StatusPublished},
		{StatusPublished, StatusDraft},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s → %s should be denied", tc.from, tc.to)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusPublished.IsPubliclyVisible() || !StatusReserved.IsPubliclyVisible() {
		t.Error("published and reserved should be publicly visible")
	}
	if StatusDraft.IsPubliclyVisible() || StatusSold.IsPubliclyVisible() || StatusArchived.IsPubliclyVisible() {
		t.Error("draft, sold and archived should not be publicly visible")
	}

	for _, s := range []Status{StatusDraft, StatusPublished, StatusReserved} {
		if !s.IsEditable() {
			t.Errorf("%s should be editable", s)
		}
	}
	for _, s := range []Status{StatusSold, StatusArchived} {
		if s.IsEditable() {
			t.Errorf("%s should not be editable", s)
		}
	}

	if !StatusDraft.IsDeletable() || !StatusArchived.IsDeletable() {
		t.Error("draft and archived should be deletable")
	}
	if StatusPublished.IsDeletable() || StatusSold.IsDeletable() || StatusReserved.IsDeletable() {
		t.Error("published, sold and reserved should not be deletable")
	}
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus("published")
	if err != nil {
		t.Fatalf("NewStatus failed: %v", err)
	}
	if s != StatusPublished {
		t.Errorf("NewStatus = %q, want published", s)
	}
	if _, err := NewStatus("live"); err == nil {
		t.Error("unknown status should fail")
	}
}
