package model

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"user", RoleUser},
		{"USER", RoleUser},
		{"  Manager ", RoleManager},
		{"accountant", RoleAccountant},
		{"admin", RoleUnknown},
		{"", RoleUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := ParseRole(tc.raw); got != tc.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRoleKnown(t *testing.T) {
	for _, role := range []Role{RoleUser, RoleManager, RoleAccountant} {
		if !role.Known() {
			t.Fatalf("expected %q to be known", role)
		}
	}
	if RoleUnknown.Known() {
		t.Fatal("expected unknown role to be rejected")
	}
	if Role("supervisor").Known() {
		t.Fatal("expected arbitrary role to be rejected")
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range []string{"pending", "approved", "rejected"} {
		status, ok := ParseOrderStatus(raw)
		if !ok || string(status) != raw {
			t.Fatalf("expected %q to parse, got %q ok=%v", raw, status, ok)
		}
	}

	for _, raw := range []string{"shipped", "PENDING", "", "cancelled"} {
		if _, ok := ParseOrderStatus(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestOrderUpdateEmpty(t *testing.T) {
	if !(OrderUpdate{}).Empty() {
		t.Fatal("expected zero update to be empty")
	}
	name := "Widget"
	if (OrderUpdate{Name: &name}).Empty() {
		t.Fatal("expected update with a field to be non-empty")
	}
}
