package auth

import "testing"

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		roles []string
		want  bool
	}{
		{nil, false},
		{[]string{}, false},
		{[]string{"Guest"}, false},
		{[]string{"Administrator"}, true},
		{[]string{"Guest", "Administrator"}, true},
		{[]string{"administrator"}, false}, // role names are case-sensitive
	}
	for _, tc := range cases {
		if got := IsAdmin(tc.roles); got != tc.want {
			t.Errorf("IsAdmin(%v) = %v, want %v", tc.roles, got, tc.want)
		}
	}
}

func TestCanAccessOwnResource(t *testing.T) {
	t.Parallel()

	cases := []struct {
		caller, target string
		admin          bool
		want           bool
	}{
		{"a", "a", false, true},
		{"a", "b", false, false},
		{"a", "b", true, true},
		{"a", "a", true, true},
	}
	for _, tc := range cases {
		if got := CanAccessOwnResource(tc.caller, tc.target, tc.admin); got != tc.want {
			t.Errorf("CanAccessOwnResource(%q, %q, %v) = %v, want %v",
				tc.caller, tc.target, tc.admin, got, tc.want)
		}
	}
}

func TestCanGrantAdminRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		requested []string
		admin     bool
		want      bool
	}{
		{[]string{"Administrator"}, false, false},
		{[]string{"Administrator"}, true, true},
		{[]string{"Guest"}, false, true},
		{[]string{"Guest"}, true, true},
		{[]string{"Guest", "Administrator"}, false, false},
		{nil, false, true},
	}
	for _, tc := range cases {
		if got := CanGrantAdminRole(tc.requested, tc.admin); got != tc.want {
			t.Errorf("CanGrantAdminRole(%v, %v) = %v, want %v",
				tc.requested, tc.admin, got, tc.want)
		}
	}
}

func TestCallerIdentity_IsAdmin_NilReceiver(t *testing.T) {
	t.Parallel()

	var id *CallerIdentity
	if id.IsAdmin() {
		t.Fatal("nil (anonymous) identity must not be admin")
	}
}
