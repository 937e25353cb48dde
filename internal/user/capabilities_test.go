package user

import "testing"

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RolePlayer, CapUploadVideo, true},
		{RoleParent, CapManagePlayerProfile, true},
		{RolePlayer, CapBrowsePlayers, false},
		{RoleScout, CapBrowsePlayers, true},
		{RoleCoach, CapRatePlayers, true},
		{RoleAdmin, CapBrowsePlayers, true},
		{RoleAdmin, CapRatePlayers, false},
		{RoleAdmin, CapModerateVideos, true},
		{RoleScout, CapModerateVideos, false},
		{Role("ghost"), CapBrowsePlayers, false},
	}
	for _, tc := range cases {
		if got := tc.role.Can(tc.cap); got != tc.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tc.role, tc.cap, got, tc.want)
		}
	}
}

func TestSelfAssignableExcludesAdmin(t *testing.T) {
	for _, r := range SelfAssignable() {
		if r == RoleAdmin {
			t.Fatal("admin must not be self-assignable")
		}
		if !r.Valid() {
			t.Fatalf("%s is not a valid role", r)
		}
	}
}
