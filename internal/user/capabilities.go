package user

// Capability is an action a role may be permitted to perform.
type Capability string

const (
	CapManagePlayerProfile Capability = "player_profile:manage"
	CapUploadVideo         Capability = "video:upload"
	CapBrowsePlayers       Capability = "players:browse"
	CapRatePlayers         Capability = "players:rate"
	CapModerateVideos      Capability = "video:moderate"
)

var capabilities = map[Role][]Capability{
	RolePlayer: {CapManagePlayerProfile, CapUploadVideo},
	RoleParent: {CapManagePlayerProfile, CapUploadVideo},
	RoleCoach:  {CapBrowsePlayers, CapRatePlayers},
	RoleScout:  {CapBrowsePlayers, CapRatePlayers},
	RoleAdmin:  {CapBrowsePlayers, CapModerateVideos},
}

// Can reports whether the role's capability set includes c.
func (r Role) Can(c Capability) bool {
	for _, granted := range capabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

func (r Role) Valid() bool {
	_, ok := capabilities[r]
	return ok
}

// SelfAssignable lists the roles a user may pick at registration.
func SelfAssignable() []Role {
	return []Role{RolePlayer, RoleParent, RoleCoach, RoleScout}
}
