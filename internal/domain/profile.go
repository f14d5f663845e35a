package domain

// Profile is the current actor's identity, fetched once from the identity
// collaborator and passed into components at composition time.
type Profile struct {
	Id        ProfileId
	Username  string
	FullName  string
	AvatarRef string
}

// DisplayName prefers the full name and falls back to the handle.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Username
}
