package identity

import (
	"context"
	"fmt"

	"github.com/feedline-dev/feedline/internal/api"
	"github.com/feedline-dev/feedline/internal/domain"
)

// ProfileAPI is the slice of the remote client the provider needs.
type ProfileAPI interface {
	ListProfiles(ctx context.Context) ([]api.UserRecord, error)
}

// Provider resolves the current actor once and hands out the profile as a
// value. Components receive it through injection, not via shared state.
type Provider struct {
	api     ProfileAPI
	current *domain.Profile
}

func New(api ProfileAPI) *Provider {
	return &Provider{api: api}
}

// Load fetches the profile list and keeps the first record as the current
// actor, matching the identity collaborator's contract.
func (p *Provider) Load(ctx context.Context) error {
	profiles, err := p.api.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("loading actor profile: %w", err)
	}
	if len(profiles) == 0 {
		return fmt.Errorf("identity collaborator returned no profiles")
	}
	p.current = profileFromRecord(profiles[0])
	return nil
}

// Current returns the actor profile. ok is false until Load succeeded.
func (p *Provider) Current() (domain.Profile, bool) {
	if p.current == nil {
		return domain.Profile{}, false
	}
	return *p.current, true
}

func profileFromRecord(r api.UserRecord) *domain.Profile {
	return &domain.Profile{
		Id:        r.Id,
		Username:  r.Username,
		FullName:  r.Fullname,
		AvatarRef: r.ProfileImg,
	}
}
