package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/feedline-dev/feedline/internal/api"
)

// Mock structs
type MockProfileAPI struct {
	ListProfilesFunc func(ctx context.Context) ([]api.UserRecord, error)
}

func (m *MockProfileAPI) ListProfiles(ctx context.Context) ([]api.UserRecord, error) {
	if m.ListProfilesFunc != nil {
		return m.ListProfilesFunc(ctx)
	}
	return []api.UserRecord{{Id: "u1", Username: "rina"}}, nil
}

func TestProviderLoad(t *testing.T) {
	provider := New(&MockProfileAPI{})

	if _, ok := provider.Current(); ok {
		t.Error("actor should be unknown before Load")
	}

	if err := provider.Load(context.Background()); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	actor, ok := provider.Current()
	if !ok {
		t.Fatal("actor should be known after Load")
	}
	if actor.Id != "u1" || actor.Username != "rina" {
		t.Errorf("Unexpected actor: %+v", actor)
	}
}

func TestProviderLoad_FirstProfileWins(t *testing.T) {
	mock := &MockProfileAPI{
		ListProfilesFunc: func(ctx context.Context) ([]api.UserRecord, error) {
			return []api.UserRecord{
				{Id: "u1", Username: "rina", Fullname: "Rina K"},
				{Id: "u2", Username: "other"},
			}, nil
		},
	}
	provider := New(mock)
	if err := provider.Load(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	actor, _ := provider.Current()
	if actor.Id != "u1" {
		t.Errorf("expected first profile, got %+v", actor)
	}
	if actor.DisplayName() != "Rina K" {
		t.Errorf("DisplayName should prefer full name, got %s", actor.DisplayName())
	}
}

func TestProviderLoad_Errors(t *testing.T) {
	mockError := errors.New("mock ListProfilesFunc")
	mock := &MockProfileAPI{
		ListProfilesFunc: func(ctx context.Context) ([]api.UserRecord, error) {
			return nil, mockError
		},
	}
	provider := New(mock)
	if err := provider.Load(context.Background()); err == nil || !errors.Is(err, mockError) {
		t.Errorf("Expected %v, got: %v", mockError, err)
	}
	if _, ok := provider.Current(); ok {
		t.Error("actor should stay unknown after failed Load")
	}

	mock.ListProfilesFunc = func(ctx context.Context) ([]api.UserRecord, error) {
		return []api.UserRecord{}, nil
	}
	if err := provider.Load(context.Background()); err == nil {
		t.Error("expected error for empty profile list")
	}
}
