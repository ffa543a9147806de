package graphql

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/internal/core/ports"
)

var _ ports.CatService = (*fakeCatService)(nil)
var _ ports.UserService = (*fakeUserService)(nil)

// fakeCatService returns canned values and records what the resolvers passed.
type fakeCatService struct {
	cats     map[string]*domain.Cat
	users    map[string]*domain.User
	err      error
	ownerErr error

	calls      []string
	principal  domain.Principal
	created    ports.CreateCatInput
	updated    ports.UpdateCatInput
	area       domain.Area
	ownerCalls int
}

func newFakeCatService(cats ...*domain.Cat) *fakeCatService {
	f := &fakeCatService{cats: map[string]*domain.Cat{}, users: map[string]*domain.User{}}
	for _, c := range cats {
		f.cats[c.ID] = c
	}
	return f
}

func (f *fakeCatService) Owner(_ context.Context, owner domain.Owner) (*domain.User, error) {
	f.ownerCalls++
	if u, ok := owner.Resolved(); ok {
		return u, nil
	}
	if f.ownerErr != nil {
		return nil, f.ownerErr
	}
	return f.users[owner.ID()], nil
}

func (f *fakeCatService) ListCats(_ context.Context) ([]*domain.Cat, error) {
	f.calls = append(f.calls, "ListCats")
	out := make([]*domain.Cat, 0, len(f.cats))
	for _, c := range f.cats {
		out = append(out, c)
	}
	return out, f.err
}

func (f *fakeCatService) GetCat(_ context.Context, id string) (*domain.Cat, error) {
	f.calls = append(f.calls, "GetCat")
	if f.err != nil {
		return nil, f.err
	}
	return f.cats[id], nil
}

func (f *fakeCatService) ListCatsByOwner(_ context.Context, ownerID string) ([]*domain.Cat, error) {
	f.calls = append(f.calls, "ListCatsByOwner")
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Cat
	for _, c := range f.cats {
		if c.Owner.ID() == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatService) ListCatsByArea(_ context.Context, area domain.Area) ([]*domain.Cat, error) {
	f.calls = append(f.calls, "ListCatsByArea")
	f.area = area
	return nil, f.err
}

func (f *fakeCatService) CreateCat(_ context.Context, p domain.Principal, in ports.CreateCatInput) (*domain.Cat, error) {
	f.calls = append(f.calls, "CreateCat")
	f.principal, f.created = p, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Cat{
		ID:        "new",
		Name:      in.Name,
		Weight:    in.Weight,
		Birthdate: in.Birthdate,
		Location:  in.Location,
		Filename:  in.Filename,
		Owner:     domain.OwnerRef(p.ID),
	}, nil
}

func (f *fakeCatService) UpdateCat(_ context.Context, p domain.Principal, in ports.UpdateCatInput) (*domain.Cat, error) {
	f.calls = append(f.calls, "UpdateCat")
	f.principal, f.updated = p, in
	if f.err != nil {
		return nil, f.err
	}
	return f.cats[in.ID], nil
}

func (f *fakeCatService) DeleteCat(_ context.Context, p domain.Principal, id string) (*domain.Cat, error) {
	f.calls = append(f.calls, "DeleteCat")
	f.principal = p
	if f.err != nil {
		return nil, f.err
	}
	return f.cats[id], nil
}

func (f *fakeCatService) UpdateCatAsAdmin(_ context.Context, p domain.Principal, in ports.UpdateCatInput) (*domain.Cat, error) {
	f.calls = append(f.calls, "UpdateCatAsAdmin")
	f.principal, f.updated = p, in
	if f.err != nil {
		return nil, f.err
	}
	return f.cats[in.ID], nil
}

func (f *fakeCatService) DeleteCatAsAdmin(_ context.Context, p domain.Principal, id string) (*domain.Cat, error) {
	f.calls = append(f.calls, "DeleteCatAsAdmin")
	f.principal = p
	if f.err != nil {
		return nil, f.err
	}
	return f.cats[id], nil
}

// fakeUserService answers every call with msg/user and records arguments.
type fakeUserService struct {
	users []*domain.User
	token *domain.TokenMessage
	msg   *domain.UserMessage
	err   error

	calls     []string
	principal domain.Principal
	creds     domain.Credentials
	input     domain.UserInput
	target    string
}

func (f *fakeUserService) ListUsers(_ context.Context) ([]*domain.User, error) {
	f.calls = append(f.calls, "ListUsers")
	return f.users, f.err
}

func (f *fakeUserService) GetUser(_ context.Context, id string) (*domain.User, error) {
	f.calls = append(f.calls, "GetUser")
	f.target = id
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserService) CheckToken(_ context.Context, token string) (*domain.TokenMessage, error) {
	f.calls = append(f.calls, "CheckToken")
	f.target = token
	return f.token, f.err
}

func (f *fakeUserService) Login(_ context.Context, creds domain.Credentials) (*domain.TokenMessage, error) {
	f.calls = append(f.calls, "Login")
	f.creds = creds
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

func (f *fakeUserService) Register(_ context.Context, in domain.UserInput) (*domain.UserMessage, error) {
	f.calls = append(f.calls, "Register")
	f.input = in
	return f.msg, f.err
}

func (f *fakeUserService) UpdateUser(_ context.Context, p domain.Principal, in domain.UserInput) (*domain.UserMessage, error) {
	f.calls = append(f.calls, "UpdateUser")
	f.principal, f.input = p, in
	return f.msg, f.err
}

func (f *fakeUserService) DeleteUser(_ context.Context, p domain.Principal) (*domain.UserMessage, error) {
	f.calls = append(f.calls, "DeleteUser")
	f.principal = p
	return f.msg, f.err
}

func (f *fakeUserService) UpdateUserAsAdmin(_ context.Context, p domain.Principal, in domain.UserInput) (*domain.UserMessage, error) {
	f.calls = append(f.calls, "UpdateUserAsAdmin")
	f.principal, f.input = p, in
	return f.msg, f.err
}

func (f *fakeUserService) DeleteUserAsAdmin(_ context.Context, p domain.Principal, id string) (*domain.UserMessage, error) {
	f.calls = append(f.calls, "DeleteUserAsAdmin")
	f.principal, f.target = p, id
	return f.msg, f.err
}

// memoryQueryStore is an in-process QueryStore.
type memoryQueryStore struct {
	mu      sync.Mutex
	queries map[string]string
}

func newMemoryQueryStore() *memoryQueryStore {
	return &memoryQueryStore{queries: map[string]string{}}
}

func (s *memoryQueryStore) Get(_ context.Context, hash string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queries[hash]
	return q, ok, nil
}

func (s *memoryQueryStore) Put(_ context.Context, hash, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries[hash] = query
	return nil
}

var testLogger = zerolog.Nop()
