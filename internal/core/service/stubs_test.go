package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory cat repository
// ---------------------------------------------------------------------------

type stubCatRepo struct {
	cats    map[string]*domain.Cat
	nextID  int
	findErr error
	finds   int // FindByID calls
	updates int
	deletes int
}

func newStubCatRepo(cats ...*domain.Cat) *stubCatRepo {
	r := &stubCatRepo{cats: make(map[string]*domain.Cat)}
	for _, c := range cats {
		clone := *c
		r.cats[c.ID] = &clone
	}
	return r
}

func (r *stubCatRepo) sorted(keep func(*domain.Cat) bool) []*domain.Cat {
	out := []*domain.Cat{}
	for _, c := range r.cats {
		if keep(c) {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubCatRepo) FindAll(_ context.Context) ([]*domain.Cat, error) {
	return r.sorted(func(*domain.Cat) bool { return true }), nil
}

func (r *stubCatRepo) FindByID(_ context.Context, id string) (*domain.Cat, error) {
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.cats[id]
	if !ok {
		return nil, domain.ErrCatNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCatRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Cat, error) {
	return r.sorted(func(c *domain.Cat) bool { return c.Owner.ID() == ownerID }), nil
}

func (r *stubCatRepo) FindWithin(_ context.Context, area domain.Area) ([]*domain.Cat, error) {
	return r.sorted(func(c *domain.Cat) bool { return area.Contains(c.Location) }), nil
}

func (r *stubCatRepo) Insert(_ context.Context, c *domain.Cat) (*domain.Cat, error) {
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("cat-%d", r.nextID)
	r.cats[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCatRepo) Update(_ context.Context, id string, p domain.CatPatch) (*domain.Cat, error) {
	r.updates++
	c, ok := r.cats[id]
	if !ok {
		return nil, nil
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Weight != nil {
		c.Weight = *p.Weight
	}
	if p.Birthdate != nil {
		c.Birthdate = *p.Birthdate
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Filename != nil {
		c.Filename = *p.Filename
	}
	clone := *c
	return &clone, nil
}

func (r *stubCatRepo) Delete(_ context.Context, id string) (*domain.Cat, error) {
	r.deletes++
	c, ok := r.cats[id]
	if !ok {
		return nil, nil
	}
	delete(r.cats, id)
	return c, nil
}

// ---------------------------------------------------------------------------
// Recording user directory
// ---------------------------------------------------------------------------

type directoryCall struct {
	method   string
	token    string
	targetID string
}

type stubDirectory struct {
	users map[string]*domain.User
	err   error
	calls []directoryCall
}

func newStubDirectory(users ...*domain.User) *stubDirectory {
	d := &stubDirectory{users: make(map[string]*domain.User)}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

func (d *stubDirectory) record(c directoryCall) error {
	d.calls = append(d.calls, c)
	return d.err
}

func (d *stubDirectory) ListUsers(_ context.Context) ([]*domain.User, error) {
	if err := d.record(directoryCall{method: "ListUsers"}); err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, u)
	}
	return out, nil
}

func (d *stubDirectory) GetUser(_ context.Context, id string) (*domain.User, error) {
	if err := d.record(directoryCall{method: "GetUser", targetID: id}); err != nil {
		return nil, err
	}
	u, ok := d.users[id]
	if !ok {
		return nil, domain.ErrUpstreamFetch
	}
	return u, nil
}

func (d *stubDirectory) CheckToken(_ context.Context, token string) (*domain.TokenMessage, error) {
	if err := d.record(directoryCall{method: "CheckToken", token: token}); err != nil {
		return nil, err
	}
	return &domain.TokenMessage{Message: "token valid", Token: token}, nil
}

func (d *stubDirectory) Login(_ context.Context, creds domain.Credentials) (*domain.TokenMessage, error) {
	if err := d.record(directoryCall{method: "Login"}); err != nil {
		return nil, err
	}
	return &domain.TokenMessage{Message: "login ok", Token: "t-" + creds.Username}, nil
}

func (d *stubDirectory) Register(_ context.Context, in domain.UserInput) (*domain.UserMessage, error) {
	if err := d.record(directoryCall{method: "Register"}); err != nil {
		return nil, err
	}
	return &domain.UserMessage{Message: "user created", User: &domain.User{UserName: in.UserName}}, nil
}

func (d *stubDirectory) UpdateUser(_ context.Context, token string, in domain.UserInput) (*domain.UserMessage, error) {
	if err := d.record(directoryCall{method: "UpdateUser", token: token}); err != nil {
		return nil, err
	}
	return &domain.UserMessage{Message: "user updated", User: &domain.User{UserName: in.UserName}}, nil
}

func (d *stubDirectory) DeleteUser(_ context.Context, token, targetID string) (*domain.UserMessage, error) {
	if err := d.record(directoryCall{method: "DeleteUser", token: token, targetID: targetID}); err != nil {
		return nil, err
	}
	return &domain.UserMessage{Message: "user deleted"}, nil
}
