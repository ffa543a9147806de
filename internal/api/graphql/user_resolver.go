package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/whiskers/catgraph/internal/core/domain"
)

type credentialsInput struct {
	Username string `arg:"username" validate:"required"`
	Password string `arg:"password" validate:"required"`
}

type userInput struct {
	UserName string `arg:"user_name" validate:"required"`
	Email    string `arg:"email" validate:"required,email"`
	Password string `arg:"password" validate:"required"`
}

type userModifyInput struct {
	UserName *string `arg:"user_name" validate:"omitempty,min=1"`
	Email    *string `arg:"email" validate:"omitempty,email"`
	Password *string `arg:"password" validate:"omitempty,min=1"`
}

func (u userModifyInput) toDomain() domain.UserInput {
	var in domain.UserInput
	if u.UserName != nil {
		in.UserName = *u.UserName
	}
	if u.Email != nil {
		in.Email = *u.Email
	}
	if u.Password != nil {
		in.Password = *u.Password
	}
	return in
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.ListUsers(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, "users", err)
	}
	out := make([]*userResolver, 0, len(users))
	for _, u := range users {
		if u != nil {
			out = append(out, newUserResolver(u))
		}
	}
	return out, nil
}

func (r *Resolver) UserByID(ctx context.Context, args idArgs) (*userResolver, error) {
	u, err := r.users.GetUser(ctx, string(args.ID))
	if err != nil {
		return nil, toGraphQLError(ctx, "userById", err)
	}
	return newUserResolver(u), nil
}

func (r *Resolver) CheckToken(ctx context.Context, args struct{ Token string }) (*tokenMessageResolver, error) {
	msg, err := r.users.CheckToken(ctx, args.Token)
	if err != nil {
		return nil, toGraphQLError(ctx, "checkToken", err)
	}
	return newTokenMessageResolver(msg), nil
}

// ── Mutations ─────────────────────────────────────────────────────────────────

func (r *Resolver) Login(ctx context.Context, args struct{ Credentials credentialsInput }) (*tokenMessageResolver, error) {
	if err := r.validate.Validate(args.Credentials); err != nil {
		return nil, toGraphQLError(ctx, "login", err)
	}
	msg, err := r.users.Login(ctx, domain.Credentials{
		Username: args.Credentials.Username,
		Password: args.Credentials.Password,
	})
	if err != nil {
		return nil, toGraphQLError(ctx, "login", err)
	}
	return newTokenMessageResolver(msg), nil
}

func (r *Resolver) Register(ctx context.Context, args struct{ User userInput }) (*userMessageResolver, error) {
	if err := r.validate.Validate(args.User); err != nil {
		return nil, toGraphQLError(ctx, "register", err)
	}
	msg, err := r.users.Register(ctx, domain.UserInput{
		UserName: args.User.UserName,
		Email:    args.User.Email,
		Password: args.User.Password,
	})
	if err != nil {
		return nil, toGraphQLError(ctx, "register", err)
	}
	return newUserMessageResolver(msg), nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct{ User userModifyInput }) (*userMessageResolver, error) {
	if err := r.validate.Validate(args.User); err != nil {
		return nil, toGraphQLError(ctx, "updateUser", err)
	}
	msg, err := r.users.UpdateUser(ctx, principal(ctx), args.User.toDomain())
	if err != nil {
		return nil, toGraphQLError(ctx, "updateUser", err)
	}
	return newUserMessageResolver(msg), nil
}

func (r *Resolver) DeleteUser(ctx context.Context) (*userMessageResolver, error) {
	msg, err := r.users.DeleteUser(ctx, principal(ctx))
	if err != nil {
		return nil, toGraphQLError(ctx, "deleteUser", err)
	}
	return newUserMessageResolver(msg), nil
}

func (r *Resolver) UpdateUserAsAdmin(ctx context.Context, args struct{ User userModifyInput }) (*userMessageResolver, error) {
	if !principal(ctx).IsAdmin() {
		return nil, toGraphQLError(ctx, "updateUserAsAdmin", domain.ErrNotAuthorized)
	}
	if err := r.validate.Validate(args.User); err != nil {
		return nil, toGraphQLError(ctx, "updateUserAsAdmin", err)
	}
	msg, err := r.users.UpdateUserAsAdmin(ctx, principal(ctx), args.User.toDomain())
	if err != nil {
		return nil, toGraphQLError(ctx, "updateUserAsAdmin", err)
	}
	return newUserMessageResolver(msg), nil
}

func (r *Resolver) DeleteUserAsAdmin(ctx context.Context, args idArgs) (*userMessageResolver, error) {
	msg, err := r.users.DeleteUserAsAdmin(ctx, principal(ctx), string(args.ID))
	if err != nil {
		return nil, toGraphQLError(ctx, "deleteUserAsAdmin", err)
	}
	return newUserMessageResolver(msg), nil
}

// ── Types ─────────────────────────────────────────────────────────────────────

type userResolver struct {
	u *domain.User
}

func newUserResolver(u *domain.User) *userResolver {
	if u == nil {
		return nil
	}
	return &userResolver{u: u}
}

func (r *userResolver) ID() graphql.ID { return graphql.ID(r.u.ID) }

func (r *userResolver) UserName() string { return r.u.UserName }

func (r *userResolver) Email() *string { return optional(r.u.Email) }

func (r *userResolver) Role() *string { return optional(r.u.Role) }

type tokenMessageResolver struct {
	m *domain.TokenMessage
}

func newTokenMessageResolver(m *domain.TokenMessage) *tokenMessageResolver {
	if m == nil {
		return nil
	}
	return &tokenMessageResolver{m: m}
}

func (r *tokenMessageResolver) Token() *string { return optional(r.m.Token) }

func (r *tokenMessageResolver) Message() string { return r.m.Message }

func (r *tokenMessageResolver) User() *userResolver { return newUserResolver(r.m.User) }

type userMessageResolver struct {
	m *domain.UserMessage
}

func newUserMessageResolver(m *domain.UserMessage) *userMessageResolver {
	if m == nil {
		return nil
	}
	return &userMessageResolver{m: m}
}

func (r *userMessageResolver) Message() string { return r.m.Message }

func (r *userMessageResolver) User() *userResolver { return newUserResolver(r.m.User) }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
