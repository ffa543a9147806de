package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/internal/core/ports"
)

// ── Arguments ─────────────────────────────────────────────────────────────────

type coordinatesInput struct {
	Lat float64 `arg:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `arg:"lng" validate:"gte=-180,lte=180"`
}

func (c coordinatesInput) latLng() domain.LatLng {
	return domain.LatLng{Lat: c.Lat, Lng: c.Lng}
}

type locationInput struct {
	Type        string    `arg:"type" validate:"eq=Point"`
	Coordinates []float64 `arg:"coordinates" validate:"len=2"`
}

func (l locationInput) point() domain.Point {
	return domain.Point{Lng: l.Coordinates[0], Lat: l.Coordinates[1]}
}

type areaArgs struct {
	TopRight   coordinatesInput `arg:"topRight"`
	BottomLeft coordinatesInput `arg:"bottomLeft"`
}

type createCatArgs struct {
	CatName   string        `arg:"cat_name" validate:"required,max=100"`
	Weight    float64       `arg:"weight" validate:"gt=0"`
	Birthdate graphql.Time  `arg:"birthdate"`
	Location  locationInput `arg:"location"`
	Filename  *string       `arg:"filename"`
	Owner     *graphql.ID   `arg:"owner"`
}

type updateCatArgs struct {
	ID        graphql.ID     `arg:"id"`
	CatName   *string        `arg:"cat_name" validate:"omitempty,min=1,max=100"`
	Weight    *float64       `arg:"weight" validate:"omitempty,gt=0"`
	Birthdate *graphql.Time  `arg:"birthdate"`
	Location  *locationInput `arg:"location"`
	Filename  *string        `arg:"filename"`
}

func (a updateCatArgs) input() ports.UpdateCatInput {
	patch := domain.CatPatch{
		Name:     a.CatName,
		Weight:   a.Weight,
		Filename: a.Filename,
	}
	if a.Birthdate != nil {
		t := a.Birthdate.Time
		patch.Birthdate = &t
	}
	if a.Location != nil {
		p := a.Location.point()
		patch.Location = &p
	}
	return ports.UpdateCatInput{ID: string(a.ID), Patch: patch}
}

type idArgs struct {
	ID graphql.ID
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (r *Resolver) Cats(ctx context.Context) ([]*catResolver, error) {
	cats, err := r.cats.ListCats(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, "cats", err)
	}
	return r.catList(cats), nil
}

func (r *Resolver) CatByID(ctx context.Context, args idArgs) (*catResolver, error) {
	cat, err := r.cats.GetCat(ctx, string(args.ID))
	if err != nil {
		return nil, toGraphQLError(ctx, "catById", err)
	}
	return r.cat(cat), nil
}

func (r *Resolver) CatsByOwner(ctx context.Context, args struct{ Owner graphql.ID }) ([]*catResolver, error) {
	cats, err := r.cats.ListCatsByOwner(ctx, string(args.Owner))
	if err != nil {
		return nil, toGraphQLError(ctx, "catsByOwner", err)
	}
	return r.catList(cats), nil
}

func (r *Resolver) CatsByArea(ctx context.Context, args areaArgs) ([]*catResolver, error) {
	if err := r.validate.Validate(args); err != nil {
		return nil, toGraphQLError(ctx, "catsByArea", err)
	}
	area := domain.NewArea(args.TopRight.latLng(), args.BottomLeft.latLng())
	cats, err := r.cats.ListCatsByArea(ctx, area)
	if err != nil {
		return nil, toGraphQLError(ctx, "catsByArea", err)
	}
	return r.catList(cats), nil
}

// ── Mutations ─────────────────────────────────────────────────────────────────

func (r *Resolver) CreateCat(ctx context.Context, args createCatArgs) (*catResolver, error) {
	if err := r.validate.Validate(args); err != nil {
		return nil, toGraphQLError(ctx, "createCat", err)
	}
	in := ports.CreateCatInput{
		Name:      args.CatName,
		Weight:    args.Weight,
		Birthdate: args.Birthdate.Time,
		Location:  args.Location.point(),
	}
	if args.Filename != nil {
		in.Filename = *args.Filename
	}
	if args.Owner != nil {
		in.Owner = string(*args.Owner)
	}

	cat, err := r.cats.CreateCat(ctx, principal(ctx), in)
	if err != nil {
		return nil, toGraphQLError(ctx, "createCat", err)
	}
	return r.cat(cat), nil
}

func (r *Resolver) UpdateCat(ctx context.Context, args updateCatArgs) (*catResolver, error) {
	if err := r.validate.Validate(args); err != nil {
		return nil, toGraphQLError(ctx, "updateCat", err)
	}
	cat, err := r.cats.UpdateCat(ctx, principal(ctx), args.input())
	if err != nil {
		return nil, toGraphQLError(ctx, "updateCat", err)
	}
	return r.cat(cat), nil
}

func (r *Resolver) DeleteCat(ctx context.Context, args idArgs) (*catResolver, error) {
	cat, err := r.cats.DeleteCat(ctx, principal(ctx), string(args.ID))
	if err != nil {
		return nil, toGraphQLError(ctx, "deleteCat", err)
	}
	return r.cat(cat), nil
}

func (r *Resolver) UpdateCatAsAdmin(ctx context.Context, args updateCatArgs) (*catResolver, error) {
	if !principal(ctx).IsAdmin() {
		return nil, toGraphQLError(ctx, "updateCatAsAdmin", domain.ErrNotAuthorized)
	}
	if err := r.validate.Validate(args); err != nil {
		return nil, toGraphQLError(ctx, "updateCatAsAdmin", err)
	}
	cat, err := r.cats.UpdateCatAsAdmin(ctx, principal(ctx), args.input())
	if err != nil {
		return nil, toGraphQLError(ctx, "updateCatAsAdmin", err)
	}
	return r.cat(cat), nil
}

func (r *Resolver) DeleteCatAsAdmin(ctx context.Context, args idArgs) (*catResolver, error) {
	cat, err := r.cats.DeleteCatAsAdmin(ctx, principal(ctx), string(args.ID))
	if err != nil {
		return nil, toGraphQLError(ctx, "deleteCatAsAdmin", err)
	}
	return r.cat(cat), nil
}

func (r *Resolver) cat(c *domain.Cat) *catResolver {
	if c == nil {
		return nil
	}
	return &catResolver{cat: c, cats: r.cats}
}

func (r *Resolver) catList(cats []*domain.Cat) []*catResolver {
	out := make([]*catResolver, 0, len(cats))
	for _, c := range cats {
		out = append(out, r.cat(c))
	}
	return out
}

// ── Cat type ──────────────────────────────────────────────────────────────────

type catResolver struct {
	cat  *domain.Cat
	cats ports.CatService
}

func (c *catResolver) ID() graphql.ID { return graphql.ID(c.cat.ID) }

func (c *catResolver) CatName() string { return c.cat.Name }

func (c *catResolver) Weight() float64 { return c.cat.Weight }

func (c *catResolver) Birthdate() *graphql.Time {
	if c.cat.Birthdate.IsZero() {
		return nil
	}
	return &graphql.Time{Time: c.cat.Birthdate}
}

func (c *catResolver) Filename() *string {
	if c.cat.Filename == "" {
		return nil
	}
	return &c.cat.Filename
}

func (c *catResolver) Location() *locationResolver {
	return &locationResolver{p: c.cat.Location}
}

// Owner performs one auth service lookup per resolution unless the owner is
// already embedded.
func (c *catResolver) Owner(ctx context.Context) (*userResolver, error) {
	u, err := c.cats.Owner(ctx, c.cat.Owner)
	if err != nil {
		return nil, toGraphQLError(ctx, "Cat.owner", err)
	}
	return newUserResolver(u), nil
}

type locationResolver struct {
	p domain.Point
}

func (l *locationResolver) Type() string { return domain.GeoJSONPoint }

func (l *locationResolver) Coordinates() []float64 { return l.p.Coordinates() }
