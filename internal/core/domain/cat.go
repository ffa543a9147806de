package domain

import "time"

const GeoJSONPoint = "Point"

// Point is a GeoJSON point; coordinates are serialised as [lng, lat].
type Point struct {
	Lng float64
	Lat float64
}

// Coordinates returns the point in GeoJSON axis order.
func (p Point) Coordinates() []float64 {
	return []float64{p.Lng, p.Lat}
}

// Owner is either a user already resolved by the auth service or a bare
// reference to one. The zero value is an empty reference.
type Owner struct {
	id   string
	user *User
}

// OwnerRef builds an unresolved owner.
func OwnerRef(id string) Owner {
	return Owner{id: id}
}

// ResolvedOwner builds an owner that needs no lookup.
func ResolvedOwner(u *User) Owner {
	if u == nil {
		return Owner{}
	}
	return Owner{id: u.ID, user: u}
}

func (o Owner) ID() string {
	return o.id
}

// Resolved returns the embedded user, if any.
func (o Owner) Resolved() (*User, bool) {
	return o.user, o.user != nil
}

// Cat is the aggregate stored in the cats collection.
type Cat struct {
	ID        string
	Name      string
	Weight    float64
	Birthdate time.Time
	Location  Point
	Filename  string
	Owner     Owner
}

// CatPatch lists the fields an update replaces. Nil fields are left untouched;
// the owner can never be patched.
type CatPatch struct {
	Name      *string
	Weight    *float64
	Birthdate *time.Time
	Location  *Point
	Filename  *string
}

// Empty reports whether the patch changes nothing.
func (p CatPatch) Empty() bool {
	return p.Name == nil && p.Weight == nil && p.Birthdate == nil && p.Location == nil && p.Filename == nil
}
