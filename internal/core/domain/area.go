package domain

import "github.com/twpayne/go-geom"

// LatLng is a corner supplied by a client.
type LatLng struct {
	Lat float64
	Lng float64
}

// Area is an axis-aligned lng/lat box. The corners may be given in any order;
// the box is always normalised to min/max. Boxes crossing the antimeridian are
// not supported.
type Area struct {
	bounds *geom.Bounds
}

// NewArea builds the box spanned by two opposite corners.
func NewArea(topRight, bottomLeft LatLng) Area {
	corners := geom.NewMultiPoint(geom.XY).MustSetCoords([]geom.Coord{
		{topRight.Lng, topRight.Lat},
		{bottomLeft.Lng, bottomLeft.Lat},
	})
	return Area{bounds: corners.Bounds()}
}

func (a Area) SouthWest() LatLng {
	return LatLng{Lat: a.bounds.Min(1), Lng: a.bounds.Min(0)}
}

func (a Area) NorthEast() LatLng {
	return LatLng{Lat: a.bounds.Max(1), Lng: a.bounds.Max(0)}
}

// Polygon returns the closed ring of the box, starting at the south-west
// corner.
func (a Area) Polygon() *geom.Polygon {
	sw, ne := a.SouthWest(), a.NorthEast()
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{
		{sw.Lng, sw.Lat},
		{sw.Lng, ne.Lat},
		{ne.Lng, ne.Lat},
		{ne.Lng, sw.Lat},
		{sw.Lng, sw.Lat},
	}})
}

// Contains reports whether p lies inside the box or on its border. It is the
// planar reference for FindWithin implementations that filter in memory; the
// Mongo store delegates to $geoWithin, whose polygon edges are geodesic and can
// differ from this box for points near the northern or southern edge.
func (a Area) Contains(p Point) bool {
	if a.bounds == nil {
		return false
	}
	return a.bounds.OverlapsPoint(geom.XY, geom.Coord{p.Lng, p.Lat})
}
