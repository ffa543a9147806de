package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twpayne/go-geom"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/internal/core/ports"
)

const collectionCats = "cats"

// CatRepository implements ports.CatRepository using MongoDB.
type CatRepository struct {
	col *mongo.Collection
}

var _ ports.CatRepository = (*CatRepository)(nil)

func NewCatRepository(db *mongo.Database) *CatRepository {
	return &CatRepository{col: db.Collection(collectionCats)}
}

type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type catDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CatName   string             `bson:"cat_name"`
	Weight    float64            `bson:"weight"`
	Birthdate time.Time          `bson:"birthdate"`
	Owner     primitive.ObjectID `bson:"owner"`
	Location  geoPoint           `bson:"location"`
	Filename  string             `bson:"filename,omitempty"`
}

func (d *catDocument) toDomain() *domain.Cat {
	c := &domain.Cat{
		ID:        d.ID.Hex(),
		Name:      d.CatName,
		Weight:    d.Weight,
		Birthdate: d.Birthdate.UTC(),
		Filename:  d.Filename,
		Owner:     domain.OwnerRef(d.Owner.Hex()),
	}
	if len(d.Location.Coordinates) == 2 {
		c.Location = domain.Point{Lng: d.Location.Coordinates[0], Lat: d.Location.Coordinates[1]}
	}
	return c
}

func toGeoPoint(p domain.Point) geoPoint {
	return geoPoint{Type: domain.GeoJSONPoint, Coordinates: p.Coordinates()}
}

// FindAll returns every cat in insertion order.
func (r *CatRepository) FindAll(ctx context.Context) ([]*domain.Cat, error) {
	return r.find(ctx, bson.M{})
}

func (r *CatRepository) FindByID(ctx context.Context, id string) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id can never match a document
		return nil, domain.ErrCatNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc catDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("find cat: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CatRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, fmt.Errorf("owner %q: %w", ownerID, domain.ErrInvalidID)
	}
	return r.find(ctx, bson.M{"owner": oid})
}

// FindWithin runs a $geoWithin query against the 2dsphere index on location.
func (r *CatRepository) FindWithin(ctx context.Context, area domain.Area) ([]*domain.Cat, error) {
	return r.find(ctx, withinFilter(area))
}

func (r *CatRepository) Insert(ctx context.Context, c *domain.Cat) (*domain.Cat, error) {
	owner, err := primitive.ObjectIDFromHex(c.Owner.ID())
	if err != nil {
		return nil, fmt.Errorf("owner %q: %w", c.Owner.ID(), domain.ErrInvalidID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := catDocument{
		ID:        primitive.NewObjectID(),
		CatName:   c.Name,
		Weight:    c.Weight,
		Birthdate: c.Birthdate.UTC(),
		Owner:     owner,
		Location:  toGeoPoint(c.Location),
		Filename:  c.Filename,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert cat: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CatRepository) Update(ctx context.Context, id string, patch domain.CatPatch) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	if patch.Empty() {
		cat, err := r.FindByID(ctx, id)
		if errors.Is(err, domain.ErrCatNotFound) {
			return nil, nil
		}
		return cat, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc catDocument
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patchDocument(patch)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update cat: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CatRepository) Delete(ctx context.Context, id string) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc catDocument
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete cat: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the indexes the cat queries rely on.
func (r *CatRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *CatRepository) find(ctx context.Context, filter bson.M) ([]*domain.Cat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find cats: %w", err)
	}
	var docs []catDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cats: %w", err)
	}

	cats := make([]*domain.Cat, 0, len(docs))
	for i := range docs {
		cats = append(cats, docs[i].toDomain())
	}
	return cats, nil
}

// patchDocument lists the $set fields of a patch.
func patchDocument(p domain.CatPatch) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["cat_name"] = *p.Name
	}
	if p.Weight != nil {
		set["weight"] = *p.Weight
	}
	if p.Birthdate != nil {
		set["birthdate"] = p.Birthdate.UTC()
	}
	if p.Location != nil {
		set["location"] = toGeoPoint(*p.Location)
	}
	if p.Filename != nil {
		set["filename"] = *p.Filename
	}
	return set
}

func withinFilter(area domain.Area) bson.M {
	return bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$geometry": bson.M{
					"type":        "Polygon",
					"coordinates": polygonRings(area.Polygon()),
				},
			},
		},
	}
}

// polygonRings converts a polygon into GeoJSON's nested coordinate arrays.
func polygonRings(p *geom.Polygon) [][][]float64 {
	coords := p.Coords()
	rings := make([][][]float64, len(coords))
	for i, ring := range coords {
		rings[i] = make([][]float64, len(ring))
		for j, c := range ring {
			rings[i][j] = []float64{c.X(), c.Y()}
		}
	}
	return rings
}
