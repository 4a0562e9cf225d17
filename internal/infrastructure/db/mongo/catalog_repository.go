package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spyweb/portal-api/internal/core/domain"
)

const (
	serviceCollection = "services"
	aboutCollection   = "about"
)

type MongoServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *MongoServiceRepository {
	return &MongoServiceRepository{coll: db.Collection(serviceCollection)}
}

type mongoService struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Icon        string             `bson:"icon"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *MongoServiceRepository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	doc := mongoService{
		Icon:        string(s.Icon),
		Title:       s.Title,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MongoServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	services := []*domain.Service{}
	for cur.Next(ctx) {
		var ms mongoService
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, ms.toDomain())
	}
	return services, cur.Err()
}

func (r *MongoServiceRepository) Update(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrServiceNotFound
	}

	set := bson.M{
		"icon":        string(s.Icon),
		"title":       s.Title,
		"description": s.Description,
		"updated_at":  s.UpdatedAt,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ms mongoService
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *MongoServiceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrServiceNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (ms *mongoService) toDomain() *domain.Service {
	return &domain.Service{
		ID:          ms.ID.Hex(),
		Icon:        domain.ParseIcon(ms.Icon),
		Title:       ms.Title,
		Description: ms.Description,
		CreatedAt:   ms.CreatedAt,
		UpdatedAt:   ms.UpdatedAt,
	}
}

// MongoAboutRepository persists the singleton about-page document.
type MongoAboutRepository struct {
	coll *mongo.Collection
}

func NewAboutRepository(db *mongo.Database) *MongoAboutRepository {
	return &MongoAboutRepository{coll: db.Collection(aboutCollection)}
}

type mongoAbout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Description string             `bson:"description"`
	Mission     string             `bson:"mission"`
	Vision      string             `bson:"vision"`
	Values      string             `bson:"values"`
	Leadership  []domain.Leader    `bson:"leadership"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *MongoAboutRepository) Get(ctx context.Context) (*domain.About, error) {
	var ma mongoAbout
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find about: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAboutRepository) Upsert(ctx context.Context, about *domain.About) (*domain.About, error) {
	set := bson.M{
		"description": about.Description,
		"mission":     about.Mission,
		"vision":      about.Vision,
		"values":      about.Values,
		"leadership":  about.Leadership,
		"updated_at":  about.UpdatedAt,
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var ma mongoAbout
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).Decode(&ma); err != nil {
		return nil, fmt.Errorf("upsert about: %w", err)
	}
	return ma.toDomain(), nil
}

func (ma *mongoAbout) toDomain() *domain.About {
	leadership := ma.Leadership
	if leadership == nil {
		leadership = []domain.Leader{}
	}
	return &domain.About{
		ID:          ma.ID.Hex(),
		Description: ma.Description,
		Mission:     ma.Mission,
		Vision:      ma.Vision,
		Values:      ma.Values,
		Leadership:  leadership,
		UpdatedAt:   ma.UpdatedAt,
	}
}
