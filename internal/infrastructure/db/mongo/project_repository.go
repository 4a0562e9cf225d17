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
	"github.com/spyweb/portal-api/internal/core/ports"
)

const projectCollection = "projects"

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectCollection)}
}

type mongoDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	URL        string             `bson:"url"`
	UploadedAt time.Time          `bson:"uploaded_at"`
}

type mongoProject struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	ImageURL     string             `bson:"image_url"`
	Technologies []string           `bson:"technologies"`
	Status       string             `bson:"status"`
	Progress     int                `bson:"progress"`
	StartDate    time.Time          `bson:"start_date,omitempty"`
	EndDate      time.Time          `bson:"end_date,omitempty"`
	ClientID     string             `bson:"client_id,omitempty"`
	Documents    []mongoDocument    `bson:"documents"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *MongoProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	doc := toMongoProject(p)
	// New embedded documents get their own ids so the frontend can key on them.
	for i := range doc.Documents {
		if doc.Documents[i].ID.IsZero() {
			doc.Documents[i].ID = primitive.NewObjectID()
		}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProjectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]*domain.Project, error) {
	query := bson.M{}
	switch {
	case filter.ClientID != "":
		query["client_id"] = filter.ClientID
	case filter.PublicOnly:
		// Public projects are those with no owner reference at all.
		query["$or"] = bson.A{
			bson.M{"client_id": bson.M{"$exists": false}},
			bson.M{"client_id": ""},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	projects := []*domain.Project{}
	for cur.Next(ctx) {
		var mp mongoProject
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, mp.toDomain())
	}
	return projects, cur.Err()
}

func (r *MongoProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	doc := toMongoProject(p)
	doc.ID = oid
	for i := range doc.Documents {
		if doc.Documents[i].ID.IsZero() {
			doc.Documents[i].ID = primitive.NewObjectID()
		}
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return doc.toDomain(), nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func toMongoProject(p *domain.Project) *mongoProject {
	docs := make([]mongoDocument, len(p.Documents))
	for i, d := range p.Documents {
		md := mongoDocument{Title: d.Title, URL: d.URL, UploadedAt: d.UploadedAt}
		if oid, err := primitive.ObjectIDFromHex(d.ID); err == nil {
			md.ID = oid
		}
		docs[i] = md
	}
	return &mongoProject{
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Technologies: p.Technologies,
		Status:       string(p.Status),
		Progress:     p.Progress,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		ClientID:     p.ClientID,
		Documents:    docs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (mp *mongoProject) toDomain() *domain.Project {
	docs := make([]domain.Document, len(mp.Documents))
	for i, d := range mp.Documents {
		docs[i] = domain.Document{
			ID:         d.ID.Hex(),
			Title:      d.Title,
			URL:        d.URL,
			UploadedAt: d.UploadedAt,
		}
	}
	technologies := mp.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &domain.Project{
		ID:           mp.ID.Hex(),
		Title:        mp.Title,
		Description:  mp.Description,
		ImageURL:     mp.ImageURL,
		Technologies: technologies,
		Status:       domain.ProjectStatus(mp.Status),
		Progress:     mp.Progress,
		StartDate:    mp.StartDate,
		EndDate:      mp.EndDate,
		ClientID:     mp.ClientID,
		Documents:    docs,
		CreatedAt:    mp.CreatedAt,
		UpdatedAt:    mp.UpdatedAt,
	}
}
