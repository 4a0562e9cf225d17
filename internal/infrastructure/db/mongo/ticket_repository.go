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

const ticketCollection = "tickets"

type MongoTicketRepository struct {
	coll *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) *MongoTicketRepository {
	return &MongoTicketRepository{coll: db.Collection(ticketCollection)}
}

type mongoTicket struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Reference  string             `bson:"reference"`
	ClientID   string             `bson:"client_id"`
	Subject    string             `bson:"subject"`
	Content    string             `bson:"content"`
	Status     string             `bson:"status"`
	AdminReply string             `bson:"admin_reply,omitempty"`
	ReplyDate  time.Time          `bson:"reply_date,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (r *MongoTicketRepository) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	doc := toMongoTicket(t)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MongoTicketRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTicketNotFound
	}

	var mt mongoTicket
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoTicketRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Ticket, error) {
	return r.list(ctx, bson.M{"client_id": clientID})
}

func (r *MongoTicketRepository) ListAll(ctx context.Context) ([]*domain.Ticket, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoTicketRepository) list(ctx context.Context, query bson.M) ([]*domain.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer cur.Close(ctx)

	tickets := []*domain.Ticket{}
	for cur.Next(ctx) {
		var mt mongoTicket
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode ticket: %w", err)
		}
		tickets = append(tickets, mt.toDomain())
	}
	return tickets, cur.Err()
}

func (r *MongoTicketRepository) Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, domain.ErrTicketNotFound
	}

	set := bson.M{
		"status":      string(t.Status),
		"admin_reply": t.AdminReply,
		"reply_date":  t.ReplyDate,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mt mongoTicket
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return mt.toDomain(), nil
}

func toMongoTicket(t *domain.Ticket) *mongoTicket {
	return &mongoTicket{
		Reference:  t.Reference,
		ClientID:   t.ClientID,
		Subject:    t.Subject,
		Content:    t.Content,
		Status:     string(t.Status),
		AdminReply: t.AdminReply,
		ReplyDate:  t.ReplyDate,
		CreatedAt:  t.CreatedAt,
	}
}

func (mt *mongoTicket) toDomain() *domain.Ticket {
	return &domain.Ticket{
		ID:         mt.ID.Hex(),
		Reference:  mt.Reference,
		ClientID:   mt.ClientID,
		Subject:    mt.Subject,
		Content:    mt.Content,
		Status:     domain.TicketStatus(mt.Status),
		AdminReply: mt.AdminReply,
		ReplyDate:  mt.ReplyDate,
		CreatedAt:  mt.CreatedAt,
	}
}
