package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loginsvc/internal/domain/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDocument is the persisted shape of a user record
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OAuthID   string             `bson:"oauthId"`
	Name      string             `bson:"name"`
	Provider  string             `bson:"provider"`
	Email     *string            `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *userDocument) toUser() *auth.User {
	return &auth.User{
		ID:        d.ID.Hex(),
		OAuthID:   d.OAuthID,
		Name:      d.Name,
		Provider:  auth.Provider(d.Provider),
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
	}
}

// UserRepository is a MongoDB implementation of the credential store
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository constructs a UserRepository over the users collection
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique (oauthId, provider) index that closes the
// first-login race at the store
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "oauthId", Value: 1}, {Key: "provider", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create identity index: %w", err)
	}
	return nil
}

// FindByIdentity retrieves a user by their (oauthID, provider) pair
func (r *UserRepository) FindByIdentity(ctx context.Context, oauthID string, provider auth.Provider) (*auth.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"oauthId": oauthID, "provider": string(provider)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return doc.toUser(), nil
}

// Create persists a new user record and returns it with its store-assigned
// id. A duplicate-key conflict means another request created the record
// between lookup and insert; the winning record is read back and returned.
func (r *UserRepository) Create(ctx context.Context, oauthID, name string, provider auth.Provider, email *string) (*auth.User, error) {
	doc := userDocument{
		OAuthID:   oauthID,
		Name:      name,
		Provider:  string(provider),
		Email:     email,
		CreatedAt: time.Now(),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return r.FindByIdentity(ctx, oauthID, provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toUser(), nil
}
