// cmd/veriscope/database.go
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PredictionRecord is one stored prediction-history entry
type PredictionRecord struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Text       string    `bson:"text" json:"text"`
	Prediction string    `bson:"prediction" json:"prediction"`
	Confidence float64   `bson:"confidence" json:"confidence"`
	IsFake     bool      `bson:"is_fake" json:"is_fake"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// User is a registered account
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Store wraps the MongoDB collections used for users and prediction history.
// The verdict core never touches it; only the HTTP layer and the scheduler do.
type Store struct {
	client      *mongo.Client
	predictions *mongo.Collection
	users       *mongo.Collection
}

// NewStore connects to MongoDB and prepares the collections
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, NewDatabaseError(ErrDatabaseConnection, "failed to connect to MongoDB", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, NewDatabaseError(ErrDatabaseConnection, "MongoDB ping failed", err)
	}

	db := client.Database(cfg.MongoDatabase)
	return &Store{
		client:      client,
		predictions: db.Collection("predictions"),
		users:       db.Collection("users"),
	}, nil
}

// Close disconnects from MongoDB
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// SavePrediction stores a prediction-history entry
func (s *Store) SavePrediction(ctx context.Context, record *PredictionRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if _, err := s.predictions.InsertOne(ctx, record); err != nil {
		return NewDatabaseError(ErrDatabaseQuery, "failed to save prediction", err)
	}
	return nil
}

// History returns a user's most recent predictions, newest first
func (s *Store) History(ctx context.Context, userID string, limit int64) ([]PredictionRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.predictions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, NewDatabaseError(ErrDatabaseQuery, "failed to query history", err)
	}
	defer cursor.Close(ctx)

	records := make([]PredictionRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, NewDatabaseError(ErrDatabaseQuery, "failed to decode history", err)
	}
	return records, nil
}

// PruneHistory deletes prediction records older than the cutoff and returns
// how many were removed
func (s *Store) PruneHistory(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := s.predictions.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": olderThan}})
	if err != nil {
		return 0, NewDatabaseError(ErrDatabaseQuery, "failed to prune history", err)
	}
	return result.DeletedCount, nil
}

// CreateUser stores a new account
func (s *Store) CreateUser(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return NewDatabaseError(ErrDatabaseQuery, "failed to create user", err)
	}
	return nil
}

// UserByEmail looks up an account by email. A missing account returns
// (nil, nil).
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, NewDatabaseError(ErrDatabaseQuery, "failed to query user", err)
	}
	return &user, nil
}
