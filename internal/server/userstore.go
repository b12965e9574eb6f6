package server

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserStore persists registered users.
type UserStore interface {
	InsertUser(ctx context.Context, username, password string) error
}

// MongoUserStore stores users in MongoDB, mirroring the original
// schema: no duplicate check, no password hashing.
type MongoUserStore struct {
	client *mongo.Client
}

// ConnectMongo connects to MongoDB with a 10-second timeout.
func ConnectMongo(uri string) (*MongoUserStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &MongoUserStore{client: client}, nil
}

// Close disconnects the underlying client.
func (m *MongoUserStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// InsertUser implements UserStore.
func (m *MongoUserStore) InsertUser(ctx context.Context, username, password string) error {
	collection := m.client.Database("typing-practice").Collection("users")
	_, err := collection.InsertOne(ctx, bson.D{
		{Key: "username", Value: username},
		{Key: "password", Value: password},
		{Key: "progress", Value: bson.A{}},
	})
	return err
}

// MemoryUserStore is an in-memory UserStore for tests.
type MemoryUserStore struct {
	Users []struct{ Username, Password string }
}

// InsertUser implements UserStore.
func (m *MemoryUserStore) InsertUser(_ context.Context, username, password string) error {
	m.Users = append(m.Users, struct{ Username, Password string }{username, password})
	return nil
}
