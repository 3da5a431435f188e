package nannyRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/RajRabadiya018/CarringNanny/database"
	"github.com/RajRabadiya018/CarringNanny/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNannyRepo implements NannyRepository using MongoDB.
type MongoNannyRepo struct {
	coll *mongo.Collection
}

// NewMongoNannyRepo creates a new instance of NannyRepository using MongoDB.
func NewMongoNannyRepo() NannyRepository {
	coll := database.Collection("nannies")
	repo := &MongoNannyRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNannyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a nanny profile by its unique ID.
func (r *MongoNannyRepo) GetByID(id string) (*models.Nanny, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUserID retrieves the profile owned by the given user.
func (r *MongoNannyRepo) GetByUserID(userID string) (*models.Nanny, error) {
	return r.findOne(bson.M{"userId": userID})
}

func (r *MongoNannyRepo) findOne(filter bson.M) (*models.Nanny, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var n models.Nanny
	if err := r.coll.FindOne(ctx, filter).Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch nanny: %w", err)
	}
	return &n, nil
}

// GetAll retrieves all nanny profiles, most recent first.
func (r *MongoNannyRepo) GetAll() ([]models.Nanny, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve nannies: %w", err)
	}
	defer cursor.Close(ctx)

	var nannies []models.Nanny
	if err := cursor.All(ctx, &nannies); err != nil {
		return nil, fmt.Errorf("failed to decode nannies: %w", err)
	}
	return nannies, nil
}

// Count counts profiles matching the filter.
func (r *MongoNannyRepo) Count(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count nannies: %w", err)
	}
	return n, nil
}

// Create inserts a new nanny profile.
func (r *MongoNannyRepo) Create(n *models.Nanny) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create nanny profile: %w", err)
	}
	return nil
}

// Update modifies an existing nanny profile.
func (r *MongoNannyRepo) Update(n *models.Nanny) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": n.ID}, bson.M{"$set": n})
	if err != nil {
		return fmt.Errorf("failed to update nanny with id %s: %w", n.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("nanny with id %s not found", n.ID)
	}
	return nil
}

// Delete removes a nanny profile by its ID.
func (r *MongoNannyRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete nanny with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("nanny with id %s not found", id)
	}
	return nil
}

// DeleteByUserID removes the profile owned by the given user, if any.
func (r *MongoNannyRepo) DeleteByUserID(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete nanny profile for user %s: %w", userID, err)
	}
	return nil
}
