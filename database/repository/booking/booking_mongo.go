package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "parentId", Value: 1}}},
		{Keys: bson.D{{Key: "nannyId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking record.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

// GetByParent retrieves all bookings created by the given parent.
func (r *MongoBookingRepo) GetByParent(parentID string) ([]models.Booking, error) {
	return r.find(bson.M{"parentId": parentID}, 0)
}

// GetByNanny retrieves all bookings addressed to the given nanny profile.
func (r *MongoBookingRepo) GetByNanny(nannyID string) ([]models.Booking, error) {
	return r.find(bson.M{"nannyId": nannyID}, 0)
}

// GetAll retrieves all bookings, most recent first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.find(bson.M{}, 0)
}

// GetRecent retrieves the most recently created bookings.
func (r *MongoBookingRepo) GetRecent(limit int64) ([]models.Booking, error) {
	return r.find(bson.M{}, limit)
}

func (r *MongoBookingRepo) find(filter bson.M, limit int64) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Count counts bookings matching the filter.
func (r *MongoBookingRepo) Count(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// UpdateStatusIf atomically applies the patch only while the booking's status
// is one of allowedCurrent. The filter on id + status and the single
// FindOneAndUpdate make the status check and the write one serialization
// point; two racing transitions cannot both match.
func (r *MongoBookingRepo) UpdateStatusIf(id string, allowedCurrent []string, set bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	patch := bson.M{"updatedAt": time.Now()}
	for k, v := range set {
		patch[k] = v
	}

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": allowedCurrent},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": patch}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotInExpectedState
		}
		return nil, fmt.Errorf("failed conditional update for booking %s: %w", id, err)
	}
	return &updated, nil
}

// SetTotalPrice rewrites the derived price of a booking.
func (r *MongoBookingRepo) SetTotalPrice(id string, price float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"totalPrice": price, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set price for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// DeleteByParent removes all bookings created by the given parent.
func (r *MongoBookingRepo) DeleteByParent(parentID string) (int64, error) {
	return r.deleteMany(bson.M{"parentId": parentID})
}

// DeleteByNanny removes all bookings addressed to the given nanny profile.
func (r *MongoBookingRepo) DeleteByNanny(nannyID string) (int64, error) {
	return r.deleteMany(bson.M{"nannyId": nannyID})
}

func (r *MongoBookingRepo) deleteMany(filter bson.M) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings: %w", err)
	}
	return result.DeletedCount, nil
}
