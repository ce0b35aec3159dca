package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It also holds
// the users collection so booking creation can link the booking id into the
// owning user's document inside one transaction.
type MongoBookingRepo struct {
	coll     *mongo.Collection
	userColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{
		coll:     db.Collection("bookings"),
		userColl: db.Collection("users"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the query indexes plus the partial unique index that
// makes "one active booking per (providerId, date)" a storage-level
// invariant, closing the check-then-create race.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.M{"status": bson.M{"$in": models.ActiveStatuses()}},
			),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	// The stored body may carry a stale embedded id; the lookup key is canonical.
	booking.ID = id
	return &booking, nil
}

// CountActiveAt counts active bookings matching the provider and the exact
// instant. Equality on date, not interval overlap.
func (r *MongoBookingRepo) CountActiveAt(providerID string, date time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$in": models.ActiveStatuses()},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for provider %s: %w", providerID, err)
	}
	return count, nil
}

// Create inserts the booking and appends its id to the user's bookings set
// transactionally. A duplicate-key rejection from the slot index maps to
// ErrSlotTaken.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}

		update := bson.M{"$addToSet": bson.M{"bookings": booking.ID}}
		if _, err := r.userColl.UpdateOne(sc, bson.M{"id": booking.UserID}, update); err != nil {
			return fmt.Errorf("append booking to user failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// UpdateStatus sets the status field and refreshes updatedAt.
func (r *MongoBookingRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser retrieves a user's bookings ordered by date descending.
func (r *MongoBookingRepo) ListByUser(userID, status string) ([]models.Booking, error) {
	filter := bson.M{"userId": userID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(filter, bson.D{{Key: "date", Value: -1}})
}

// ListByProvider retrieves a provider's bookings ordered by date ascending.
func (r *MongoBookingRepo) ListByProvider(providerID string, date *time.Time, status string) ([]models.Booking, error) {
	filter := bson.M{"providerId": providerID}
	if date != nil {
		filter["date"] = *date
	}
	if status != "" {
		filter["status"] = status
	}
	return r.find(filter, bson.D{{Key: "date", Value: 1}})
}

func (r *MongoBookingRepo) find(filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
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
