package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/simonindia/hr-portal/internal/core/domain"
)

const collectionReferrals = "referrals"

// ReferralRepository stores referrals keyed by their integer id (_id).
// The collection is append-only.
type ReferralRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewReferralRepository(db *mongo.Database) *ReferralRepository {
	return &ReferralRepository{db: db, col: db.Collection(collectionReferrals)}
}

// List returns all referrals ordered by timestamp descending.
func (r *ReferralRepository) List(ctx context.Context) ([]*domain.Referral, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}

	referrals := []*domain.Referral{}
	if err := cur.All(ctx, &referrals); err != nil {
		return nil, fmt.Errorf("decode referrals: %w", err)
	}
	return referrals, nil
}

// Insert assigns the next id from the counter sequence and stores the referral.
func (r *ReferralRepository) Insert(ctx context.Context, referral *domain.Referral) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionReferrals)
	if err != nil {
		return 0, err
	}
	referral.ID = id

	if _, err := r.col.InsertOne(ctx, referral); err != nil {
		return 0, fmt.Errorf("insert referral: %w", err)
	}
	return id, nil
}

// EnsureIndexes creates the indexes the list query relies on.
func (r *ReferralRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}
