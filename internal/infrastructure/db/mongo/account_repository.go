package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursebay/course-marketplace/internal/core/domain"
)

const (
	adminCollection = "admins"
	userCollection  = "users"
)

// AccountRepository persists one account namespace. The admins and users
// collections share the same document shape except that only user documents
// carry a purchased_courses array.
type AccountRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository returns an AccountRepository over the admins collection.
func NewAdminRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(adminCollection)}
}

// NewUserRepository returns an AccountRepository over the users collection.
func NewUserRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(userCollection)}
}

type mongoAccount struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Username         string               `bson:"username"`
	PasswordHash     string               `bson:"password_hash"`
	CreatedAt        int64                `bson:"created_at"`
	PurchasedCourses []primitive.ObjectID `bson:"purchased_courses"`
}

// Create inserts the account. A new user starts with an empty purchase
// history. The unique index on username makes duplicate inserts fail
// atomically; no pre-check is needed.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		Username:         account.Username,
		PasswordHash:     account.PasswordHash,
		CreatedAt:        account.CreatedAt.Unix(),
		PurchasedCourses: []primitive.ObjectID{},
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	created.PurchasedCourses = []string{}
	return &created, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return ma.toDomain(), nil
}

// AppendPurchase pushes the course id onto the user's purchase history in a
// single update. $push keeps insertion order and permits duplicates, which is
// exactly the purchase contract.
func (r *AccountRepository) AppendPurchase(ctx context.Context, username, courseID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$push": bson.M{"purchased_courses": oid}},
	)
	if err != nil {
		return fmt.Errorf("append purchase: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// PurchaseIDs returns the user's purchased course ids in purchase order.
func (r *AccountRepository) PurchaseIDs(ctx context.Context, username string) ([]string, error) {
	account, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return account.PurchasedCourses, nil
}

// EnsureIndexes creates the unique username index. Signup correctness depends
// on it: without the index, concurrent signups could both succeed.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (ma mongoAccount) toDomain() *domain.Account {
	purchased := make([]string, 0, len(ma.PurchasedCourses))
	for _, oid := range ma.PurchasedCourses {
		purchased = append(purchased, oid.Hex())
	}

	return &domain.Account{
		ID:               ma.ID.Hex(),
		Username:         ma.Username,
		PasswordHash:     ma.PasswordHash,
		CreatedAt:        unixToTime(ma.CreatedAt),
		PurchasedCourses: purchased,
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
