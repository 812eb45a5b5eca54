package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/ports"
)

const courseCollection = "courses"

// CourseRepository implements ports.CourseRepository using MongoDB.
type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(courseCollection)}
}

type mongoCourse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	ImageLink   string             `bson:"image_link"`
	Published   bool               `bson:"published"`
}

// Insert stores the course and returns the generated id.
func (r *CourseRepository) Insert(ctx context.Context, course *domain.Course) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCourse{
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		ImageLink:   course.ImageLink,
		Published:   course.Published,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert course: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert course: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update applies the non-nil fields of in with a single $set. Unknown and
// malformed ids both report ErrCourseNotFound.
func (r *CourseRepository) Update(ctx context.Context, id string, in ports.UpdateCourseInput) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Price != nil {
		set["price"] = *in.Price
	}
	if in.ImageLink != nil {
		set["image_link"] = *in.ImageLink
	}
	if in.Published != nil {
		set["published"] = *in.Published
	}

	if len(set) == 0 {
		// Nothing to change; still report whether the course exists.
		if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return domain.ErrCourseNotFound
			}
			return fmt.Errorf("update course: %w", err)
		}
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	var mc mongoCourse
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	course := mc.toDomain()
	return &course, nil
}

// FindAll returns every course in natural (insertion) order.
func (r *CourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	return r.find(ctx, bson.M{})
}

// FindPublished returns the published subset in natural order.
func (r *CourseRepository) FindPublished(ctx context.Context) ([]domain.Course, error) {
	return r.find(ctx, bson.M{"published": true})
}

// FindByIDs resolves course ids to records keyed by hex id. Malformed and
// unmatched ids are silently absent; the caller reassembles purchase order.
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return map[string]domain.Course{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find courses by id: %w", err)
	}
	defer cursor.Close(ctx)

	out := make(map[string]domain.Course, len(oids))
	for cursor.Next(ctx) {
		var mc mongoCourse
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		out[mc.ID.Hex()] = mc.toDomain()
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find courses by id: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the index backing the published listing.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "published", Value: 1}},
	})
	return err
}

func (r *CourseRepository) find(ctx context.Context, filter bson.M) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []domain.Course
	for cursor.Next(ctx) {
		var mc mongoCourse
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	return courses, nil
}

func (mc mongoCourse) toDomain() domain.Course {
	return domain.Course{
		ID:          mc.ID.Hex(),
		Title:       mc.Title,
		Description: mc.Description,
		Price:       mc.Price,
		ImageLink:   mc.ImageLink,
		Published:   mc.Published,
	}
}
