package ports

import (
	"context"

	"github.com/coursebay/course-marketplace/internal/core/domain"
)

// UpdateCourseInput carries a partial field set for a course update. Nil
// fields are left untouched.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	Price       *float64
	ImageLink   *string
	Published   *bool
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	// Insert stores a new course and returns its generated id.
	Insert(ctx context.Context, course *domain.Course) (string, error)

	// Update applies the non-nil fields of in to the course with the given
	// id. Returns domain.ErrCourseNotFound when no course matches.
	Update(ctx context.Context, id string, in UpdateCourseInput) error

	FindByID(ctx context.Context, id string) (*domain.Course, error)

	// FindAll returns every stored course in insertion order.
	FindAll(ctx context.Context) ([]domain.Course, error)

	// FindPublished returns courses with published == true in insertion order.
	FindPublished(ctx context.Context) ([]domain.Course, error)

	// FindByIDs resolves course ids to full records, keyed by id. Ids with no
	// matching course are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]domain.Course, error)
}
