package ports

import (
	"context"

	"github.com/coursebay/course-marketplace/internal/core/domain"
)

// CreateCourseInput carries the fields for a new course. No validation is
// applied; the record is stored as given.
type CreateCourseInput struct {
	Title       string
	Description string
	Price       float64
	ImageLink   string
	Published   bool
}

// CourseService defines the admin-facing catalog operations plus the user
// published listing.
type CourseService interface {
	Create(ctx context.Context, in CreateCourseInput) (string, error)
	Update(ctx context.Context, id string, in UpdateCourseInput) error

	// ListAll returns every course. Returns domain.ErrNoCourses when the
	// catalog is empty (the admin listing treats an empty catalog as an
	// error; the user listing does not).
	ListAll(ctx context.Context) ([]domain.Course, error)

	// ListPublished returns published courses; an empty catalog yields an
	// empty slice, never an error.
	ListPublished(ctx context.Context) ([]domain.Course, error)
}

// PurchaseService defines the user purchase operations.
type PurchaseService interface {
	// Purchase appends the course to the user's history. Returns
	// domain.ErrCourseNotFound or domain.ErrAccountNotFound when either side
	// of the purchase is missing. Repeat purchases append duplicates.
	Purchase(ctx context.Context, username, courseID string) error

	// ListPurchased resolves the user's purchase history to full course
	// records, preserving purchase order and duplicates. Ids whose course no
	// longer exists are dropped.
	ListPurchased(ctx context.Context, username string) ([]domain.Course, error)
}
