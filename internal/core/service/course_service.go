package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coursebay/course-marketplace/internal/api/metrics"
	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/ports"
)

// CourseService implements catalog operations.
type CourseService struct {
	repo ports.CourseRepository
	log  zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

// Create stores the course as given and returns the generated id. There is no
// field validation and no existence precondition.
func (s *CourseService) Create(ctx context.Context, in ports.CreateCourseInput) (string, error) {
	course := &domain.Course{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageLink:   in.ImageLink,
		Published:   in.Published,
	}

	id, err := s.repo.Insert(ctx, course)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to insert course")
		return "", err
	}

	metrics.CoursesCreatedTotal.Inc()
	s.log.Info().Str("course_id", id).Str("title", in.Title).Msg("course created")

	return id, nil
}

// Update applies a partial field set. The id is immutable; unknown ids yield
// ErrCourseNotFound.
func (s *CourseService) Update(ctx context.Context, id string, in ports.UpdateCourseInput) error {
	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	s.log.Info().Str("course_id", id).Msg("course updated")
	return nil
}

// ListAll returns the whole catalog. An empty catalog is reported as
// ErrNoCourses; the admin endpoint maps that to 404 rather than returning an
// empty list.
func (s *CourseService) ListAll(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, domain.ErrNoCourses
	}
	return courses, nil
}

// ListPublished returns the published subset in store order. Empty results
// are an empty slice, never an error.
func (s *CourseService) ListPublished(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}
