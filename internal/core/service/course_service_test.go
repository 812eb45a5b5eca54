package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository (insertion order preserved, like the Mongo repo)
// ---------------------------------------------------------------------------

type stubCourseRepo struct {
	courses []domain.Course
	nextID  int
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{}
}

func (r *stubCourseRepo) Insert(_ context.Context, course *domain.Course) (string, error) {
	r.nextID++
	id := fmt.Sprintf("course-%d", r.nextID)
	stored := *course
	stored.ID = id
	r.courses = append(r.courses, stored)
	return id, nil
}

func (r *stubCourseRepo) Update(_ context.Context, id string, in ports.UpdateCourseInput) error {
	for i := range r.courses {
		if r.courses[i].ID != id {
			continue
		}
		if in.Title != nil {
			r.courses[i].Title = *in.Title
		}
		if in.Description != nil {
			r.courses[i].Description = *in.Description
		}
		if in.Price != nil {
			r.courses[i].Price = *in.Price
		}
		if in.ImageLink != nil {
			r.courses[i].ImageLink = *in.ImageLink
		}
		if in.Published != nil {
			r.courses[i].Published = *in.Published
		}
		return nil
	}
	return domain.ErrCourseNotFound
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	for _, course := range r.courses {
		if course.ID == id {
			clone := course
			return &clone, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) FindAll(_ context.Context) ([]domain.Course, error) {
	return append([]domain.Course(nil), r.courses...), nil
}

func (r *stubCourseRepo) FindPublished(_ context.Context) ([]domain.Course, error) {
	var out []domain.Course
	for _, course := range r.courses {
		if course.Published {
			out = append(out, course)
		}
	}
	return out, nil
}

func (r *stubCourseRepo) FindByIDs(_ context.Context, ids []string) (map[string]domain.Course, error) {
	out := make(map[string]domain.Course)
	for _, id := range ids {
		for _, course := range r.courses {
			if course.ID == id {
				out[id] = course
			}
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func newCourseSvc(repo *stubCourseRepo) *CourseService {
	return NewCourseService(repo, zerolog.Nop())
}

func TestCourseService_Create(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseSvc(repo)

	id, err := svc.Create(context.Background(), ports.CreateCourseInput{
		Title: "Go Basics", Price: 49.99, Published: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}
	if len(repo.courses) != 1 || repo.courses[0].Title != "Go Basics" {
		t.Fatalf("course not stored as given: %+v", repo.courses)
	}
}

func TestCourseService_Update_Partial(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseSvc(repo)

	id, _ := svc.Create(context.Background(), ports.CreateCourseInput{Title: "Draft", Price: 10})

	published := true
	if err := svc.Update(context.Background(), id, ports.UpdateCourseInput{Published: &published}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if !repo.courses[0].Published {
		t.Errorf("published not updated")
	}
	if repo.courses[0].Title != "Draft" || repo.courses[0].Price != 10 {
		t.Errorf("untouched fields changed: %+v", repo.courses[0])
	}
}

func TestCourseService_Update_NotFound(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseSvc(repo)

	title := "new"
	err := svc.Update(context.Background(), "missing", ports.UpdateCourseInput{Title: &title})
	if !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
	if len(repo.courses) != 0 {
		t.Fatalf("unexpected mutation: %+v", repo.courses)
	}
}

func TestCourseService_ListAll_EmptyIsError(t *testing.T) {
	svc := newCourseSvc(newStubCourseRepo())

	if _, err := svc.ListAll(context.Background()); !errors.Is(err, domain.ErrNoCourses) {
		t.Fatalf("expected ErrNoCourses, got %v", err)
	}
}

func TestCourseService_ListAll_ReturnsEverything(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseSvc(repo)

	_, _ = svc.Create(context.Background(), ports.CreateCourseInput{Title: "a", Published: true})
	_, _ = svc.Create(context.Background(), ports.CreateCourseInput{Title: "b"})

	courses, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
}

func TestCourseService_ListPublished_EmptyIsEmptyList(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseSvc(repo)

	// Unpublished courses exist but none are visible.
	_, _ = svc.Create(context.Background(), ports.CreateCourseInput{Title: "hidden"})

	courses, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if courses == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(courses) != 0 {
		t.Fatalf("expected no courses, got %d", len(courses))
	}
}

func TestCourseService_ListPublished_SubsetInStoreOrder(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseSvc(repo)

	first, _ := svc.Create(context.Background(), ports.CreateCourseInput{Title: "first", Published: true})
	_, _ = svc.Create(context.Background(), ports.CreateCourseInput{Title: "hidden"})
	second, _ := svc.Create(context.Background(), ports.CreateCourseInput{Title: "second", Published: true})

	courses, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 published courses, got %d", len(courses))
	}
	if courses[0].ID != first || courses[1].ID != second {
		t.Fatalf("unexpected order: %+v", courses)
	}
}
