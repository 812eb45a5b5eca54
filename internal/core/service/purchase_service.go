package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coursebay/course-marketplace/internal/api/metrics"
	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/ports"
)

// PurchaseService implements course purchase and purchase-history resolution
// for user accounts.
type PurchaseService struct {
	users   ports.UserRepository
	courses ports.CourseRepository
	log     zerolog.Logger
}

func NewPurchaseService(users ports.UserRepository, courses ports.CourseRepository, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{users: users, courses: courses, log: log}
}

// Purchase verifies the course exists, then appends its id to the user's
// history with a single atomic update. There is no duplicate guard: buying
// the same course twice records it twice.
func (s *PurchaseService) Purchase(ctx context.Context, username, courseID string) error {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return err
	}

	// The username comes from verified token claims, but the account may
	// have vanished since the token was minted.
	if err := s.users.AppendPurchase(ctx, username, course.ID); err != nil {
		return fmt.Errorf("append purchase: %w", err)
	}

	metrics.PurchasesTotal.Inc()
	s.log.Info().Str("username", username).Str("course_id", course.ID).Msg("course purchased")

	return nil
}

// ListPurchased resolves the user's purchase history to full course records.
// Order and duplicates follow the stored history; ids whose course has since
// disappeared are dropped from the result.
func (s *PurchaseService) ListPurchased(ctx context.Context, username string) ([]domain.Course, error) {
	ids, err := s.users.PurchaseIDs(ctx, username)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []domain.Course{}, nil
	}

	byID, err := s.courses.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resolved := make([]domain.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := byID[id]; ok {
			resolved = append(resolved, course)
		}
	}
	return resolved, nil
}
