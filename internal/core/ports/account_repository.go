package ports

import (
	"context"

	"github.com/coursebay/course-marketplace/internal/core/domain"
)

// AccountRepository defines persistence for one account namespace (admins or
// users). Implementations must enforce username uniqueness at the storage
// layer so Create fails atomically on duplicates.
type AccountRepository interface {
	// Create inserts the account. Returns domain.ErrAccountExists when the
	// username is already taken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// UserRepository extends AccountRepository with purchase operations that only
// exist for the user namespace.
type UserRepository interface {
	AccountRepository

	// AppendPurchase atomically appends courseID to the user's purchase
	// history. Duplicate course ids are allowed. Returns
	// domain.ErrAccountNotFound when no user matches the username.
	AppendPurchase(ctx context.Context, username, courseID string) error

	// PurchaseIDs returns the user's purchased course ids in purchase order.
	PurchaseIDs(ctx context.Context, username string) ([]string, error)
}
