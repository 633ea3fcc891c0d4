package ports

import (
	"context"

	"github.com/hellostack/portal/internal/core/domain"
)

// IdentityRepository is the persistence adapter behind sign-in.
type IdentityRepository interface {
	// LinkOrCreate returns the identity linked to the provider account,
	// creating both records when none exists yet. The repository generates
	// the identity id; identity.ID is ignored. isNew reports whether the
	// identity was created by this call.
	LinkOrCreate(ctx context.Context, provider, providerAccountID string, identity *domain.Identity) (created *domain.Identity, isNew bool, err error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	SetRole(ctx context.Context, id string, role domain.Role) error
}
