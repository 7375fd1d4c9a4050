package purchase

import (
	"context"

	id "coursebay/pkg/domain"
)

// Store persists the purchase ledger. Methods follow the shared error
// contract: sentinel.ErrNotFound for missing entities, wrapped infrastructure
// errors otherwise.
type Store interface {
	Create(ctx context.Context, p *Purchase) error
	ListByPurchaser(ctx context.Context, userID id.UserID) ([]Purchase, error)
}
