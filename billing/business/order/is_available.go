package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.app/billing/domain"
	"encore.app/billing/model"
)

// IsAvailable reports whether a menu item can be ordered. Unknown items are
// treated as unavailable.
func (b *business) IsAvailable(ctx context.Context, menuID int32) (bool, error) {
	flag, err := b.menuRepo.GetMenuAvailability(ctx, menuID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		b.logger.Error("availability check failed", "menu_id", menuID, "error", err)
		return false, domain.StoreError(err, "availability check")
	}

	return flag == model.AvailableYes, nil
}

// MenuItem looks up a menu item. An unknown item yields nil and no error.
func (b *business) MenuItem(ctx context.Context, menuID int32) (*model.MenuItem, error) {
	row, err := b.menuRepo.GetMenuItem(ctx, menuID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		b.logger.Error("menu lookup failed", "menu_id", menuID, "error", err)
		return nil, domain.StoreError(err, "menu lookup")
	}

	return &model.MenuItem{
		ID:         row.MenuID,
		Name:       row.Name,
		PriceCents: row.PriceCents,
		Available:  row.Available == model.AvailableYes,
	}, nil
}
