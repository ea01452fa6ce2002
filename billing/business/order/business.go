package order

import (
	"context"
	"time"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/menus"
	"encore.app/billing/repository/orders"
)

type Business interface {
	IsAvailable(ctx context.Context, menuID int32) (bool, error)
	MenuItem(ctx context.Context, menuID int32) (*model.MenuItem, error)
	PlaceOrder(ctx context.Context, tableID, menuID, quantity int32) (bool, error)
}

type business struct {
	menuRepo  menus.Querier
	orderRepo orders.Querier
	logger    domain.Logger
	now       domain.Clock
}

// NewOrderBusiness creates the order placement business layer
func NewOrderBusiness(menuRepo menus.Querier, orderRepo orders.Querier, logger domain.Logger) Business {
	return &business{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		logger:    logger,
		now:       time.Now,
	}
}
