package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type AvailabilityResponse struct {
	MenuID    int32  `json:"menu_id"`
	Name      string `json:"name,omitempty"`
	Available bool   `json:"available"`
}

// CheckAvailability reports whether a menu item can be ordered right now.
// Unknown items are reported as unavailable.
//
//encore:api public path=/v1/menu/:menuID/availability method=GET
func (s *Service) CheckAvailability(ctx context.Context, menuID int) (*AvailabilityResponse, error) {
	if menuID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid menu ID"}
	}

	item, err := s.orders.MenuItem(ctx, int32(menuID))
	if err != nil {
		rlog.Error("failed to check availability", "error", err, "menu_id", menuID)
		return nil, err
	}

	resp := &AvailabilityResponse{MenuID: int32(menuID)}
	if item != nil {
		resp.Name = item.Name
		resp.Available = item.Available
	}
	return resp, nil
}
