package order

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/logger"
	"encore.app/billing/mocks/repository/menu_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/menus"
)

func TestIsAvailable(t *testing.T) {
	testCases := []struct {
		name         string
		menuID       int32
		mockFlag     string
		mockError    error
		expected     bool
		expectedCode errs.ErrCode
	}{
		{
			name:     "available_item",
			menuID:   5,
			mockFlag: "Y",
			expected: true,
		},
		{
			name:     "explicitly_unavailable_item",
			menuID:   4,
			mockFlag: "N",
			expected: false,
		},
		{
			name:     "unexpected_flag_fails_closed",
			menuID:   9,
			mockFlag: "y",
			expected: false,
		},
		{
			name:      "unknown_item_fails_closed",
			menuID:    999,
			mockError: pgx.ErrNoRows,
			expected:  false,
		},
		{
			name:         "store_unreachable",
			menuID:       5,
			mockError:    context.DeadlineExceeded,
			expectedCode: errs.Unavailable,
		},
		{
			name:         "query_failed",
			menuID:       5,
			mockError:    errors.New("syntax error"),
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMenuRepo := menu_repo.NewMockQuerier(ctrl)
			business := &business{menuRepo: mockMenuRepo, logger: logger.NewRecorder()}

			mockMenuRepo.EXPECT().
				GetMenuAvailability(gomock.Any(), tc.menuID).
				Return(tc.mockFlag, tc.mockError)

			available, err := business.IsAvailable(context.Background(), tc.menuID)

			if tc.expectedCode != errs.OK {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.False(t, available)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, available)
			}
		})
	}
}

func TestMenuItem(t *testing.T) {
	testCases := []struct {
		name         string
		menuID       int32
		mockRow      menus.MenuCard
		mockError    error
		expected     *model.MenuItem
		expectedCode errs.ErrCode
	}{
		{
			name:     "available_item",
			menuID:   5,
			mockRow:  menus.MenuCard{MenuID: 5, Name: "Butter Naan", PriceCents: 1000, Available: "Y"},
			expected: &model.MenuItem{ID: 5, Name: "Butter Naan", PriceCents: 1000, Available: true},
		},
		{
			name:     "unavailable_item",
			menuID:   4,
			mockRow:  menus.MenuCard{MenuID: 4, Name: "Mango Lassi", PriceCents: 700, Available: "N"},
			expected: &model.MenuItem{ID: 4, Name: "Mango Lassi", PriceCents: 700},
		},
		{
			name:      "unknown_item",
			menuID:    999,
			mockError: pgx.ErrNoRows,
		},
		{
			name:         "store_unreachable",
			menuID:       5,
			mockError:    context.DeadlineExceeded,
			expectedCode: errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMenuRepo := menu_repo.NewMockQuerier(ctrl)
			business := &business{menuRepo: mockMenuRepo, logger: logger.NewRecorder()}

			mockMenuRepo.EXPECT().
				GetMenuItem(gomock.Any(), tc.menuID).
				Return(tc.mockRow, tc.mockError)

			item, err := business.MenuItem(context.Background(), tc.menuID)

			if tc.expectedCode != errs.OK {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, item)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, item)
		})
	}
}
