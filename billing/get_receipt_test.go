package billing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

func TestGetReceipt(t *testing.T) {
	svc := newTestService(t)
	bill := &model.Bill{
		ID:               "Bill_3_1792445400000000",
		TableID:          3,
		BillDate:         time.Date(2026, 10, 19, 21, 30, 0, 0, time.UTC),
		TotalAmountCents: 3500,
		TaxAmountCents:   350,
		FinalAmountCents: 3850,
		Lines: []model.BillLine{
			{Name: "Butter Naan", Quantity: 2, PriceCents: 1000},
			{Name: "Dal Makhani", Quantity: 1, PriceCents: 1500},
		},
	}
	svc.bills.EXPECT().GetBill(gomock.Any(), bill.ID).Return(bill, nil).Times(1)

	resp, err := svc.GetReceipt(context.Background(), bill.ID)

	require.NoError(t, err)
	assert.Equal(t, bill.ID, resp.BillID)
	assert.Contains(t, resp.Receipt, restaurantName)
	assert.Contains(t, resp.Receipt, "Butter Naan")
	assert.Contains(t, resp.Receipt, "38.50")
	for _, line := range strings.Split(strings.TrimRight(resp.Receipt, "\n"), "\n") {
		assert.Equal(t, 44, len([]rune(line)), line)
	}
}

func TestGetReceipt_Errors(t *testing.T) {
	t.Run("blank_id", func(t *testing.T) {
		svc := newTestService(t)
		resp, err := svc.GetReceipt(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
		assert.Nil(t, resp)
	})

	t.Run("unknown_bill", func(t *testing.T) {
		svc := newTestService(t)
		svc.bills.EXPECT().GetBill(gomock.Any(), "Bill_9_1").
			Return(nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}).Times(1)

		resp, err := svc.GetReceipt(context.Background(), "Bill_9_1")
		require.Error(t, err)
		assert.Equal(t, errs.NotFound, errs.Code(err))
		assert.Nil(t, resp)
	})
}
