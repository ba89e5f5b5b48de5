package service

import (
	"context"
	"testing"
	"time"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func karat(k int) *int { return &k }

func sellItem() dto.InvoiceItemRequest {
	return dto.InvoiceItemRequest{
		SaleType:         "SELL",
		Category:         "GOLD",
		Karat:            karat(21),
		Weight:           10,
		PricePerGram:     100,
		WorkmanshipType:  "PER_GRAM",
		WorkmanshipValue: 5,
	}
}

func createReq(items ...dto.InvoiceItemRequest) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		Date:         "2025-06-15",
		Channel:      "STORE",
		CustomerName: "Mona",
		Items:        items,
	}
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	req := createReq(sellItem())
	req.Payments = []dto.PaymentRequest{{Method: "CASH", Amount: 500}}

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	// 10g × 100 + 10g × 5 workmanship
	assert.Equal(t, 1050.0, resp.NetTotal)
	assert.Equal(t, 500.0, resp.AmountPaid)
	assert.Equal(t, 550.0, resp.RemainingBalance)
	assert.Len(t, repo.invoices, 1)
}

func TestInvoiceCreatedAtRendersInUTC(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	resp, err := svc.Create(context.Background(), createReq(sellItem()))
	require.NoError(t, err)

	// A row stamped in local time must not be relabeled as UTC.
	id := uuid.MustParse(resp.ID)
	cairo := time.FixedZone("EET", 2*60*60)
	repo.invoices[id].CreatedAt = time.Date(2025, 6, 1, 2, 30, 0, 0, cairo)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T00:30:00Z", got.CreatedAt)
}

func TestCreateInvoiceRejectsBadDate(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo())

	req := createReq(sellItem())
	req.Date = "15/06/2025"

	_, err := svc.Create(context.Background(), req)
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateInvoiceRejectsShippingInStore(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	req := createReq(sellItem())
	req.Shipping = 50

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, repo.invoices)
}

func TestCreateInvoiceRejectsMixedPricingVariants(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo())

	cases := []struct {
		name string
		item dto.InvoiceItemRequest
	}{
		{
			name: "sell with discount",
			item: dto.InvoiceItemRequest{
				SaleType: "SELL", Category: "GOLD", Karat: karat(21),
				Weight: 5, PricePerGram: 100,
				WorkmanshipType: "PER_GRAM", WorkmanshipValue: 5,
				DiscountPercentage: 10,
			},
		},
		{
			name: "24k buy-back with workmanship",
			item: dto.InvoiceItemRequest{
				SaleType: "BUY_BACK", Category: "GOLD", Karat: karat(24),
				Weight: 5, PricePerGram: 100,
				CashBackPerGram: 10, WorkmanshipValue: 5,
			},
		},
		{
			name: "21k buy-back with cash-back",
			item: dto.InvoiceItemRequest{
				SaleType: "BUY_BACK", Category: "GOLD", Karat: karat(21),
				Weight: 5, PricePerGram: 100,
				CashBackPerGram: 10,
			},
		},
		{
			name: "gold without karat",
			item: dto.InvoiceItemRequest{
				SaleType: "SELL", Category: "GOLD",
				Weight: 5, PricePerGram: 100,
				WorkmanshipType: "PER_GRAM", WorkmanshipValue: 5,
			},
		},
		{
			name: "silver with karat",
			item: dto.InvoiceItemRequest{
				SaleType: "SELL", Category: "SILVER", Karat: karat(21),
				Weight: 5, PricePerGram: 30,
				WorkmanshipType: "PER_PIECE", WorkmanshipValue: 50,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), createReq(tc.item))
			var verr *apierror.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateInvoiceRejectsZeroPaymentBeforeMutation(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	req := createReq(sellItem())
	req.Payments = []dto.PaymentRequest{{Method: "CASH", Amount: 0}}

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, repo.invoices, "a rejected request must not create anything")
}

func TestUpdateInvoiceReplacesItems(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	created, err := svc.Create(context.Background(), createReq(sellItem()))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	update := dto.UpdateInvoiceRequest{
		Date:         "2025-06-16",
		Channel:      "STORE",
		CustomerName: "Mona",
		Items: []dto.InvoiceItemRequest{
			{
				SaleType: "SELL", Category: "SILVER",
				Weight: 20, PricePerGram: 30,
				WorkmanshipType: "PER_PIECE", WorkmanshipValue: 100,
			},
		},
	}

	resp, err := svc.Update(context.Background(), id, update)
	require.NoError(t, err)

	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "SILVER", resp.Items[0].Category)
	// 20g × 30 + 100 per piece
	assert.Equal(t, 700.0, resp.NetTotal)
}

func TestAddPaymentAppendsAndSettles(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	created, err := svc.Create(context.Background(), createReq(sellItem()))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := svc.AddPayment(context.Background(), id, dto.PaymentRequest{Method: "INSTAPAY", Amount: 1050})
	require.NoError(t, err)

	assert.Equal(t, 1050.0, resp.AmountPaid)
	assert.Equal(t, 0.0, resp.RemainingBalance)
}

func TestAddPaymentRejectsZeroAmount(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	created, err := svc.Create(context.Background(), createReq(sellItem()))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.AddPayment(context.Background(), id, dto.PaymentRequest{Method: "CASH", Amount: 0})
	require.Error(t, err)

	stored := repo.invoices[id]
	assert.Empty(t, stored.Payments)
}

func TestDeleteInvoiceNotFound(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo())

	err := svc.Delete(context.Background(), uuid.New())
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status())
}

func TestListInvoicesFiltersByChannel(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(repo)

	store := createReq(sellItem())
	_, err := svc.Create(context.Background(), store)
	require.NoError(t, err)

	online := createReq(sellItem())
	online.Channel = "ONLINE"
	online.Shipping = 50
	_, err = svc.Create(context.Background(), online)
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), dto.InvoiceFilter{Channel: "ONLINE", Page: 1, Limit: 50})
	require.NoError(t, err)

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "ONLINE", resp.Data[0].Channel)
	assert.Equal(t, 1100.0, resp.Data[0].NetTotal)
}
