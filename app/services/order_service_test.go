package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func cartOf(items ...models.CartItem) models.Cart { return models.Cart(items) }

func lineItem(p models.Product, qty int) models.CartItem {
	return models.CartItem{CartID: models.CartItemKey(p.ID, "L"), Product: p, Size: "L", Quantity: qty}
}

// outOfStock returns the test catalog with the given product's stock at zero.
func outOfStock(id string) []models.Product {
	products := testProducts()
	for i := range products {
		if products[i].ID == id {
			products[i].Stock = 0
		}
	}
	return products
}

func checkoutRequest(origin CheckoutOrigin) CheckoutRequest {
	return CheckoutRequest{
		QuoteRequest:  QuoteRequest{CheckoutItems: CheckoutItems{Origin: origin}},
		Shipping:      testShipping(),
		PaymentMethod: models.PaymentCOD,
	}
}

func TestOrderService_CheckoutCartWithMembershipAndPoints(t *testing.T) {
	p1 := testProducts()[0]
	f := newFixture(t, map[store.Key]any{
		store.KeyCart:       cartOf(lineItem(p1, 1)),
		store.KeyUserPoints: 50000,
		store.KeyMembers:    []models.Member{testMember("ELITE-AB12CD")},
	})
	svc := f.orders()

	req := checkoutRequest(OriginCart)
	req.MembershipCode = "elite-ab12cd"
	req.UsePoints = true
	req.PaymentMethod = models.PaymentBkash
	req.TransactionID = "TRX123"

	res, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	o := res.Order
	assert.Regexp(t, `^ORD-[0-9A-Z]{9}$`, o.ID)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.EqualValues(t, 1000, o.Subtotal)
	assert.EqualValues(t, 100, o.MembershipDiscount)
	assert.EqualValues(t, 500, o.PointsDiscount)
	assert.EqualValues(t, 600, o.DiscountAmount)
	assert.EqualValues(t, 400, o.TotalPrice)
	assert.EqualValues(t, 50000, o.PointsRedeemed)
	assert.EqualValues(t, 1000, o.PointsEarned)
	assert.Equal(t, "ELITE-AB12CD", o.MembershipCode)
	assert.Equal(t, "TRX123", o.TransactionID)
	assert.True(t, res.NotificationSent)

	assert.EqualValues(t, 1000, stored[int64](t, f, store.KeyUserPoints))
	assert.Empty(t, stored[models.Cart](t, f, store.KeyCart))
	orders := stored[[]models.Order](t, f, store.KeyOrders)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID, orders[0].ID)

	sent := f.relay.sent()
	require.Len(t, sent, 1)
	payload := sent[0].(OrderPlacedPayload)
	assert.Equal(t, o.ID, payload.OrderID)
	assert.Equal(t, "৳400", payload.TotalPrice)
	assert.Equal(t, "ESPRESSO BLACK OVERSIZED (Size: L) x1", payload.Items)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.OrdersCreated.WithLabelValues("bKash")))
}

func TestOrderService_CheckoutDirectLeavesCart(t *testing.T) {
	p2 := testProducts()[1]
	f := newFixture(t, map[store.Key]any{
		store.KeyCart: cartOf(lineItem(p2, 3)),
	})
	svc := f.orders()

	req := checkoutRequest(OriginDirect)
	req.ProductID = "p3"
	req.Size = "XL"

	res, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Order.Items, 1)
	assert.Equal(t, "p3-XL", res.Order.Items[0].CartID)
	assert.Equal(t, 1, res.Order.Items[0].Quantity)
	assert.Empty(t, res.Order.TransactionID)

	assert.Len(t, f.store.Snapshot().Cart, 1)
	assert.EqualValues(t, 1200, f.store.Snapshot().Points)
}

func TestOrderService_CheckoutTrimsTransactionID(t *testing.T) {
	f := newFixture(t, nil)

	req := checkoutRequest(OriginDirect)
	req.ProductID = "p1"
	req.PaymentMethod = models.PaymentRocket
	req.TransactionID = "  RKT42  "

	res, err := f.orders().Checkout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "RKT42", res.Order.TransactionID)
}

func TestOrderService_NewOrdersArePrepended(t *testing.T) {
	f := newFixture(t, nil)
	svc := f.orders()

	req := checkoutRequest(OriginDirect)
	req.ProductID = "p1"
	first, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)
	req.ProductID = "p2"
	second, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	orders := svc.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.Order.ID, orders[0].ID)
	assert.Equal(t, first.Order.ID, orders[1].ID)
}

func TestOrderService_CheckoutRejections(t *testing.T) {
	p1 := testProducts()[0]

	tests := []struct {
		name    string
		seed    map[store.Key]any
		mutate  func(*CheckoutRequest)
		wantErr error
		invalid bool
	}{
		{
			name:    "empty cart",
			mutate:  func(r *CheckoutRequest) {},
			wantErr: ErrEmptyCheckout,
		},
		{
			name: "unknown membership code",
			seed: map[store.Key]any{store.KeyCart: cartOf(lineItem(p1, 1))},
			mutate: func(r *CheckoutRequest) {
				r.MembershipCode = "ELITE-NOPE00"
			},
			wantErr: ErrInvalidMembershipCode,
		},
		{
			name: "unknown direct product",
			mutate: func(r *CheckoutRequest) {
				r.Origin = OriginDirect
				r.ProductID = "ghost"
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "mobile payment without reference",
			seed: map[store.Key]any{store.KeyCart: cartOf(lineItem(p1, 1))},
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = models.PaymentNagad
			},
			invalid: true,
		},
		{
			name: "mobile payment with blank reference",
			seed: map[store.Key]any{store.KeyCart: cartOf(lineItem(p1, 1))},
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = models.PaymentBkash
				r.TransactionID = "   "
			},
			invalid: true,
		},
		{
			name: "blank shipping address",
			seed: map[store.Key]any{store.KeyCart: cartOf(lineItem(p1, 1))},
			mutate: func(r *CheckoutRequest) {
				r.Shipping.Address = " \t "
			},
			invalid: true,
		},
		{
			name: "direct size outside the size run",
			mutate: func(r *CheckoutRequest) {
				r.Origin = OriginDirect
				r.ProductID = "p2"
				r.Size = "banana"
			},
			invalid: true,
		},
		{
			name: "direct out of stock product",
			seed: map[store.Key]any{store.KeyProducts: outOfStock("p2")},
			mutate: func(r *CheckoutRequest) {
				r.Origin = OriginDirect
				r.ProductID = "p2"
				r.Size = "M"
			},
			wantErr: ErrOutOfStock,
		},
		{
			name: "missing shipping field",
			seed: map[store.Key]any{store.KeyCart: cartOf(lineItem(p1, 1))},
			mutate: func(r *CheckoutRequest) {
				r.Shipping.District = ""
			},
			invalid: true,
		},
		{
			name: "direct without product",
			mutate: func(r *CheckoutRequest) {
				r.Origin = OriginDirect
			},
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.seed)
			before := f.store.Snapshot()

			req := checkoutRequest(OriginCart)
			tt.mutate(&req)
			_, err := f.orders().Checkout(context.Background(), req)

			if tt.invalid {
				var verrs validator.ValidationErrors
				assert.True(t, errors.As(err, &verrs), "got %v", err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			after := f.store.Snapshot()
			assert.Equal(t, before.Cart, after.Cart)
			assert.Equal(t, before.Points, after.Points)
			assert.Empty(t, after.Orders)
			assert.Empty(t, f.relay.sent())
		})
	}
}

func TestOrderService_RelayFailureKeepsOrder(t *testing.T) {
	f := newFixture(t, map[store.Key]any{
		store.KeyCart: cartOf(lineItem(testProducts()[0], 1)),
	})
	f.relay.err = errors.New("relay down")

	res, err := f.orders().Checkout(context.Background(), checkoutRequest(OriginCart))
	require.NoError(t, err)
	assert.False(t, res.NotificationSent)
	assert.Len(t, stored[[]models.Order](t, f, store.KeyOrders), 1)
	assert.Empty(t, f.store.Snapshot().Cart)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RelaySubmissions.WithLabelValues(RelayKindOrder, "failure")))
}

func TestOrderService_Quote(t *testing.T) {
	f := newFixture(t, map[store.Key]any{
		store.KeyCart:       cartOf(lineItem(testProducts()[1], 2)),
		store.KeyUserPoints: 250,
	})
	svc := f.orders()

	q, err := svc.Quote(QuoteRequest{CheckoutItems: CheckoutItems{Origin: OriginCart}, UsePoints: true})
	require.NoError(t, err)
	assert.EqualValues(t, 700, q.Subtotal)
	assert.EqualValues(t, 2, q.PointsDiscount)
	assert.EqualValues(t, 200, q.PointsRedeemed)
	assert.EqualValues(t, 698, q.FinalTotal)

	_, err = svc.Quote(QuoteRequest{CheckoutItems: CheckoutItems{Origin: OriginCart}, MembershipCode: "bad"})
	assert.ErrorIs(t, err, ErrInvalidMembershipCode)
	assert.EqualValues(t, 250, f.store.Snapshot().Points)
}

func seedOrder(id string, status models.OrderStatus) models.Order {
	return models.Order{
		ID:              id,
		ShippingDetails: testShipping(),
		Items:           []models.CartItem{lineItem(testProducts()[0], 2)},
		Subtotal:        2000,
		DiscountAmount:  300,
		TotalPrice:      1700,
		Status:          status,
		PaymentMethod:   models.PaymentCOD,
		PointsEarned:    2000,
		PointsRedeemed:  10000,
		CreatedAt:       time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := newFixture(t, map[store.Key]any{
		store.KeyOrders: []models.Order{
			seedOrder("ORD-A", models.OrderStatusPending),
			seedOrder("ORD-B", models.OrderStatusDelivered),
			seedOrder("ORD-C", models.OrderStatusCancelled),
		},
		store.KeyUserPoints: 5000,
	})
	svc := f.orders()
	ctx := context.Background()

	o, err := svc.UpdateStatus(ctx, "ORD-A", models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, o.Status)

	o, err = svc.UpdateStatus(ctx, "ORD-A", models.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, o.Status)

	_, err = svc.UpdateStatus(ctx, "ORD-B", models.OrderStatusProcessing)
	assert.ErrorIs(t, err, ErrOrderFinalized)
	_, err = svc.UpdateStatus(ctx, "ORD-C", models.OrderStatusPending)
	assert.ErrorIs(t, err, ErrOrderFinalized)

	o, err = svc.UpdateStatus(ctx, "ORD-B", models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, o.Status)

	_, err = svc.UpdateStatus(ctx, "ORD-A", "Lost")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
	_, err = svc.UpdateStatus(ctx, "ORD-Z", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.UpdateStatus(ctx, "ORD-A", models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.EqualValues(t, 5000+10000-2000, stored[int64](t, f, store.KeyUserPoints))
	assert.Equal(t, models.OrderStatusCancelled, stored[[]models.Order](t, f, store.KeyOrders)[0].Status)
}

func TestOrderService_Cancel(t *testing.T) {
	f := newFixture(t, map[store.Key]any{
		store.KeyOrders: []models.Order{
			seedOrder("ORD-A", models.OrderStatusPending),
			seedOrder("ORD-B", models.OrderStatusProcessing),
		},
		store.KeyUserPoints: 500,
	})
	svc := f.orders()

	o, err := svc.Cancel(context.Background(), "ORD-A")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, o.Status)
	assert.EqualValues(t, 8500, f.store.Snapshot().Points)

	_, err = svc.Cancel(context.Background(), "ORD-B")
	assert.ErrorIs(t, err, ErrOrderNotCancellable)
}

func TestOrderService_UpdateShipping(t *testing.T) {
	f := newFixture(t, map[store.Key]any{
		store.KeyOrders: []models.Order{
			seedOrder("ORD-A", models.OrderStatusProcessing),
			seedOrder("ORD-B", models.OrderStatusShipped),
		},
	})
	svc := f.orders()

	details := testShipping()
	details.District = "Chattogram"

	o, err := svc.UpdateShipping(context.Background(), "ORD-A", details)
	require.NoError(t, err)
	assert.Equal(t, "Chattogram", o.District)
	assert.Equal(t, "Chattogram", stored[[]models.Order](t, f, store.KeyOrders)[0].District)

	_, err = svc.UpdateShipping(context.Background(), "ORD-B", details)
	assert.ErrorIs(t, err, ErrOrderNotEditable)

	details.Phone = ""
	_, err = svc.UpdateShipping(context.Background(), "ORD-A", details)
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestOrderService_Invoice(t *testing.T) {
	f := newFixture(t, map[store.Key]any{
		store.KeyOrders: []models.Order{
			seedOrder("ORD-A", models.OrderStatusDelivered),
			seedOrder("ORD-B", models.OrderStatusShipped),
		},
	})
	svc := f.orders()

	inv, err := svc.Invoice("ORD-A")
	require.NoError(t, err)
	assert.Equal(t, "January 15, 2025", inv.Date)
	assert.Equal(t, "৳1,700", inv.GrandTotal)
	assert.Equal(t, "৳2,000", inv.Subtotal)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "৳2,000", inv.Lines[0].Amount)
	assert.Equal(t, "House 12, Road 5, Dhanmondi, Dhaka", inv.ShippingAddress)

	_, err = svc.Invoice("ORD-B")
	assert.ErrorIs(t, err, ErrInvoiceUnavailable)
	_, err = svc.Invoice("ORD-Z")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_Search(t *testing.T) {
	a := seedOrder("ORD-AAA111", models.OrderStatusPending)
	b := seedOrder("ORD-BBB222", models.OrderStatusPending)
	b.CustomerName = "Tanvir Hasan"
	b.Phone = "01999888777"

	f := newFixture(t, map[store.Key]any{store.KeyOrders: []models.Order{a, b}})
	svc := NewOrderService(f.store, f.relay, f.metrics, zap.NewNop())

	assert.Len(t, svc.Search(""), 2)
	assert.Len(t, svc.Search("ord-aaa"), 1)
	assert.Equal(t, "ORD-BBB222", svc.Search("tanvir")[0].ID)
	assert.Equal(t, "ORD-BBB222", svc.Search("9888")[0].ID)
	assert.Empty(t, svc.Search("zzz"))

	counts := svc.OrderStatusCounts()
	assert.Equal(t, 2, counts[models.OrderStatusPending])
	assert.Equal(t, 0, counts[models.OrderStatusDelivered])
}
