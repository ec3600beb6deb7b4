package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"github.com/Rakhulsr/cloth-cafe/app/utils/calc"
	"github.com/Rakhulsr/cloth-cafe/app/utils/format"
	"go.uber.org/zap"
)

var (
	ErrEmptyCheckout         = errors.New("nothing to check out")
	ErrInvalidMembershipCode = errors.New("membership code is not valid")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderStatus    = errors.New("unknown order status")
	ErrOrderFinalized        = errors.New("order is already finalized")
	ErrOrderNotEditable      = errors.New("order shipping can no longer be changed")
	ErrOrderNotCancellable   = errors.New("only pending orders can be cancelled")
	ErrInvoiceUnavailable    = errors.New("invoice is only available for delivered orders")
)

// CheckoutOrigin says where the items being bought come from.
type CheckoutOrigin string

const (
	OriginCart   CheckoutOrigin = "cart"
	OriginDirect CheckoutOrigin = "direct"
)

type CheckoutItems struct {
	Origin    CheckoutOrigin `json:"origin" validate:"required,oneof=cart direct"`
	ProductID string         `json:"product_id,omitempty" validate:"required_if=Origin direct"`
	Size      string         `json:"size,omitempty" validate:"omitempty,garment_size"`
}

type QuoteRequest struct {
	CheckoutItems
	MembershipCode string `json:"membership_code,omitempty"`
	UsePoints      bool   `json:"use_points"`
}

type CheckoutRequest struct {
	QuoteRequest
	Shipping      models.ShippingDetails `json:"shipping"`
	PaymentMethod models.PaymentMethod   `json:"payment_method" validate:"required,oneof=COD bKash Nagad Rocket"`
	TransactionID string                 `json:"transaction_id,omitempty" validate:"required_unless=PaymentMethod COD,max=64"`
}

type CheckoutResult struct {
	Order            models.Order `json:"order"`
	Quote            calc.Quote   `json:"quote"`
	NotificationSent bool         `json:"notification_sent"`
}

type InvoiceLine struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Amount   string `json:"amount"`
}

type Invoice struct {
	OrderID         string        `json:"order_id"`
	Date            string        `json:"date"`
	CustomerName    string        `json:"customer_name"`
	Phone           string        `json:"phone"`
	ShippingAddress string        `json:"shipping_address"`
	PaymentMethod   string        `json:"payment_method"`
	Lines           []InvoiceLine `json:"lines"`
	Subtotal        string        `json:"subtotal"`
	Discount        string        `json:"discount"`
	GrandTotal      string        `json:"grand_total"`
}

type OrderService struct {
	store   *store.Store
	relay   NotificationRelay
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewOrderService(st *store.Store, relay NotificationRelay, m *metrics.Metrics, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:   st,
		relay:   relay,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// resolveItems returns the line items a checkout would buy.
func resolveItems(st *store.State, items CheckoutItems) ([]models.CartItem, error) {
	switch items.Origin {
	case OriginCart:
		if len(st.Cart) == 0 {
			return nil, ErrEmptyCheckout
		}
		return append([]models.CartItem{}, st.Cart...), nil
	case OriginDirect:
		product, ok := findProduct(st.Products, items.ProductID)
		if !ok {
			return nil, ErrProductNotFound
		}
		if !product.InStock() {
			return nil, ErrOutOfStock
		}
		return models.Cart(nil).Add(product, items.Size), nil
	}
	return nil, ErrEmptyCheckout
}

func priceItems(st *store.State, req QuoteRequest) ([]models.CartItem, calc.Quote, error) {
	items, err := resolveItems(st, req.CheckoutItems)
	if err != nil {
		return nil, calc.Quote{}, err
	}

	membership := false
	if strings.TrimSpace(req.MembershipCode) != "" {
		if !calc.ValidateMembershipCode(st.Members, req.MembershipCode) {
			return nil, calc.Quote{}, ErrInvalidMembershipCode
		}
		membership = true
	}

	return items, calc.CalculateQuote(items, membership, st.Points, req.UsePoints), nil
}

// Quote prices a prospective checkout without changing anything.
func (s *OrderService) Quote(req QuoteRequest) (calc.Quote, error) {
	if err := validate.Struct(req); err != nil {
		return calc.Quote{}, err
	}
	st := s.store.Snapshot()
	_, quote, err := priceItems(&st, req)
	return quote, err
}

// Checkout creates the order, settles points and clears the cart when the
// cart was bought, all in one store write. The relay is told afterwards and
// its failure only shows up in the result.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	req.TransactionID = strings.TrimSpace(req.TransactionID)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	keys := []store.Key{store.KeyOrders, store.KeyUserPoints}
	if req.Origin == OriginCart {
		keys = append(keys, store.KeyCart)
	}

	var result CheckoutResult
	err := s.store.Update(ctx, func(st *store.State) error {
		items, quote, err := priceItems(st, req.QuoteRequest)
		if err != nil {
			return err
		}

		now := s.now()
		order := models.Order{
			ID:                 newOrderID(),
			ShippingDetails:    req.Shipping,
			Items:              items,
			Subtotal:           quote.Subtotal,
			MembershipDiscount: quote.MembershipDiscount,
			PointsDiscount:     quote.PointsDiscount,
			DiscountAmount:     quote.DiscountTotal(),
			TotalPrice:         quote.FinalTotal,
			Status:             models.OrderStatusPending,
			PaymentMethod:      req.PaymentMethod,
			PointsEarned:       quote.PointsEarned,
			PointsRedeemed:     quote.PointsRedeemed,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if req.PaymentMethod != models.PaymentCOD {
			order.TransactionID = req.TransactionID
		}
		if quote.MembershipApplied {
			order.MembershipCode = strings.ToUpper(strings.TrimSpace(req.MembershipCode))
		}

		st.Orders = append([]models.Order{order}, st.Orders...)
		st.Points = st.Points - quote.PointsRedeemed + quote.PointsEarned
		if req.Origin == OriginCart {
			st.Cart = models.Cart{}
		}

		result.Order = order
		result.Quote = quote
		return nil
	}, keys...)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordOrderCreated(string(result.Order.PaymentMethod))
	s.logger.Info("order placed",
		zap.String("order_id", result.Order.ID),
		zap.Int64("total", result.Order.TotalPrice),
		zap.Int64("points_earned", result.Order.PointsEarned),
		zap.Int64("points_redeemed", result.Order.PointsRedeemed),
	)

	result.NotificationSent = notify(ctx, s.relay, s.metrics, s.logger, NewOrderPlacedPayload(result.Order)) == nil
	return &result, nil
}

func (s *OrderService) Orders() []models.Order {
	return s.store.Snapshot().Orders
}

func (s *OrderService) Order(id string) (models.Order, error) {
	for _, o := range s.store.Snapshot().Orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Search matches the order id or customer name ignoring case, or a fragment
// of the phone number. An empty query returns every order.
func (s *OrderService) Search(query string) []models.Order {
	orders := s.store.Snapshot().Orders
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return orders
	}

	out := make([]models.Order, 0)
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), q) ||
			strings.Contains(strings.ToLower(o.CustomerName), q) ||
			strings.Contains(o.Phone, q) {
			out = append(out, o)
		}
	}
	return out
}

func findOrderIndex(orders []models.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

// cancelPoints undoes the point movement of an order that will never ship.
func cancelPoints(balance int64, order models.Order) int64 {
	return max(0, balance+order.PointsRedeemed-order.PointsEarned)
}

func (s *OrderService) updateOrder(ctx context.Context, id string, keys []store.Key, fn func(st *store.State, o *models.Order) error) (models.Order, error) {
	var updated models.Order
	err := s.store.Update(ctx, func(st *store.State) error {
		i := findOrderIndex(st.Orders, id)
		if i < 0 {
			return ErrOrderNotFound
		}
		if err := fn(st, &st.Orders[i]); err != nil {
			return err
		}
		updated = st.Orders[i]
		updated.Items = append([]models.CartItem{}, st.Orders[i].Items...)
		return nil
	}, keys...)
	return updated, err
}

// UpdateStatus is the admin transition. Any status may be set until the
// order reaches Delivered or Cancelled.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrInvalidOrderStatus
	}

	changed := false
	order, err := s.updateOrder(ctx, id, []store.Key{store.KeyOrders, store.KeyUserPoints}, func(st *store.State, o *models.Order) error {
		if o.Status == status {
			return nil
		}
		if o.Status.Terminal() {
			return ErrOrderFinalized
		}
		if status == models.OrderStatusCancelled {
			st.Points = cancelPoints(st.Points, *o)
		}
		o.Status = status
		o.UpdatedAt = s.now()
		changed = true
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	if changed {
		s.metrics.RecordOrderTransition(string(status))
		s.logger.Info("order status changed", zap.String("order_id", id), zap.String("status", string(status)))
	}
	return order, nil
}

// Cancel is the customer's own cancellation of an order nobody has started on.
func (s *OrderService) Cancel(ctx context.Context, id string) (models.Order, error) {
	order, err := s.updateOrder(ctx, id, []store.Key{store.KeyOrders, store.KeyUserPoints}, func(st *store.State, o *models.Order) error {
		if o.Status != models.OrderStatusPending {
			return ErrOrderNotCancellable
		}
		st.Points = cancelPoints(st.Points, *o)
		o.Status = models.OrderStatusCancelled
		o.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	s.metrics.RecordOrderTransition(string(models.OrderStatusCancelled))
	s.logger.Info("order cancelled by customer", zap.String("order_id", id))
	return order, nil
}

func (s *OrderService) UpdateShipping(ctx context.Context, id string, details models.ShippingDetails) (models.Order, error) {
	if err := validate.Struct(details); err != nil {
		return models.Order{}, err
	}

	return s.updateOrder(ctx, id, []store.Key{store.KeyOrders}, func(_ *store.State, o *models.Order) error {
		if !o.Status.ShippingEditable() {
			return ErrOrderNotEditable
		}
		o.ShippingDetails = details
		o.UpdatedAt = s.now()
		return nil
	})
}

func (s *OrderService) Invoice(id string) (*Invoice, error) {
	order, err := s.Order(id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusDelivered {
		return nil, ErrInvoiceUnavailable
	}
	return BuildInvoice(order), nil
}

func BuildInvoice(order models.Order) *Invoice {
	lines := make([]InvoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, InvoiceLine{
			Name:     item.Product.Name,
			Size:     item.Size,
			Quantity: item.Quantity,
			Amount:   format.FormatTaka(item.LineTotal()),
		})
	}

	return &Invoice{
		OrderID:         order.ID,
		Date:            order.CreatedAt.Format("January 2, 2006"),
		CustomerName:    order.CustomerName,
		Phone:           order.Phone,
		ShippingAddress: strings.Join([]string{order.Address, order.Thana, order.District}, ", "),
		PaymentMethod:   string(order.PaymentMethod),
		Lines:           lines,
		Subtotal:        format.FormatTaka(order.Subtotal),
		Discount:        format.FormatTaka(order.DiscountAmount),
		GrandTotal:      format.FormatTaka(order.TotalPrice),
	}
}

// OrderStatusCounts backs the admin dashboard tiles.
func (s *OrderService) OrderStatusCounts() map[models.OrderStatus]int {
	counts := make(map[models.OrderStatus]int, len(models.OrderStatuses))
	for _, st := range models.OrderStatuses {
		counts[st] = 0
	}
	for _, o := range s.store.Snapshot().Orders {
		counts[o.Status]++
	}
	return counts
}

// ValidateMembershipCode is the read-only lookup used before checkout.
func (s *OrderService) ValidateMembershipCode(code string) bool {
	return calc.ValidateMembershipCode(s.store.Snapshot().Members, code)
}
