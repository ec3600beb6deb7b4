package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ShippingEditable reports whether the customer may still change where the
// order goes.
func (s OrderStatus) ShippingEditable() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentBkash  PaymentMethod = "bKash"
	PaymentNagad  PaymentMethod = "Nagad"
	PaymentRocket PaymentMethod = "Rocket"
)

type ShippingDetails struct {
	CustomerName string `json:"customer_name" validate:"required,notblank,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,notblank,max=20"`
	AltPhone     string `json:"alt_phone,omitempty" validate:"max=20"`
	Address      string `json:"address" validate:"required,notblank"`
	Thana        string `json:"thana" validate:"required,notblank"`
	District     string `json:"district" validate:"required,notblank"`
	Area         string `json:"area" validate:"required,notblank"`
	Instructions string `json:"instructions,omitempty"`
}

type Order struct {
	ID string `json:"id"`
	ShippingDetails
	Items              []CartItem    `json:"items"`
	Subtotal           int64         `json:"subtotal"`
	MembershipDiscount int64         `json:"membership_discount"`
	PointsDiscount     int64         `json:"points_discount"`
	DiscountAmount     int64         `json:"discount_amount"`
	TotalPrice         int64         `json:"total_price"`
	Status             OrderStatus   `json:"status"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	TransactionID      string        `json:"transaction_id,omitempty"`
	MembershipCode     string        `json:"membership_code,omitempty"`
	PointsEarned       int64         `json:"points_earned"`
	PointsRedeemed     int64         `json:"points_redeemed"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
