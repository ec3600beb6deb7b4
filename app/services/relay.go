package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/utils/format"
	"go.uber.org/zap"
)

var ErrRelayRejected = errors.New("relay rejected submission")

const (
	RelayKindOrder      = "order"
	RelayKindMembership = "membership"
	RelayKindNewsletter = "newsletter"
)

// RelayPayload is a flat JSON document forwarded to the form relay.
type RelayPayload interface {
	RelayKind() string
}

type NotificationRelay interface {
	Submit(ctx context.Context, payload RelayPayload) error
}

type OrderPlacedPayload struct {
	OrderID      string `json:"orderId"`
	Customer     string `json:"customer"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Items        string `json:"items"`
	TotalPrice   string `json:"totalPrice"`
	Payment      string `json:"payment"`
	TrxID        string `json:"trxId"`
	Instructions string `json:"instructions"`
}

func (OrderPlacedPayload) RelayKind() string { return RelayKindOrder }

func NewOrderPlacedPayload(order models.Order) OrderPlacedPayload {
	items := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fmt.Sprintf("%s (Size: %s) x%d", item.Product.Name, item.Size, item.Quantity))
	}

	trxID := order.TransactionID
	if trxID == "" {
		trxID = string(models.PaymentCOD)
	}
	instructions := order.Instructions
	if instructions == "" {
		instructions = "None"
	}

	return OrderPlacedPayload{
		OrderID:      order.ID,
		Customer:     order.CustomerName,
		Email:        order.Email,
		Phone:        order.Phone,
		Address:      strings.Join([]string{order.Address, order.Area, order.Thana, order.District}, ", "),
		Items:        strings.Join(items, ", "),
		TotalPrice:   format.FormatTaka(order.TotalPrice),
		Payment:      string(order.PaymentMethod),
		TrxID:        trxID,
		Instructions: instructions,
	}
}

type MembershipRequestedPayload struct {
	Subject       string `json:"subject"`
	Type          string `json:"type"`
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

func (MembershipRequestedPayload) RelayKind() string { return RelayKindMembership }

func NewMembershipRequestedPayload(req models.MembershipRequest) MembershipRequestedPayload {
	return MembershipRequestedPayload{
		Subject:       "New Elite Membership Request: " + req.ID,
		Type:          "Membership Activation",
		ID:            req.ID,
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		PaymentMethod: string(req.PaymentMethod),
		TransactionID: req.TransactionID,
		Status:        string(req.Status),
		Date:          req.CreatedAt.Format("2006-01-02"),
	}
}

type NewsletterPayload struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Source  string `json:"source"`
}

func (NewsletterPayload) RelayKind() string { return RelayKindNewsletter }

// FormRelay posts payloads as JSON to a form-relay endpoint.
type FormRelay struct {
	url    string
	client *http.Client
}

func NewFormRelay(url string, timeout time.Duration) *FormRelay {
	return &FormRelay{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (r *FormRelay) Submit(ctx context.Context, payload RelayPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", payload.RelayKind(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach relay: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}
	return nil
}

// NoopRelay accepts everything. It is used when no relay URL is configured.
type NoopRelay struct{}

func (NoopRelay) Submit(context.Context, RelayPayload) error { return nil }

func NewNotificationRelay(url string, timeout time.Duration) NotificationRelay {
	if url == "" {
		return NoopRelay{}
	}
	return NewFormRelay(url, timeout)
}

// notify submits payload, recording the outcome. Callers decide whether the
// returned error matters.
func notify(ctx context.Context, relay NotificationRelay, m *metrics.Metrics, logger *zap.Logger, payload RelayPayload) error {
	err := relay.Submit(ctx, payload)
	m.RecordRelay(payload.RelayKind(), err)
	if err != nil {
		logger.Warn("notification relay failed", zap.String("kind", payload.RelayKind()), zap.Error(err))
	}
	return err
}
