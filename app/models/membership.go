package models

import "time"

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "Pending"
	MembershipApproved MembershipStatus = "Approved"
	MembershipRejected MembershipStatus = "Rejected"
)

type MembershipRequest struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customer_name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	PaymentMethod PaymentMethod    `json:"payment_method"`
	TransactionID string           `json:"transaction_id"`
	Status        MembershipStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	DecidedAt     *time.Time       `json:"decided_at,omitempty"`
}

type Member struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id,omitempty"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	MembershipCode string    `json:"membership_code"`
	JoinedAt       time.Time `json:"joined_at"`
}
