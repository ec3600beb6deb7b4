package models

// UserProfile holds the flags of the storefront's single shopper.
type UserProfile struct {
	IsElite        bool   `json:"is_elite"`
	MembershipCode string `json:"membership_code,omitempty"`
}
