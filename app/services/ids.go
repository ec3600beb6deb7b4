package services

import (
	"strings"

	"github.com/google/uuid"
)

const (
	OrderIDPrefix             = "ORD-"
	MembershipRequestIDPrefix = "MEM-"
	MembershipCodePrefix      = "ELITE-"
)

// randomToken returns n upper-case alphanumeric characters.
func randomToken(n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return strings.ToUpper(b.String()[:n])
}

func newOrderID() string {
	return OrderIDPrefix + randomToken(9)
}

func newMembershipRequestID() string {
	return MembershipRequestIDPrefix + randomToken(9)
}

func newMemberID() string {
	return uuid.NewString()
}

func newMembershipCode() string {
	return MembershipCodePrefix + randomToken(6)
}
