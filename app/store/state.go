package store

import "github.com/Rakhulsr/cloth-cafe/app/models"

// Namespace prefixes every key the storefront writes to the backend.
const Namespace = "cloth_cafe_"

type Key string

const (
	KeyProducts           Key = "products"
	KeyCategories         Key = "categories"
	KeyOrders             Key = "orders"
	KeyMembershipRequests Key = "membership_requests"
	KeyMembers            Key = "members"
	KeyCart               Key = "cart"
	KeyUserPoints         Key = "user_points"
	KeyConfig             Key = "config"
	KeyUserProfile        Key = "user_profile"
)

var AllKeys = []Key{
	KeyProducts,
	KeyCategories,
	KeyOrders,
	KeyMembershipRequests,
	KeyMembers,
	KeyCart,
	KeyUserPoints,
	KeyConfig,
	KeyUserProfile,
}

func (k Key) StorageKey() string {
	return Namespace + string(k)
}

// State is the whole storefront as held in memory between writes.
type State struct {
	Products           []models.Product
	Categories         []models.Category
	Orders             []models.Order
	MembershipRequests []models.MembershipRequest
	Members            []models.Member
	Cart               models.Cart
	Points             int64
	Config             models.SiteConfig
	Profile            models.UserProfile
}

// Defaults are used whenever a key is missing or cannot be decoded.
type Defaults struct {
	Products   []models.Product
	Categories []models.Category
	Config     models.SiteConfig
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (s State) Clone() State {
	out := s
	out.Products = cloneSlice(s.Products)
	out.Categories = cloneSlice(s.Categories)
	out.Members = cloneSlice(s.Members)
	out.Cart = models.Cart(cloneSlice([]models.CartItem(s.Cart)))

	out.MembershipRequests = cloneSlice(s.MembershipRequests)
	for i, req := range out.MembershipRequests {
		if req.DecidedAt != nil {
			t := *req.DecidedAt
			out.MembershipRequests[i].DecidedAt = &t
		}
	}

	out.Orders = cloneSlice(s.Orders)
	for i := range out.Orders {
		out.Orders[i].Items = cloneSlice(s.Orders[i].Items)
	}
	return out
}
