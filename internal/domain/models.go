// internal/domain/models.go
package domain

import "time"

// User is the single signed-in account. The mock auth layer synthesizes one
// on every successful sign-in or sign-up; only the hard-coded admin account
// carries IsAdmin.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IsAdmin     bool   `json:"isAdmin,omitempty"`
}

// Medicine is static, read-only catalog data.
type Medicine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// CartItem is one cart line. Items are keyed by medicine id, unique within
// the cart, and never persisted with Quantity < 1.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Severity is the qualitative risk level of a drug interaction.
type Severity string

const (
	SeverityMild       Severity = "mild"
	SeverityModerate   Severity = "moderate"
	SeveritySevere     Severity = "severe"
	SeverityBeneficial Severity = "beneficial"
)

// InteractionRecord relates two medicines. The pair is unordered: a lookup
// for (A, B) and (B, A) must hit the same record.
type InteractionRecord struct {
	Medicine1      string   `json:"medicine1"`
	Medicine2      string   `json:"medicine2"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// Matches reports whether the record covers the unordered pair (a, b).
func (r InteractionRecord) Matches(a, b string) bool {
	return (r.Medicine1 == a && r.Medicine2 == b) ||
		(r.Medicine1 == b && r.Medicine2 == a)
}

// Customer is the checkout form data attached to an order.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

const OrderStatusPending = "Pending"

// Order is created at checkout and immutable afterwards. Items is a snapshot
// of the cart at submission time.
type Order struct {
	ID            string     `json:"id"`
	Customer      Customer   `json:"customer"`
	PaymentMethod string     `json:"paymentMethod"`
	Notes         string     `json:"notes,omitempty"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	UserID        string     `json:"userId,omitempty"`
}
