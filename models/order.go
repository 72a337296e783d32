package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentMethod string
type AddressType string

const (
	// Order statuses, in delivery progression order. Cancelled is reachable
	// from any non-terminal state and is absorbing.
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusOutForDelivery OrderStatus = "outForDelivery"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"

	PaymentMethodCOD      PaymentMethod = "COD"
	PaymentMethodRazorpay PaymentMethod = "RAZORPAY"

	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusProcessing:     1,
	OrderStatusOutForDelivery: 2,
	OrderStatusShipped:        3,
	OrderStatusDelivered:      4,
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
// Delivered and cancelled are terminal; cancellation is allowed from any
// non-terminal state; otherwise only forward moves in the progression count.
func CanTransition(from, to OrderStatus) bool {
	if from == OrderStatusDelivered || from == OrderStatusCancelled {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	fromRank, ok := orderStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := orderStatusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

type Order struct {
	ID                    string        `gorm:"primaryKey" json:"id"`
	UserID                string        `gorm:"index" json:"userId"`
	User                  *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status                OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TotalAmount           float64       `json:"totalAmount"`
	IsPaid                bool          `json:"isPaid"`
	SelectedPaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"selectedPaymentMethod"`
	SelectedAddressID     string        `json:"selectedAddressId"`
	SelectedAddress       *Address      `gorm:"foreignKey:SelectedAddressID" json:"selectedAddress,omitempty"`
	OrderComment          *string       `json:"orderComment"`
	OrderItems            []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

type OrderItem struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	OrderID   string   `gorm:"index" json:"orderId"`
	ProductID string   `json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"` // unit price at order time
}

type Address struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"index" json:"userId"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Street      string      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	PostalCode  string      `json:"postalCode"`
	Country     string      `json:"country"`
	AddressType AddressType `gorm:"type:VARCHAR(10)" json:"addressType"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
