package core

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// OrderItem is one line of an order, priced at creation time.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type Order struct {
	ID          int64       `json:"id"`
	RoomNumber  string      `json:"room_number"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

type ServiceRequest struct {
	ID          int64     `json:"id"`
	RoomNumber  string    `json:"room_number"`
	RequestType string    `json:"request_type"`
	Details     string    `json:"details"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

const StatusPending = "Pending"

var (
	OrderStatuses   = []string{"Pending", "Preparing", "Delivered", "Cancelled"}
	RequestStatuses = []string{"Pending", "In Progress", "Completed", "Cancelled"}
)

func ValidOrderStatus(s string) bool {
	return contains(OrderStatuses, s)
}

func ValidRequestStatus(s string) bool {
	return contains(RequestStatuses, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// ListFilter narrows order / service-request listings for the staff surfaces.
type ListFilter struct {
	Status     string
	RoomNumber string
	Limit      int
}

type MenuRepository interface {
	List(ctx context.Context) ([]MenuItem, error)
	// FindByName does a case-insensitive partial match, first hit wins.
	FindByName(ctx context.Context, name string) (*MenuItem, error)
	Insert(ctx context.Context, item MenuItem) error
	Count(ctx context.Context) (int, error)
}

type OrdersRepository interface {
	Create(ctx context.Context, order *Order) error
	List(ctx context.Context, filter ListFilter) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Count(ctx context.Context) (int, error)
}

type RequestsRepository interface {
	Create(ctx context.Context, req *ServiceRequest) error
	List(ctx context.Context, filter ListFilter) ([]ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Count(ctx context.Context) (int, error)
}
