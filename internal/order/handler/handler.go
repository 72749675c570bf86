package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/drinkshop/backend/internal/cart"
	"github.com/drinkshop/backend/internal/repositories/docstore"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/drinkshop/backend/pkg/metric"
	"github.com/drinkshop/backend/pkg/money"
	"github.com/drinkshop/backend/pkg/payment"
	"github.com/rs/zerolog/log"
)

// OrdersCollection is the document store collection holding order records
const OrdersCollection = "orders"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Customer identifies who placed an order. Guest orders carry an empty UID
// and IsGuest true.
type Customer struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IsGuest     bool   `json:"isGuest"`
}

// DeliveryInfo is the checkout contact block
type DeliveryInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

type Order struct {
	ID            string       `json:"id"`
	Customer      Customer     `json:"customer"`
	Delivery      DeliveryInfo `json:"delivery"`
	Lines         []cart.Line  `json:"lines"`
	Total         int64        `json:"total"`
	DisplayTotal  string       `json:"displayTotal"`
	PaymentMethod string       `json:"paymentMethod"`
	Status        string       `json:"status"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt,omitempty"`
}

type CreateRequest struct {
	Customer      Customer
	Delivery      DeliveryInfo
	Lines         []cart.Line
	PaymentMethod string
}

type Recorder interface {
	CreateOrder(ctx context.Context, request *CreateRequest) (*Order, error)
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	GetOrdersByUser(ctx context.Context, uid string) ([]Order, error)
	GetAllOrders(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

var (
	recorder Recorder
	once     sync.Once
)

type OrderHandler struct {
	store docstore.Store
}

// Init initializes the order handler with the given document store
func Init(store docstore.Store) Recorder {
	once.Do(func() {
		recorder = NewOrderHandler(store)
	})
	return recorder
}

// Instance returns the initialized order handler
func Instance() Recorder {
	if recorder == nil {
		log.Fatal().Msg("Order handler not initialized")
	}
	return recorder
}

func NewOrderHandler(store docstore.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// CreateOrder snapshots the cart into a pending order. Validation happens
// before the store is touched, so a rejected request records nothing.
func (h *OrderHandler) CreateOrder(ctx context.Context, request *CreateRequest) (*Order, error) {
	if len(request.Lines) == 0 {
		return nil, api.NewBadRequestError("cart is empty")
	}
	if request.PaymentMethod != payment.MethodBankTransfer && request.PaymentMethod != payment.MethodMoMo {
		return nil, api.NewBadRequestError("unsupported payment method")
	}

	var total int64
	for _, line := range request.Lines {
		total += line.Total()
	}

	order := Order{
		Customer:      request.Customer,
		Delivery:      request.Delivery,
		Lines:         request.Lines,
		Total:         total,
		DisplayTotal:  money.Format(total),
		PaymentMethod: request.PaymentMethod,
		Status:        StatusPending,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
	data, err := encodeOrder(order)
	if err != nil {
		return nil, err
	}
	id, err := h.store.Insert(ctx, OrdersCollection, data)
	if err != nil {
		return nil, err
	}
	order.ID = id

	metric.Incr(metric.OrderCreatedCount, metric.BuildTag(metric.NewTag(metric.TagPaymentMethod, request.PaymentMethod)))
	log.Info().Str("orderId", id).Int64("total", total).Str("paymentMethod", request.PaymentMethod).Msg("Order created")
	return &order, nil
}

func (h *OrderHandler) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	doc, err := h.store.Get(ctx, OrdersCollection, id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, api.NewNotFoundError("order not found")
		}
		return nil, err
	}
	order, err := decodeOrder(doc)
	if err != nil {
		return nil, err
	}
	order.ID = id
	return &order, nil
}

// GetOrdersByUser returns a customer's orders, newest first
func (h *OrderHandler) GetOrdersByUser(ctx context.Context, uid string) ([]Order, error) {
	docs, err := h.store.Query(ctx, OrdersCollection, "userUid", uid, docstore.QueryOptions{
		OrderByCreatedDesc: true,
	})
	if err != nil {
		return nil, err
	}
	return decodeOrders(docs)
}

// GetAllOrders returns every order, newest first
func (h *OrderHandler) GetAllOrders(ctx context.Context) ([]Order, error) {
	docs, err := h.store.GetAll(ctx, OrdersCollection)
	if err != nil {
		return nil, err
	}
	orders, err := decodeOrders(docs)
	if err != nil {
		return nil, err
	}
	// GetAll yields insertion order; newest first for the admin listing
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

// UpdateStatus moves an order through its lifecycle
func (h *OrderHandler) UpdateStatus(ctx context.Context, id, status string) error {
	if !validStatuses[status] {
		return api.NewBadRequestError("invalid order status")
	}
	err := h.store.Update(ctx, OrdersCollection, id, map[string]interface{}{
		"status":    status,
		"updatedAt": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		if err == docstore.ErrNotFound {
			return api.NewNotFoundError("order not found")
		}
		return err
	}
	log.Info().Str("orderId", id).Str("status", status).Msg("Order status updated")
	return nil
}

func encodeOrder(order Order) (map[string]interface{}, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, err
	}
	delete(data, "id")
	// flat copy of the owner uid so the store can query on it
	data["userUid"] = order.Customer.UID
	return data, nil
}

func decodeOrder(data map[string]interface{}) (Order, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Order{}, err
	}
	var order Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func decodeOrders(docs []docstore.Document) ([]Order, error) {
	orders := make([]Order, 0, len(docs))
	for _, doc := range docs {
		order, err := decodeOrder(doc.Data)
		if err != nil {
			return nil, err
		}
		order.ID = doc.ID
		orders = append(orders, order)
	}
	return orders, nil
}
