package handler

import (
	"context"
	"testing"

	"github.com/drinkshop/backend/internal/cart"
	"github.com/drinkshop/backend/internal/catalog"
	"github.com/drinkshop/backend/internal/repositories/docstore"
	"github.com/drinkshop/backend/pkg/payment"
	"github.com/stretchr/testify/assert"
)

func sampleLines() []cart.Line {
	return []cart.Line{
		{
			LineID:    "line-1",
			ProductID: "p1",
			Name:      "Trà sữa trân châu",
			BasePrice: 45000,
			SizeName:  "L",
			SizeDelta: 10000,
			Toppings:  []catalog.Topping{{ID: "tran-chau-den", Name: "Trân châu đen", PriceDelta: 5000}},
			Quantity:  2,
		},
		{
			LineID:    "line-2",
			ProductID: "p2",
			Name:      "Cà phê sữa đá",
			BasePrice: 35000,
			SizeName:  "M",
			Quantity:  1,
		},
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	h := NewOrderHandler(docstore.NewMemoryStore())

	order, err := h.CreateOrder(ctx, &CreateRequest{
		Customer:      Customer{UID: "uid-1", Email: "khach@example.com", DisplayName: "Khách"},
		Delivery:      DeliveryInfo{Name: "Khách", Phone: "0901234567", Address: "12 Lý Thường Kiệt"},
		Lines:         sampleLines(),
		PaymentMethod: payment.MethodBankTransfer,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, StatusPending, order.Status)
	assert.NotEmpty(t, order.CreatedAt)
	// (45000+10000+5000)*2 + 35000
	assert.Equal(t, int64(155000), order.Total)
	assert.Equal(t, "155.000 ₫", order.DisplayTotal)

	fetched, err := h.GetOrderByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.Total, fetched.Total)
	assert.Len(t, fetched.Lines, 2)
	assert.Equal(t, "Trà sữa trân châu", fetched.Lines[0].Name)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	h := NewOrderHandler(docstore.NewMemoryStore())
	_, err := h.CreateOrder(context.Background(), &CreateRequest{
		Customer:      Customer{UID: "uid-1"},
		PaymentMethod: payment.MethodMoMo,
	})
	assert.Error(t, err)
}

func TestCreateOrderUnsupportedPaymentMethod(t *testing.T) {
	h := NewOrderHandler(docstore.NewMemoryStore())
	_, err := h.CreateOrder(context.Background(), &CreateRequest{
		Customer:      Customer{UID: "uid-1"},
		Lines:         sampleLines(),
		PaymentMethod: "thẻ tín dụng",
	})
	assert.Error(t, err)
}

func TestGuestOrder(t *testing.T) {
	ctx := context.Background()
	h := NewOrderHandler(docstore.NewMemoryStore())

	order, err := h.CreateOrder(ctx, &CreateRequest{
		Customer:      Customer{IsGuest: true},
		Lines:         sampleLines(),
		PaymentMethod: payment.MethodMoMo,
	})
	assert.NoError(t, err)

	fetched, err := h.GetOrderByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.True(t, fetched.Customer.IsGuest)
	assert.Empty(t, fetched.Customer.UID)
}

func TestGetOrdersByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	h := NewOrderHandler(docstore.NewMemoryStore())

	for i := 0; i < 3; i++ {
		_, err := h.CreateOrder(ctx, &CreateRequest{
			Customer:      Customer{UID: "uid-1"},
			Lines:         sampleLines()[:1],
			PaymentMethod: payment.MethodBankTransfer,
		})
		assert.NoError(t, err)
	}
	other, err := h.CreateOrder(ctx, &CreateRequest{
		Customer:      Customer{UID: "uid-2"},
		Lines:         sampleLines(),
		PaymentMethod: payment.MethodMoMo,
	})
	assert.NoError(t, err)

	orders, err := h.GetOrdersByUser(ctx, "uid-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	for _, order := range orders {
		assert.Equal(t, "uid-1", order.Customer.UID)
	}

	all, err := h.GetAllOrders(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, other.ID, all[0].ID, "admin listing is newest first")
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	h := NewOrderHandler(docstore.NewMemoryStore())

	order, err := h.CreateOrder(ctx, &CreateRequest{
		Customer:      Customer{UID: "uid-1"},
		Lines:         sampleLines(),
		PaymentMethod: payment.MethodBankTransfer,
	})
	assert.NoError(t, err)

	assert.NoError(t, h.UpdateStatus(ctx, order.ID, StatusConfirmed))
	fetched, err := h.GetOrderByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, fetched.Status)
	assert.NotEmpty(t, fetched.UpdatedAt)
	assert.Equal(t, int64(155000), fetched.Total, "status update does not disturb the snapshot")

	assert.Error(t, h.UpdateStatus(ctx, order.ID, "shipped"), "unknown status is rejected")
	assert.Error(t, h.UpdateStatus(ctx, "missing", StatusConfirmed))
}
