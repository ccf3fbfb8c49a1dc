package usecase

import (
	"context"

	"github.com/comptoir-pos/backend/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context) []domain.Product
	Categories(ctx context.Context) []string
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	RemoveProduct(ctx context.Context, id string)
}

type CartUC interface {
	View(ctx context.Context) *CartView
	AddItem(ctx context.Context, productID string) (*CartView, error)
	RemoveItem(ctx context.Context, productID string) *CartView
	ChangeQuantity(ctx context.Context, productID string, delta int) *CartView
	Clear(ctx context.Context)
}

type OrderUC interface {
	Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error)
	ListOrders(ctx context.Context) []domain.Order
	// SetStatus перезаписывает статус без проверки переходов: валидация
	// легальности перехода — обязанность кухонного usecase.
	SetStatus(ctx context.Context, orderID string, status domain.OrderStatus)
	// SetStatusFrom перезаписывает статус только если текущий равен from,
	// атомарно относительно других мутаций журнала.
	SetStatusFrom(ctx context.Context, orderID string, from, to domain.OrderStatus) (*domain.Order, error)
}

type KitchenUC interface {
	ActiveBoard(ctx context.Context) []domain.Order
	ReadyBoard(ctx context.Context) []domain.Order
	MarkReady(ctx context.Context, orderID string) (*domain.Order, error)
	Archive(ctx context.Context, orderID string) (*domain.Order, error)
}

type ReportUC interface {
	Build(ctx context.Context, req *ReportReq) (*Report, error)
	Export(ctx context.Context, req *ReportReq) (*ExportRes, error)
}

type SessionUC interface {
	Login(ctx context.Context, waiterID, pin string) (*domain.Waiter, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) *domain.Waiter
	Waiters(ctx context.Context) []domain.Waiter
}
