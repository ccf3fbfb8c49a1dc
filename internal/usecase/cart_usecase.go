package usecase

import (
	"context"

	"github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/shopspring/decimal"
)

// CartUsecase ведёт открытую корзину активного официанта. Корзина живёт
// только в памяти процесса и не переживает перезапуск.
type CartUsecase struct {
	store *store.Store
	cfg   *cfg.PosCfg
}

func NewCartUC(store *store.Store, cfg *cfg.PosCfg) *CartUsecase {
	return &CartUsecase{
		store: store,
		cfg:   cfg,
	}
}

// View возвращает снимок корзины с подытогом, налогом и итогом.
func (c *CartUsecase) View(ctx context.Context) *CartView {
	c.store.Lock()
	defer c.store.Unlock()

	return c.view()
}

// AddItem добавляет позицию каталога в корзину. Повторное добавление того же
// продукта наращивает количество существующей строки; поля продукта
// копируются, позднейшие правки каталога открытую корзину не затрагивают.
func (c *CartUsecase) AddItem(ctx context.Context, productID string) (*CartView, error) {
	const op = "CartUsecase.AddItem"

	c.store.Lock()
	defer c.store.Unlock()

	for i := range c.store.Cart {
		if c.store.Cart[i].ProductID == productID {
			c.store.Cart[i].Quantity++
			return c.view(), nil
		}
	}

	product := c.store.FindProduct(productID)
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	c.store.Cart = append(c.store.Cart, domain.OrderLine{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Quantity:  1,
	})

	return c.view(), nil
}

// RemoveItem удаляет строку целиком независимо от количества.
// Отсутствующая строка — идемпотентный no-op.
func (c *CartUsecase) RemoveItem(ctx context.Context, productID string) *CartView {
	c.store.Lock()
	defer c.store.Unlock()

	for i := range c.store.Cart {
		if c.store.Cart[i].ProductID == productID {
			c.store.Cart = append(c.store.Cart[:i], c.store.Cart[i+1:]...)
			break
		}
	}

	return c.view()
}

// ChangeQuantity смещает количество строки на delta с зажимом снизу единицей:
// этим путём строка никогда не удаляется, каким бы ни был delta.
func (c *CartUsecase) ChangeQuantity(ctx context.Context, productID string, delta int) *CartView {
	c.store.Lock()
	defer c.store.Unlock()

	for i := range c.store.Cart {
		if c.store.Cart[i].ProductID == productID {
			q := c.store.Cart[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.store.Cart[i].Quantity = q
			break
		}
	}

	return c.view()
}

// Clear опустошает корзину.
func (c *CartUsecase) Clear(ctx context.Context) {
	c.store.Lock()
	defer c.store.Unlock()

	c.store.Cart = nil
}

// view собирает снимок корзины. Вызывается под Lock.
func (c *CartUsecase) view() *CartView {
	lines := make([]domain.OrderLine, len(c.store.Cart))
	copy(lines, c.store.Cart)

	var subtotal int64
	for _, l := range lines {
		subtotal += l.LineTotal()
	}

	tax := taxOf(subtotal, c.cfg.TaxRateBps)

	return &CartView{
		Lines:      lines,
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}

// taxOf считает налог от подытога по ставке в базисных пунктах,
// округляя до цента.
func taxOf(subtotal int64, rateBps int) int64 {
	return decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(int64(rateBps))).
		Div(decimal.NewFromInt(10_000)).
		Round(0).
		IntPart()
}
