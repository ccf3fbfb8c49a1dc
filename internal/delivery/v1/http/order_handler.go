package http

import (
	"net/http"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Финализирует корзину в оплаченный заказ журнала
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checkoutRequest	true	"Способ оплаты: CASH, CARD или пусто"
//	@Success		201		{object}	OrderResponse	"Созданный заказ"
//	@Failure		409		{object}	ErrorResponse	"Нет официанта или корзина пуста"
//	@Router			/orders/checkout [post]
func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.Checkout(r.Context(), usecase.NewCheckoutReq(domain.PaymentMethod(req.PaymentMethod)))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewOrderResponse(order))
}

// listOrders
//
//	@Summary		Журнал заказов
//	@Description	Все заказы смены, новые первыми
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	OrderResponse	"Заказы журнала"
//	@Router			/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewOrderListResponse(h.orderUsecase.ListOrders(r.Context())))
}
