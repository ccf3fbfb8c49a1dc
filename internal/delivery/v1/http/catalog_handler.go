package http

import (
	"net/http"

	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type addProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

// listProducts
//
//	@Summary	Каталог товаров
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	ProductResponse	"Позиции каталога"
//	@Router		/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewProductListResponse(h.catalogUsecase.ListProducts(r.Context())))
}

// categories
//
//	@Summary	Категории каталога
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	string	"Различные категории в порядке появления"
//	@Router		/products/categories [get]
func (h *CatalogHandler) categories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.catalogUsecase.Categories(r.Context()))
}

// addProduct
//
//	@Summary		Добавление товара
//	@Description	Создаёт позицию каталога. Цена — строка вида "5.90"
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addProductRequest	true	"Название, категория, цена"
//	@Success		201		{object}	ProductResponse		"Созданная позиция"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/products [post]
func (h *CatalogHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d %s: price=%q", http.StatusBadRequest, err.Error(), req.Price)
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.AddProduct(r.Context(), usecase.NewAddProductReq(req.Name, req.Category, priceCents))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// removeProduct
//
//	@Summary		Удаление товара
//	@Description	Убирает позицию из каталога. Неизвестный ID — no-op
//	@Tags			catalog
//	@Param			id	path	string	true	"ID товара"
//	@Success		204	"Позиция удалена либо отсутствовала"
//	@Router			/products/{id} [delete]
func (h *CatalogHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	h.catalogUsecase.RemoveProduct(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
