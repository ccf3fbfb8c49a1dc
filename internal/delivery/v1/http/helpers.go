package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidPaymentMethod):
		return http.StatusBadRequest, e.ErrInvalidPaymentMethod.Error()
	case errors.Is(err, e.ErrInvalidDateRange):
		return http.StatusBadRequest, e.ErrInvalidDateRange.Error()
	case errors.Is(err, e.ErrAuthenticationFailed):
		return http.StatusUnauthorized, e.ErrAuthenticationFailed.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrInvalidCheckout):
		return http.StatusConflict, e.ErrInvalidCheckout.Error()
	case errors.Is(err, e.ErrIllegalTransition):
		return http.StatusConflict, e.ErrIllegalTransition.Error()
	case errors.Is(err, e.ErrExportDisabled):
		return http.StatusServiceUnavailable, e.ErrExportDisabled.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает JSON-тело запроса в dst с ограничением на размер.
func decodeJSON(r *http.Request, dst interface{}) error {
	const maxBodySize = 1 << 20

	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

// parsePriceToCents переводит строку вида "5.99" или "6" в евроценты.
// Отклоняет отрицательные значения, более двух знаков после запятой
// и суммы выше разумного потолка для чека кафе.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)
	return cents.IntPart(), nil
}

// formatCents форматирует евроценты как строку с двумя знаками, "2.50".
func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// parseDate разбирает календарную дату запроса дашборда в зоне сервера:
// заказы штампуются локальным временем, и явные границы диапазона должны
// жить в той же зоне, что и отметки времени журнала.
func parseDate(s string) (time.Time, error) {
	const layout = "2006-01-02"

	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, e.Wrap(s, e.ErrInvalidDateRange)
	}
	return t, nil
}
