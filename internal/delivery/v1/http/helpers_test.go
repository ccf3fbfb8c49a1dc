package http

import (
	"errors"
	netHttp "net/http"
	"testing"
	"time"

	"github.com/comptoir-pos/backend/pkg/e"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "5.99", want: 599},
		{in: "6", want: 600},
		{in: "0", want: 0},
		{in: "2.5", want: 250},
		{in: "", wantErr: e.ErrInvalidPrice},
		{in: "-1", wantErr: e.ErrInvalidPrice},
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "5.999", wantErr: e.ErrPricePrecision},
		{in: "2000000", wantErr: e.ErrInvalidPrice},
	}

	for _, tc := range cases {
		got, err := parsePriceToCents(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("parsePriceToCents(%q): expected %v, got %v", tc.in, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePriceToCents(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePriceToCents(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := formatCents(770); got != "7.70" {
		t.Errorf("expected 7.70, got %s", got)
	}
	if got := formatCents(0); got != "0.00" {
		t.Errorf("expected 0.00, got %s", got)
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.Wrap("op", e.ErrProductNameRequired), netHttp.StatusBadRequest},
		{e.Wrap("op", e.ErrInvalidDateRange), netHttp.StatusBadRequest},
		{e.Wrap("op", e.ErrAuthenticationFailed), netHttp.StatusUnauthorized},
		{e.Wrap("op", e.ErrProductNotFound), netHttp.StatusNotFound},
		{e.Wrap("op", e.ErrInvalidCheckout), netHttp.StatusConflict},
		{e.Wrap("op", e.ErrIllegalTransition), netHttp.StatusConflict},
		{e.Wrap("op", e.ErrExportDisabled), netHttp.StatusServiceUnavailable},
		{errors.New("boom"), netHttp.StatusInternalServerError},
	}

	for _, tc := range cases {
		if code, _ := ToHTTPResponse(tc.err); code != tc.code {
			t.Errorf("ToHTTPResponse(%v): expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-01-15")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}

	// полночь в зоне сервера, в которой штампуются заказы
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected local midnight %v, got %v", want, got)
	}

	if _, err := parseDate("15/01/2026"); !errors.Is(err, e.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}
