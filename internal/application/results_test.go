package application_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejection struct{ rejected bool }

func (r rejection) Error() string     { return "declined by gateway" }
func (r rejection) IsRejection() bool { return r.rejected }

func TestConfirmation_Paid(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		responseCode int
		want         bool
	}{
		{name: "authorized and approved", status: "AUTHORIZED", responseCode: 0, want: true},
		{name: "authorized but declined code", status: "AUTHORIZED", responseCode: -1, want: false},
		{name: "failed with zero code", status: "FAILED", responseCode: 0, want: false},
		{name: "failed and declined", status: "FAILED", responseCode: -1, want: false},
		{name: "lowercase status", status: "authorized", responseCode: 0, want: false},
		{name: "initialized", status: "INITIALIZED", responseCode: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &application.Confirmation{Status: tt.status, ResponseCode: tt.responseCode}
			assert.Equal(t, tt.want, c.Paid())
		})
	}

	var missing *application.Confirmation
	assert.False(t, missing.Paid())
}

func TestToCurrencyUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "1000", want: 1000},
		{in: "1000.75", want: 1000},
		{in: "1000.99999", want: 1000},
		{in: "0.5", want: 0},
		{in: "25000.0", want: 25000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := application.ToCurrencyUnits(decimal.RequireFromString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToCurrencyUnits_OutOfRange(t *testing.T) {
	tests := []string{
		"9223372036854775808",
		"18446744073709552616",
		"-9223372036854775809",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			amount := decimal.RequireFromString(in)
			assert.False(t, application.FitsCurrencyUnits(amount))

			_, err := application.ToCurrencyUnits(amount)
			assert.ErrorIs(t, err, application.ErrAmountOutOfRange)
		})
	}

	got, err := application.ToCurrencyUnits(decimal.RequireFromString("9223372036854775807.9"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestClassifyFailure(t *testing.T) {
	assert.Equal(t, application.FailureNone, application.ClassifyFailure(nil))
	assert.Equal(t, application.FailureRejected, application.ClassifyFailure(rejection{rejected: true}))
	assert.Equal(t, application.FailureRejected, application.ClassifyFailure(fmt.Errorf("commit: %w", rejection{rejected: true})))
	assert.Equal(t, application.FailureUnavailable, application.ClassifyFailure(rejection{rejected: false}))
	assert.Equal(t, application.FailureUnavailable, application.ClassifyFailure(errors.New("connection refused")))
	assert.Equal(t, application.FailureUnavailable, application.ClassifyFailure(context.DeadlineExceeded))
}

func TestErrorMessage_NeverEmpty(t *testing.T) {
	assert.Equal(t, "", application.ErrorMessage(nil))
	assert.Equal(t, "boom", application.ErrorMessage(errors.New("boom")))
	assert.NotEmpty(t, application.ErrorMessage(errors.New("")))
}

func TestConfirmationResult_FailureHasOnlyError(t *testing.T) {
	body, err := json.Marshal(application.ConfirmationResult{
		Error: "connection refused",
		Kind:  application.FailureUnavailable,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"connection refused"}`, string(body))
}

func TestConfirmationResult_SuccessFlattensFields(t *testing.T) {
	body, err := json.Marshal(application.ConfirmationResult{
		Success: true,
		Confirmation: &application.Confirmation{
			Status:     "AUTHORIZED",
			Amount:     1000,
			BuyOrder:   "ORDER1",
			CardDetail: &application.CardDetail{CardNumber: "6623"},
		},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "AUTHORIZED", decoded["status"])
	assert.Equal(t, "ORDER1", decoded["buy_order"])
	assert.Equal(t, map[string]any{"card_number": "6623"}, decoded["card_detail"])
	assert.NotContains(t, decoded, "error")
}
