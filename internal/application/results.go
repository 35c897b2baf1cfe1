package application

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// FailureKind separates failures the gateway reported on purpose from
// failures reaching or understanding it.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureRejected
	FailureUnavailable
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "ok"
	case FailureRejected:
		return "rejected"
	case FailureUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// StatusAuthorized is the gateway status of an approved transaction.
const StatusAuthorized = "AUTHORIZED"

// CreatedTransaction is what the gateway returns when a transaction is opened.
type CreatedTransaction struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type CardDetail struct {
	CardNumber string `json:"card_number"`
}

// Confirmation holds the transaction attributes reported by commit and
// status, exactly as the gateway sent them.
type Confirmation struct {
	VCI                string      `json:"vci"`
	Amount             int64       `json:"amount"`
	Status             string      `json:"status"`
	BuyOrder           string      `json:"buy_order"`
	SessionID          string      `json:"session_id"`
	CardDetail         *CardDetail `json:"card_detail,omitempty"`
	AccountingDate     string      `json:"accounting_date"`
	TransactionDate    string      `json:"transaction_date"`
	AuthorizationCode  string      `json:"authorization_code"`
	PaymentTypeCode    string      `json:"payment_type_code"`
	ResponseCode       int         `json:"response_code"`
	InstallmentsAmount *int64      `json:"installments_amount,omitempty"`
	InstallmentsNumber int         `json:"installments_number"`
	Balance            *int64      `json:"balance,omitempty"`
}

// Paid reports whether the payer was actually charged. Both conditions are
// required: an AUTHORIZED status with a non-zero response code is a decline.
func (c *Confirmation) Paid() bool {
	return c != nil && c.Status == StatusAuthorized && c.ResponseCode == 0
}

// Refund holds the attributes reported by a refund. A full reversal only
// carries Type.
type Refund struct {
	Type              string `json:"type"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
	AuthorizationDate string `json:"authorization_date,omitempty"`
	NullifiedAmount   *int64 `json:"nullified_amount,omitempty"`
	Balance           *int64 `json:"balance,omitempty"`
	ResponseCode      *int   `json:"response_code,omitempty"`
}

// TransactionResult is the outcome of opening a transaction. On failure
// only Error is set.
type TransactionResult struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	URL     string      `json:"url,omitempty"`
	Error   string      `json:"error,omitempty"`
	Amount  int64       `json:"-"`
	Kind    FailureKind `json:"-"`
}

// ConfirmationResult is the outcome of commit and status. On failure the
// embedded Confirmation is nil so none of its fields are serialized.
type ConfirmationResult struct {
	Success bool `json:"success"`
	*Confirmation
	Error string      `json:"error,omitempty"`
	Kind  FailureKind `json:"-"`
}

type RefundResult struct {
	Success bool `json:"success"`
	*Refund
	Error string      `json:"error,omitempty"`
	Kind  FailureKind `json:"-"`
}

var ErrAmountOutOfRange = errors.New("amount does not fit in whole currency units")

var (
	minCurrencyUnits = decimal.NewFromInt(math.MinInt64)
	maxCurrencyUnits = decimal.NewFromInt(math.MaxInt64)
)

// FitsCurrencyUnits reports whether the truncated amount is representable
// as an int64.
func FitsCurrencyUnits(amount decimal.Decimal) bool {
	units := amount.Truncate(0)
	return units.GreaterThanOrEqual(minCurrencyUnits) && units.LessThanOrEqual(maxCurrencyUnits)
}

// ToCurrencyUnits truncates an amount to whole currency units, the only
// precision the gateway accepts.
func ToCurrencyUnits(amount decimal.Decimal) (int64, error) {
	if !FitsCurrencyUnits(amount) {
		return 0, ErrAmountOutOfRange
	}
	return amount.IntPart(), nil
}
