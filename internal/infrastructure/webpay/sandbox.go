package webpay

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/google/uuid"
)

const (
	sandboxStatusInitialized = "INITIALIZED"
	sandboxStatusFailed      = "FAILED"
	sandboxStatusReversed    = "REVERSED"
	sandboxStatusNullified   = "NULLIFIED"
	sandboxStatusPartial     = "PARTIALLY_NULLIFIED"

	// Buy orders starting with this prefix are declined on commit.
	SandboxDeclinePrefix = "DECLINE"

	maxBuyOrderLength = 26
)

type sandboxTransaction struct {
	request   application.CreateTransaction
	status    string
	committed bool
	balance   int64
	createdAt time.Time
}

// Sandbox is an in-memory stand-in for Webpay used for local development.
// Its responses are object-style.
type Sandbox struct {
	mu           sync.Mutex
	transactions map[string]*sandboxTransaction
	paymentURL   string
	now          func() time.Time
}

func NewSandbox(baseURL string) *Sandbox {
	return &Sandbox{
		transactions: make(map[string]*sandboxTransaction),
		paymentURL:   strings.TrimRight(baseURL, "/") + "/webpayserver/initTransaction",
		now:          time.Now,
	}
}

var _ application.GatewayClient = (*Sandbox)(nil)

func (s *Sandbox) Create(ctx context.Context, req application.CreateTransaction) (application.GatewayResponse, error) {
	if err := ctx.Err(); err != nil {
		return application.GatewayResponse{}, err
	}

	switch {
	case req.BuyOrder == "" || utf8.RuneCountInString(req.BuyOrder) > maxBuyOrderLength:
		return application.GatewayResponse{}, rejected("Invalid value for parameter: buy_order")
	case req.SessionID == "":
		return application.GatewayResponse{}, rejected("Invalid value for parameter: session_id")
	case req.Amount <= 0:
		return application.GatewayResponse{}, rejected("Invalid value for parameter: amount")
	case req.ReturnURL == "":
		return application.GatewayResponse{}, rejected("Invalid value for parameter: return_url")
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ReplaceAll(uuid.NewString(), "-", "")

	s.mu.Lock()
	s.transactions[token] = &sandboxTransaction{
		request:   req,
		status:    sandboxStatusInitialized,
		balance:   req.Amount,
		createdAt: s.now(),
	}
	s.mu.Unlock()

	return application.FromObject(&CreateResponse{
		Token: token,
		URL:   s.paymentURL,
	}), nil
}

func (s *Sandbox) Commit(ctx context.Context, token string) (application.GatewayResponse, error) {
	if err := ctx.Err(); err != nil {
		return application.GatewayResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[token]
	if !ok {
		return application.GatewayResponse{}, rejected("Transaction not found")
	}
	if tx.committed {
		return application.GatewayResponse{}, rejected("Invalid status '" + tx.status + "' for transaction while authorizing")
	}

	tx.committed = true
	tx.status = application.StatusAuthorized
	if strings.HasPrefix(tx.request.BuyOrder, SandboxDeclinePrefix) {
		tx.status = sandboxStatusFailed
		tx.balance = 0
	}

	return application.FromObject(s.describe(tx)), nil
}

func (s *Sandbox) Status(ctx context.Context, token string) (application.GatewayResponse, error) {
	if err := ctx.Err(); err != nil {
		return application.GatewayResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[token]
	if !ok {
		return application.GatewayResponse{}, rejected("Transaction not found")
	}

	return application.FromObject(s.describe(tx)), nil
}

func (s *Sandbox) Refund(ctx context.Context, token string, amount int64) (application.GatewayResponse, error) {
	if err := ctx.Err(); err != nil {
		return application.GatewayResponse{}, err
	}
	if amount <= 0 {
		return application.GatewayResponse{}, rejected("Invalid value for parameter: amount")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[token]
	if !ok {
		return application.GatewayResponse{}, rejected("Transaction not found")
	}
	if tx.status != application.StatusAuthorized && tx.status != sandboxStatusPartial {
		return application.GatewayResponse{}, rejected("Invalid status '" + tx.status + "' for transaction while refunding")
	}
	if amount > tx.balance {
		return application.GatewayResponse{}, rejected(fmt.Sprintf("Amount to refund %d is bigger than balance %d", amount, tx.balance))
	}

	// A full refund on an untouched transaction is a reversal.
	if tx.status == application.StatusAuthorized && amount == tx.request.Amount {
		tx.status = sandboxStatusReversed
		tx.balance = 0
		return application.FromObject(&RefundResponse{Type: sandboxStatusReversed}), nil
	}

	tx.balance -= amount
	tx.status = sandboxStatusPartial
	if tx.balance == 0 {
		tx.status = sandboxStatusNullified
	}

	nullified := amount
	balance := tx.balance
	responseCode := 0
	return application.FromObject(&RefundResponse{
		Type:              sandboxStatusNullified,
		AuthorizationCode: "123456",
		AuthorizationDate: s.now().UTC().Format(time.RFC3339),
		NullifiedAmount:   &nullified,
		Balance:           &balance,
		ResponseCode:      &responseCode,
	}), nil
}

func (s *Sandbox) describe(tx *sandboxTransaction) *TransactionResponse {
	resp := &TransactionResponse{
		Amount:          tx.request.Amount,
		Status:          tx.status,
		BuyOrder:        tx.request.BuyOrder,
		SessionID:       tx.request.SessionID,
		TransactionDate: tx.createdAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	if !tx.committed {
		return resp
	}

	balance := tx.balance
	resp.VCI = "TSY"
	resp.CardDetail = &CardDetail{CardNumber: "6623"}
	resp.AccountingDate = tx.createdAt.Format("0102")
	resp.PaymentTypeCode = "VD"
	resp.Balance = &balance

	if tx.status == sandboxStatusFailed {
		resp.ResponseCode = -1
		resp.AuthorizationCode = "000000"
		return resp
	}

	resp.AuthorizationCode = "1213"
	return resp
}
