package webpay

type createRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

type CreateResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type CardDetail struct {
	CardNumber string `json:"card_number"`
}

type TransactionResponse struct {
	VCI                string      `json:"vci,omitempty"`
	Amount             int64       `json:"amount"`
	Status             string      `json:"status"`
	BuyOrder           string      `json:"buy_order"`
	SessionID          string      `json:"session_id"`
	CardDetail         *CardDetail `json:"card_detail,omitempty"`
	AccountingDate     string      `json:"accounting_date,omitempty"`
	TransactionDate    string      `json:"transaction_date"`
	AuthorizationCode  string      `json:"authorization_code,omitempty"`
	PaymentTypeCode    string      `json:"payment_type_code,omitempty"`
	ResponseCode       int         `json:"response_code"`
	InstallmentsAmount *int64      `json:"installments_amount,omitempty"`
	InstallmentsNumber int         `json:"installments_number"`
	Balance            *int64      `json:"balance,omitempty"`
}

type RefundResponse struct {
	Type              string `json:"type"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
	AuthorizationDate string `json:"authorization_date,omitempty"`
	NullifiedAmount   *int64 `json:"nullified_amount,omitempty"`
	Balance           *int64 `json:"balance,omitempty"`
	ResponseCode      *int   `json:"response_code,omitempty"`
}
