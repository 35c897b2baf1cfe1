package application_test

import (
	"testing"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commitObject struct {
	VCI                string            `json:"vci"`
	Amount             int64             `json:"amount"`
	Status             string            `json:"status"`
	BuyOrder           string            `json:"buy_order"`
	SessionID          string            `json:"session_id"`
	CardDetail         *objectCardDetail `json:"card_detail,omitempty"`
	AccountingDate     string            `json:"accounting_date"`
	TransactionDate    string            `json:"transaction_date"`
	AuthorizationCode  string            `json:"authorization_code"`
	PaymentTypeCode    string            `json:"payment_type_code"`
	ResponseCode       int               `json:"response_code"`
	InstallmentsAmount *int64            `json:"installments_amount,omitempty"`
	InstallmentsNumber int               `json:"installments_number"`
	Balance            *int64            `json:"balance,omitempty"`
}

type objectCardDetail struct {
	CardNumber string `json:"card_number"`
}

// hybrid exposes attributes and a mapping that disagree.
type hybrid struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

func (h hybrid) AsMap() map[string]any {
	return map[string]any{"token": "from-map", "url": "http://map"}
}

func int64Ptr(v int64) *int64 { return &v }

func TestResolveResponse_ShapeInvariance(t *testing.T) {
	object := &commitObject{
		VCI:                "TSY",
		Amount:             1000,
		Status:             "AUTHORIZED",
		BuyOrder:           "ORDER1",
		SessionID:          "SESS1",
		CardDetail:         &objectCardDetail{CardNumber: "6623"},
		AccountingDate:     "0522",
		TransactionDate:    "2019-05-22T16:41:21.063Z",
		AuthorizationCode:  "1213",
		PaymentTypeCode:    "VN",
		ResponseCode:       0,
		InstallmentsAmount: int64Ptr(500),
		InstallmentsNumber: 2,
		Balance:            int64Ptr(0),
	}

	// What a JSON body with the same values decodes to.
	mapping := map[string]any{
		"vci":                 "TSY",
		"amount":              float64(1000),
		"status":              "AUTHORIZED",
		"buy_order":           "ORDER1",
		"session_id":          "SESS1",
		"card_detail":         map[string]any{"card_number": "6623"},
		"accounting_date":     "0522",
		"transaction_date":    "2019-05-22T16:41:21.063Z",
		"authorization_code":  "1213",
		"payment_type_code":   "VN",
		"response_code":       float64(0),
		"installments_amount": float64(500),
		"installments_number": float64(2),
		"balance":             float64(0),
	}

	fromObject, err := application.ResolveResponse(object)
	require.NoError(t, err)
	assert.Equal(t, application.ShapeObject, fromObject.Shape())

	fromMapping, err := application.ResolveResponse(mapping)
	require.NoError(t, err)
	assert.Equal(t, application.ShapeMapping, fromMapping.Shape())

	var a, b application.Confirmation
	require.NoError(t, fromObject.Decode(&a))
	require.NoError(t, fromMapping.Decode(&b))

	assert.Equal(t, a, b)
	assert.Equal(t, "6623", a.CardDetail.CardNumber)
	assert.Equal(t, int64(500), *a.InstallmentsAmount)
}

func TestResolveResponse_OptionalFieldsAbsentInBothShapes(t *testing.T) {
	fromObject, err := application.ResolveResponse(commitObject{Status: "FAILED", ResponseCode: -1})
	require.NoError(t, err)
	fromMapping, err := application.ResolveResponse(map[string]any{"status": "FAILED", "response_code": -1})
	require.NoError(t, err)

	var a, b application.Confirmation
	require.NoError(t, fromObject.Decode(&a))
	require.NoError(t, fromMapping.Decode(&b))

	assert.Equal(t, a, b)
	assert.Nil(t, a.Balance)
	assert.Nil(t, a.CardDetail)
}

func TestResolveResponse_MappingTakesPrecedence(t *testing.T) {
	resp, err := application.ResolveResponse(hybrid{Token: "from-attrs", URL: "http://attrs"})
	require.NoError(t, err)
	assert.Equal(t, application.ShapeMapping, resp.Shape())

	var created application.CreatedTransaction
	require.NoError(t, resp.Decode(&created))
	assert.Equal(t, "from-map", created.Token)
	assert.Equal(t, "http://map", created.URL)
}

func TestResolveResponse_Rejects(t *testing.T) {
	var nilObject *commitObject

	tests := []struct {
		name  string
		input any
	}{
		{name: "nil", input: nil},
		{name: "typed nil pointer", input: nilObject},
		{name: "scalar", input: "token"},
		{name: "slice", input: []string{"token"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := application.ResolveResponse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestGatewayResponse_ZeroValueFailsToDecode(t *testing.T) {
	var created application.CreatedTransaction
	err := application.GatewayResponse{}.Decode(&created)
	assert.ErrorIs(t, err, application.ErrEmptyResponse)
}

func TestGatewayResponse_MalformedMapping(t *testing.T) {
	resp := application.FromMapping(map[string]any{"status": 42})

	var confirmation application.Confirmation
	assert.Error(t, resp.Decode(&confirmation))
}
