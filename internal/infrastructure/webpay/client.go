package webpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
)

const transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

// Client talks to the Webpay Plus REST API. Responses come back
// mapping-style, exactly as decoded from the body.
type Client struct {
	baseURL      string
	commerceCode string
	apiKey       string
	httpClient   *http.Client
}

func NewClient(cfg config.WebpayConfig) *Client {
	return &Client{
		baseURL:      cfg.ResolveBaseURL(),
		commerceCode: cfg.CommerceCode,
		apiKey:       cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ application.GatewayClient = (*Client)(nil)

func (c *Client) Create(ctx context.Context, req application.CreateTransaction) (application.GatewayResponse, error) {
	body := createRequest{
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    req.Amount,
		ReturnURL: req.ReturnURL,
	}
	return c.send(ctx, http.MethodPost, c.baseURL+transactionsPath, &body)
}

func (c *Client) Commit(ctx context.Context, token string) (application.GatewayResponse, error) {
	return c.send(ctx, http.MethodPut, c.transactionURL(token), nil)
}

func (c *Client) Status(ctx context.Context, token string) (application.GatewayResponse, error) {
	return c.send(ctx, http.MethodGet, c.transactionURL(token), nil)
}

func (c *Client) Refund(ctx context.Context, token string, amount int64) (application.GatewayResponse, error) {
	body := refundRequest{Amount: amount}
	return c.send(ctx, http.MethodPost, c.transactionURL(token)+"/refunds", &body)
}

func (c *Client) transactionURL(token string) string {
	return fmt.Sprintf("%s%s/%s", c.baseURL, transactionsPath, url.PathEscape(token))
}

func (c *Client) send(ctx context.Context, method, url string, reqBody any) (application.GatewayResponse, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return application.GatewayResponse{}, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return application.GatewayResponse{}, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Tbk-Api-Key-Id", c.commerceCode)
	httpReq.Header.Set("Tbk-Api-Key-Secret", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return application.GatewayResponse{}, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return application.GatewayResponse{}, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp gatewayErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.ErrorMessage == "" {
			message := string(bytes.TrimSpace(body))
			if message == "" {
				message = http.StatusText(resp.StatusCode)
			}
			return application.GatewayResponse{}, &GatewayError{
				StatusCode: resp.StatusCode,
				Message:    message,
			}
		}
		return application.GatewayResponse{}, &GatewayError{
			StatusCode: resp.StatusCode,
			Message:    errResp.ErrorMessage,
		}
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return application.GatewayResponse{}, fmt.Errorf("error decoding json response: %w", err)
	}

	return application.ResolveResponse(fields)
}
