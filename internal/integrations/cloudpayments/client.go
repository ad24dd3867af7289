// Package cloudpayments - клиент API CloudPayments.
// Уведомления шлюза принимает не этот клиент, а webhook-обработчики;
// здесь только исходящие вызовы (возврат платежа).
package cloudpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с API CloudPayments
type Client struct {
	baseURL    string
	publicID   string
	apiSecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CloudPayments.
// Аутентификация - HTTP Basic с парой PublicId:ApiSecret.
func NewClient(baseURL, publicID, apiSecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		publicID:  publicID,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Refund выполняет возврат платежа по ID транзакции на указанную сумму
func (c *Client) Refund(ctx context.Context, transactionID int64, amount float64) error {
	url := c.baseURL + "/payments/refund"

	body, err := json.Marshal(refundRequest{
		TransactionID: transactionID,
		Amount:        amount,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.SetBasicAuth(c.publicID, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !apiResp.Success {
		msg := "no message"
		if apiResp.Message != nil {
			msg = *apiResp.Message
		}
		c.log.Warn("CloudPayments refund rejected: transaction_id=%d, message=%s", transactionID, msg)
		return fmt.Errorf("%w: %s", ErrRefundRejected, msg)
	}

	c.log.Info("CloudPayments refund succeeded: transaction_id=%d, amount=%.2f", transactionID, amount)
	return nil
}
