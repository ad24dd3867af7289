package payment_webhooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strizhka-app/booking-service/internal/service/payments"
	"github.com/strizhka-app/booking-service/pkg/cpsign"
)

const testSecret = "test-api-secret"

type fakePaymentService struct {
	code int
	last *payments.Notification
}

func (f *fakePaymentService) Check(_ context.Context, n *payments.Notification) (int, error) {
	f.last = n
	return f.code, nil
}

func (f *fakePaymentService) Pay(_ context.Context, n *payments.Notification) (int, error) {
	f.last = n
	return f.code, nil
}

func (f *fakePaymentService) Fail(_ context.Context, n *payments.Notification) (int, error) {
	f.last = n
	return f.code, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandlePay_Post(t *testing.T) {
	svc := &fakePaymentService{code: 0}
	h := NewHandler(svc, testSecret, nopLogger{})

	body := `{"InvoiceId":"inv-1","AccountId":"+79990001122","Amount":1500.0,"TransactionId":987654}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cloudpayments/pay", strings.NewReader(body))
	req.Header.Set("X-Content-HMAC", cpsign.Sign(testSecret, []byte(body)))
	rec := httptest.NewRecorder()

	h.HandlePay(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":0}`, rec.Body.String())

	require.NotNil(t, svc.last)
	assert.Equal(t, "inv-1", svc.last.InvoiceID)
	assert.Equal(t, "+79990001122", svc.last.AccountID)
	require.NotNil(t, svc.last.Amount)
	assert.Equal(t, 1500.0, *svc.last.Amount)
	require.NotNil(t, svc.last.TransactionID)
	assert.Equal(t, int64(987654), *svc.last.TransactionID)
}

func TestHandleCheck_Get(t *testing.T) {
	// GET-уведомление: подписывается query string без ведущего '?'
	svc := &fakePaymentService{code: 0}
	h := NewHandler(svc, testSecret, nopLogger{})

	rawQuery := "InvoiceId=inv-1&AccountId=%2B79990001122&Amount=1500.00"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cloudpayments/check?"+rawQuery, nil)
	req.Header.Set("Content-HMAC", cpsign.Sign(testSecret, []byte(rawQuery)))
	rec := httptest.NewRecorder()

	h.HandleCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":0}`, rec.Body.String())

	require.NotNil(t, svc.last)
	assert.Equal(t, "inv-1", svc.last.InvoiceID)
	assert.Equal(t, "+79990001122", svc.last.AccountID)
	require.NotNil(t, svc.last.Amount)
	assert.Equal(t, 1500.0, *svc.last.Amount)
}

func TestHandle_InvalidSignature(t *testing.T) {
	svc := &fakePaymentService{code: 0}
	h := NewHandler(svc, testSecret, nopLogger{})

	body := `{"InvoiceId":"inv-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cloudpayments/pay", strings.NewReader(body))
	req.Header.Set("X-Content-HMAC", cpsign.Sign("wrong-secret", []byte(body)))
	rec := httptest.NewRecorder()

	h.HandlePay(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.last, "уведомление с неверной подписью не доходит до сервиса")
}

func TestHandle_MissingSignature(t *testing.T) {
	svc := &fakePaymentService{code: 0}
	h := NewHandler(svc, testSecret, nopLogger{})

	body := `{"InvoiceId":"inv-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cloudpayments/fail", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleFail(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBodyStillAcknowledged(t *testing.T) {
	// Подпись валидна, но тело не JSON: сервис получает пустое уведомление
	// и сам решает, каким кодом ответить
	svc := &fakePaymentService{code: 10}
	h := NewHandler(svc, testSecret, nopLogger{})

	body := `not-a-json`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cloudpayments/check", strings.NewReader(body))
	req.Header.Set("X-Content-HMAC", cpsign.Sign(testSecret, []byte(body)))
	rec := httptest.NewRecorder()

	h.HandleCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":10}`, rec.Body.String())

	require.NotNil(t, svc.last)
	assert.Empty(t, svc.last.InvoiceID)
}
