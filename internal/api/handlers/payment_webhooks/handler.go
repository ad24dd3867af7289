package payment_webhooks

import (
	"context"
	"io"
	"net/http"

	"github.com/strizhka-app/booking-service/internal/api/handlers"
	"github.com/strizhka-app/booking-service/internal/service/payments"
	"github.com/strizhka-app/booking-service/pkg/cpsign"
)

const msgInvalidSignature = "Invalid signature"

// Handler обрабатывает уведомления CloudPayments (Check/Pay/Fail).
// Подпись проверяется над сырым сообщением до какого-либо разбора:
// для POST это тело запроса байт-в-байт, для GET - query string без '?'.
type Handler struct {
	service   PaymentService
	apiSecret string
	logger    Logger
}

func NewHandler(service PaymentService, apiSecret string, logger Logger) *Handler {
	return &Handler{
		service:   service,
		apiSecret: apiSecret,
		logger:    logger,
	}
}

// HandleCheck GET|POST /api/v1/cloudpayments/check
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "check", h.service.Check)
}

// HandlePay GET|POST /api/v1/cloudpayments/pay
func (h *Handler) HandlePay(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "pay", h.service.Pay)
}

// HandleFail GET|POST /api/v1/cloudpayments/fail
func (h *Handler) HandleFail(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "fail", h.service.Fail)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, kind string, op func(context.Context, *payments.Notification) (int, error)) {
	rawMessage, payload, err := h.readMessage(r)
	if err != nil {
		h.logger.Error("CloudPayments %s - Failed to read message: %v", kind, err)
		handlers.RespondInternalError(w)
		return
	}

	if !cpsign.Verify(h.apiSecret, rawMessage,
		r.Header.Get("X-Content-HMAC"), r.Header.Get("Content-HMAC")) {
		h.logger.Warn("CloudPayments %s - Invalid HMAC signature", kind)
		handlers.RespondBadRequest(w, msgInvalidSignature)
		return
	}

	code, err := op(r.Context(), toNotification(payload))
	if err != nil {
		// 5xx заставит шлюз повторить доставку, обработка идемпотентна
		h.logger.Error("CloudPayments %s - Processing failed: %v", kind, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("CloudPayments %s - Responded with code=%d", kind, code)
	handlers.RespondJSON(w, http.StatusOK, CodeResponse{Code: code})
}

// readMessage возвращает сырое подписанное сообщение и разобранный payload
func (h *Handler) readMessage(r *http.Request) ([]byte, map[string]interface{}, error) {
	if r.Method == http.MethodGet {
		raw := r.URL.RawQuery
		return []byte(raw), parseQueryPayload(r.URL.Query()), nil
	}

	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, nil, err
	}
	return raw, parseJSONPayload(raw), nil
}
