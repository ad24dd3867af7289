package cloudpayments

// refundRequest тело запроса POST /payments/refund
type refundRequest struct {
	TransactionID int64   `json:"TransactionId"`
	Amount        float64 `json:"Amount"`
}

// apiResponse общий ответ API CloudPayments
type apiResponse struct {
	Success bool    `json:"Success"`
	Message *string `json:"Message"`
}
