package cloudpayments

import "errors"

var (
	// ErrRefundRejected возвращается, когда API возврата ответил Success=false
	ErrRefundRejected = errors.New("cloudpayments client: refund rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cloudpayments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("cloudpayments client: invalid response")
)
