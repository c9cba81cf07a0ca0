package payments

import "errors"

var (
	// ErrOrderCreateFailed возвращается, когда платёжный шлюз не смог создать заказ
	ErrOrderCreateFailed = errors.New("payments: failed to create order")

	// ErrSignatureMismatch возвращается, когда подпись платежа не прошла проверку
	ErrSignatureMismatch = errors.New("payments: payment signature mismatch")

	// ErrInvalidResponse возвращается при некорректном ответе платёжного шлюза
	ErrInvalidResponse = errors.New("payments: invalid gateway response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments: internal error")
)
