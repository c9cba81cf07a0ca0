package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sign(secret, orderRef, paymentRef string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestClient_VerifySignature(t *testing.T) {
	client := NewClient("http://gateway", "key", "secret", time.Second, nopLogger{})

	validSig := sign("secret", "order_123", "pay_456")

	require.NoError(t, client.VerifySignature("order_123", "pay_456", validSig))

	// Подпись от другого платежа не проходит
	err := client.VerifySignature("order_123", "pay_457", validSig)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// Подпись на другом секрете не проходит
	wrongKeySig := sign("other-secret", "order_123", "pay_456")
	err = client.VerifySignature("order_123", "pay_456", wrongKeySig)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// Пустая подпись не проходит
	err = client.VerifySignature("order_123", "pay_456", "")
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}
