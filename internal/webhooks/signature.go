package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/pkg/errors"
)

// Configuration failures around signature checking. These must surface as
// HTTP 500, never as 401: treating them as a signature mismatch would make an
// operational misconfiguration indistinguishable from an attack.
var (
	ErrMissingSignatureKey = errors.New("webhook signature key is not configured")
	ErrMissingRawBody      = errors.New("raw request body is unavailable for signature verification")
)

// VerifySignature checks a Square webhook signature. Square signs the
// notification URL concatenated with the raw request body using
// HMAC-SHA256 keyed by the webhook signature key, then base64-encodes the
// digest. The comparison is constant-time.
func VerifySignature(signatureKey, notificationURL string, body []byte, signatureHeader string) bool {
	mac := hmac.New(sha256.New, []byte(signatureKey))
	mac.Write([]byte(notificationURL))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}
