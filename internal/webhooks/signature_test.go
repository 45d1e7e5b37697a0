package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(key, url string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(url))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const (
		key = "test-signature-key"
		url = "https://example.com/api/v1/webhooks/square"
	)
	body := []byte(`{"type":"payment.updated","event_id":"evt_1"}`)

	tests := []struct {
		name      string
		key       string
		url       string
		body      []byte
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			key:       key,
			url:       url,
			body:      body,
			signature: signBody(key, url, body),
			want:      true,
		},
		{
			name:      "tampered body",
			key:       key,
			url:       url,
			body:      []byte(`{"type":"payment.updated","event_id":"evt_2"}`),
			signature: signBody(key, url, body),
			want:      false,
		},
		{
			name:      "wrong key",
			key:       key,
			url:       url,
			body:      body,
			signature: signBody("other-key", url, body),
			want:      false,
		},
		{
			name:      "wrong notification url",
			key:       key,
			url:       url,
			body:      body,
			signature: signBody(key, "https://evil.example.com/hook", body),
			want:      false,
		},
		{
			name:      "empty signature header",
			key:       key,
			url:       url,
			body:      body,
			signature: "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifySignature(tt.key, tt.url, tt.body, tt.signature)
			assert.Equal(t, tt.want, got)
		})
	}
}
