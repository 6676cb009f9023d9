package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/clubedepontos/loyaltyhook/internal/models"
)

// Verifier checks webhook payload signatures against the shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates new Verifier instance
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign returns the base64-encoded HMAC-SHA256 digest of payload.
func (v *Verifier) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify compares the header-supplied signature against the digest of the
// raw payload bytes as transmitted. The comparison is constant time.
func (v *Verifier) Verify(payload []byte, signature string) error {
	if signature == "" {
		return models.ErrMissingSignature
	}
	if !hmac.Equal([]byte(signature), []byte(v.Sign(payload))) {
		return models.ErrInvalidSignature
	}
	return nil
}
