package signature

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/metrics"
)

const (
	SignatureHeader = "X-Signature"
	TimestampHeader = "X-Signature-Timestamp"

	DefaultClockSkew = 5 * time.Minute

	maxBodySize = 1 << 20
)

var ErrTimestampInvalid = errors.New("signature timestamp invalid")

// Verifier checks HMAC-SHA256 signatures of gateway callbacks. The signed
// message is method, escaped path, timestamp and hex sha256 of the body, one
// per line.
type Verifier struct {
	secret    []byte
	clockSkew time.Duration
	now       func() time.Time
}

func New(secret string, clockSkew time.Duration) *Verifier {
	if clockSkew <= 0 {
		clockSkew = DefaultClockSkew
	}

	return &Verifier{
		secret:    []byte(strings.TrimSpace(secret)),
		clockSkew: clockSkew,
		now:       time.Now,
	}
}

func (v *Verifier) RequireSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(v.secret) == 0 {
			v.reject(w, r, http.StatusServiceUnavailable, "secret_not_configured", "callback verification unavailable")
			return
		}

		signature := strings.TrimSpace(r.Header.Get(SignatureHeader))
		if len(signature) == 0 {
			v.reject(w, r, http.StatusUnauthorized, "signature_missing", "signature header missing")
			return
		}

		timestamp := strings.TrimSpace(r.Header.Get(TimestampHeader))
		signedAt, err := parseTimestamp(timestamp)
		if err != nil {
			v.reject(w, r, http.StatusUnauthorized, "timestamp_invalid", "signature timestamp invalid")
			return
		}
		if skew := v.now().Sub(signedAt); skew > v.clockSkew || skew < -v.clockSkew {
			v.reject(w, r, http.StatusUnauthorized, "timestamp_skew", "signature timestamp outside allowed window")
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			v.reject(w, r, http.StatusBadRequest, "body_unreadable", "unable to read body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		decoded, err := hex.DecodeString(signature)
		if err != nil || !hmac.Equal(decoded, compute(v.secret, r.Method, r.URL.EscapedPath(), timestamp, body)) {
			v.reject(w, r, http.StatusForbidden, "signature_mismatch", "signature verification failed")
			return
		}

		metrics.CallbackVerifications.WithLabelValues("ok").Inc()
		next.ServeHTTP(w, r)
	})
}

func (v *Verifier) reject(w http.ResponseWriter, r *http.Request, status int, reason, message string) {
	metrics.CallbackVerifications.WithLabelValues(reason).Inc()
	zap.L().Warn("gateway callback rejected",
		zap.String("uri", r.RequestURI),
		zap.String("reason", reason),
	)

	http.Error(w, message, status)
}

// Sign returns the hex signature a gateway puts into SignatureHeader.
func Sign(secret, method, path, timestamp string, body []byte) string {
	return hex.EncodeToString(compute([]byte(secret), method, path, timestamp, body))
}

func compute(secret []byte, method, path, timestamp string, body []byte) []byte {
	if len(path) == 0 {
		path = "/"
	}
	hash := sha256.Sum256(body)

	mac := hmac.New(sha256.New, secret)
	_, _ = mac.Write([]byte(strings.Join([]string{
		strings.ToUpper(method),
		path,
		timestamp,
		hex.EncodeToString(hash[:]),
	}, "\n")))

	return mac.Sum(nil)
}

// parseTimestamp accepts unix seconds or RFC 3339.
func parseTimestamp(value string) (time.Time, error) {
	if len(value) == 0 {
		return time.Time{}, ErrTimestampInvalid
	}
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, ErrTimestampInvalid
}
