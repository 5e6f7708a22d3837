package bedrock

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"testing"
	"time"
)

func signedTestRequest(t *testing.T, creds signingCredentials) *http.Request {
	t.Helper()
	body := []byte(`{"messages":[]}`)
	req, err := http.NewRequest(http.MethodPost, "https://bedrock-runtime.us-east-1.amazonaws.com/model/test/converse", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	signRequest(req, body, creds, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	return req
}

func TestSignRequest(t *testing.T) {
	creds := signingCredentials{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		Region:          "us-east-1",
		Service:         "bedrock",
	}

	t.Run("Authorization Header Shape", func(t *testing.T) {
		req := signedTestRequest(t, creds)

		auth := req.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/20260831/us-east-1/bedrock/aws4_request, ") {
			t.Errorf("unexpected authorization prefix: %s", auth)
		}
		if !strings.Contains(auth, "SignedHeaders=content-type;host;x-amz-content-sha256;x-amz-date, ") {
			t.Errorf("unexpected signed headers: %s", auth)
		}
		if !strings.Contains(auth, "Signature=") {
			t.Errorf("missing signature: %s", auth)
		}
		sig := auth[strings.Index(auth, "Signature=")+len("Signature="):]
		if len(sig) != 64 {
			t.Errorf("expected 64 hex chars of signature, got %d", len(sig))
		}
	})

	t.Run("Date And Payload Hash Headers", func(t *testing.T) {
		req := signedTestRequest(t, creds)

		if got := req.Header.Get("X-Amz-Date"); got != "20260831T120000Z" {
			t.Errorf("unexpected X-Amz-Date: %s", got)
		}

		sum := sha256.Sum256([]byte(`{"messages":[]}`))
		if got := req.Header.Get("X-Amz-Content-Sha256"); got != hex.EncodeToString(sum[:]) {
			t.Errorf("payload hash mismatch: %s", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := signedTestRequest(t, creds).Header.Get("Authorization")
		b := signedTestRequest(t, creds).Header.Get("Authorization")
		if a != b {
			t.Error("same inputs must produce the same signature")
		}
	})

	t.Run("Signature Depends On Secret", func(t *testing.T) {
		other := creds
		other.SecretAccessKey = "different"
		a := signedTestRequest(t, creds).Header.Get("Authorization")
		b := signedTestRequest(t, other).Header.Get("Authorization")
		if a == b {
			t.Error("different secrets must produce different signatures")
		}
	})

	t.Run("Session Token Is Signed", func(t *testing.T) {
		withToken := creds
		withToken.SessionToken = "token-123"
		req := signedTestRequest(t, withToken)

		if got := req.Header.Get("X-Amz-Security-Token"); got != "token-123" {
			t.Errorf("missing security token header: %q", got)
		}
		if !strings.Contains(req.Header.Get("Authorization"), "x-amz-security-token") {
			t.Error("security token not in signed headers")
		}
	})
}

func TestCanonicalQuery(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://example.com/path?b=2&a=hello world", nil)
	got := canonicalQuery(req)
	if got != "a=hello%20world&b=2" {
		t.Errorf("unexpected canonical query: %s", got)
	}
}
