package logger

import "testing"

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"api_key", "sk-live",
		"user_id", "user_2abc",
		"title", "Learn Rust",
		"dangling",
	})
	if len(out) != 7 {
		t.Fatalf("unexpected length: %d", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("api_key not redacted: %v", out[1])
	}
	if s, ok := out[3].(string); !ok || s == "user_2abc" || len(s) != len("hash:")+12 {
		t.Fatalf("user_id not hashed: %v", out[3])
	}
	if out[5] != "Learn Rust" {
		t.Fatalf("title changed: %v", out[5])
	}
	if out[6] != "dangling" {
		t.Fatalf("dangling key lost: %v", out[6])
	}
}

func TestLooksLikeJWT(t *testing.T) {
	if !looksLikeJWT("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ1c2VyIn0.sig") {
		t.Fatalf("expected jwt-shaped string to match")
	}
	if looksLikeJWT("Learn Rust") {
		t.Fatalf("plain text matched as jwt")
	}
}
