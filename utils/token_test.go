package utils

import (
	"strings"
	"testing"
)

func TestGenerateRandomToken(t *testing.T) {
	tok := GenerateRandomToken(24)
	if len(tok) != 24 {
		t.Fatalf("len = %d, want 24", len(tok))
	}
	for _, r := range tok {
		if !strings.ContainsRune(tokenCharset, r) {
			t.Errorf("token contains %q outside the charset", r)
		}
	}

	if GenerateRandomToken(24) == tok {
		t.Error("two tokens came out identical")
	}
}
