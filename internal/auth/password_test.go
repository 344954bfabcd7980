package auth

import (
	"testing"
)

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	h1, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("expected salted hashes of the same password to differ")
	}
	if h1 == "hunter22" {
		t.Error("hash must not equal the plaintext")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "matching password",
			password: "correct horse",
			hash:     hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "battery staple",
			hash:     hash,
			want:     false,
		},
		{
			name:     "malformed hash returns false, not an error",
			password: "correct horse",
			hash:     "not-a-bcrypt-hash",
			want:     false,
		},
		{
			name:     "empty hash",
			password: "correct horse",
			hash:     "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPassword() got = %v, want %v", got, tt.want)
			}
		})
	}
}
