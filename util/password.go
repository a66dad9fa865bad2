package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
)

var (
	hashSecretValue = getEnv("HASHSECRET", "")
	hashSecretByte  = []byte(hashSecretValue)
	hashMutex       sync.RWMutex
)

func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

func HashPassword(password string) (hashedPassword string) {
	secretByte := GetHashSecretByte()
	h := hmac.New(sha256.New, secretByte)
	h.Write([]byte(password))
	hashedPassword = hex.EncodeToString(h.Sum(nil))
	return
}

// VerifyPassword reports whether password hashes to expectedHash. The
// comparison is constant-time so the sessions gate does not leak prefix
// information. An empty password or hash never verifies, so the gate
// stays closed when the configured secret is blank.
func VerifyPassword(password, expectedHash string) bool {
	if password == "" || expectedHash == "" {
		return false
	}
	computed := HashPassword(password)
	return hmac.Equal([]byte(computed), []byte(expectedHash))
}

// SetHashSecret allows tests or runtime code to update the secret used for
// password hashing. This function is thread-safe and can be called
// concurrently. Tests using this should avoid parallel execution if they
// need deterministic secret values.
func SetHashSecret(secret string) {
	hashMutex.Lock()
	defer hashMutex.Unlock()
	hashSecretByte = []byte(secret)
}

// GetHashSecretByte returns a copy of the current hash secret bytes in a thread-safe manner.
func GetHashSecretByte() []byte {
	hashMutex.RLock()
	defer hashMutex.RUnlock()
	// Return a copy to prevent external modifications
	return append([]byte(nil), hashSecretByte...)
}
