package infrastructure

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 16
	keyLength  = 64

	// scrypt cost parameters. Deliberately expensive; the CPU/memory cost per
	// call is the brute-force deterrent.
	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// PasswordHasher derives and verifies scrypt password hashes stored as
// "hex(salt):hex(key)". The same plaintext with the same salt always yields
// the same key; the salt is random per call.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify recomputes the key with the stored salt and compares in constant
// time. It fails closed: malformed or empty stored hashes are simply false.
func (h *PasswordHasher) Verify(plaintext, storedHash string) bool {
	if plaintext == "" || storedHash == "" {
		return false
	}

	saltHex, keyHex, ok := strings.Cut(storedHash, ":")
	if !ok || saltHex == "" || keyHex == "" {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	storedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}

	// Length check first; ConstantTimeCompare on unequal lengths returns 0
	// anyway but we never want to rely on that.
	if len(key) != len(storedKey) {
		return false
	}
	return subtle.ConstantTimeCompare(key, storedKey) == 1
}
