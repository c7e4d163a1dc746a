// Package vault protects durable session credentials at rest. The key is
// derived once, at construction, from a long-lived process secret via
// PBKDF2-SHA256; records are sealed with AES-GCM and stored as base64 text.
//
// The derivation salt is a fixed package constant shared by all records.
// Switching to per-record salts would invalidate every stored credential,
// so the current posture is preserved deliberately.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfSalt       = "tgpolish_session_salt"
	kdfIterations = 100000
	keyLen        = 32
	nonceLen      = 12
)

// ErrNoSecret is returned by New when the process secret is empty.
// Callers treat it as a startup-fatal condition.
var ErrNoSecret = errors.New("vault: process secret is not set")

// Vault seals and unseals credential strings with a key derived from the
// process secret. Safe for concurrent use.
type Vault struct {
	aead cipher.AEAD
}

// New derives the sealing key from secret and prepares the AEAD.
func New(secret string) (*Vault, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	key := pbkdf2.Key([]byte(secret), []byte(kdfSalt), kdfIterations, keyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("vault init: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("vault init: %w", err)
	}

	return &Vault{aead: aead}, nil
}

// Seal encrypts the plaintext credential and returns a base64 blob suitable
// for a text column. The random nonce is prepended to the ciphertext before
// encoding. An empty input maps to an empty output without touching the
// cipher.
func (v *Vault) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := common.GenerateRandByteArray(nonceLen)
	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Unseal is the inverse of Seal. Corrupted or tampered blobs, and blobs
// sealed under a different process secret, fail with
// common.ErrDecryptionFailed; plaintext is never silently returned from a
// failed authentication check.
func (v *Vault) Unseal(blob string) (string, error) {
	if blob == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}
	if len(raw) < nonceLen {
		return "", fmt.Errorf("%w: blob too short", common.ErrDecryptionFailed)
	}

	nonce, ciphertext := raw[:nonceLen], raw[nonceLen:]

	plaintext, err := v.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
