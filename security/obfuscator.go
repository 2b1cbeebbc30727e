// security/obfuscator.go
package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
)

// EmployeeIDRouteValue is the purpose used for employee ids placed in URLs.
const EmployeeIDRouteValue = "EmployeeIdRouteValue"

// KeySize is the length of the master key in bytes.
const KeySize = 32

const hkdfInfoPrefix = "employee-management/id-obfuscator/v1:"

// IDObfuscator turns integer ids into opaque URL-safe tokens and back.
// It holds only immutable key material and is safe for concurrent use.
type IDObfuscator struct {
	key []byte
}

// NewIDObfuscator creates an obfuscator keyed by a 32-byte master key.
func NewIDObfuscator(key []byte) (*IDObfuscator, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid data protection key length: must be %d bytes", KeySize)
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &IDObfuscator{key: k}, nil
}

// ParseKey decodes base64 key material. An empty string yields a random
// ephemeral key; the boolean reports whether that happened.
func ParseKey(encoded string) ([]byte, bool, error) {
	if encoded == "" {
		key := make([]byte, KeySize)
		if _, err := io.ReadFull(rand.Reader, key); err != nil {
			return nil, false, err
		}
		return key, true, nil
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode data protection key: %w", err)
	}
	if len(key) != KeySize {
		return nil, false, fmt.Errorf("invalid data protection key length: must be %d bytes", KeySize)
	}
	return key, false, nil
}

func (o *IDObfuscator) aead(purpose string) (cipher.AEAD, error) {
	subkey := make([]byte, KeySize)
	kdf := hkdf.New(sha256.New, o.key, nil, []byte(hkdfInfoPrefix+purpose))
	if _, err := io.ReadFull(kdf, subkey); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(subkey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Obfuscate encrypts id for purpose. Each call uses a fresh nonce, so the
// same id yields a different token every time.
func (o *IDObfuscator) Obfuscate(id int, purpose string) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("cannot obfuscate negative id %d", id)
	}
	gcm, err := o.aead(purpose)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	plaintext := make([]byte, 8)
	binary.BigEndian.PutUint64(plaintext, uint64(id))
	sealed := gcm.Seal(nonce, nonce, plaintext, []byte(purpose))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Deobfuscate reverses Obfuscate. Anything not produced by Obfuscate with the
// same purpose and key fails with ErrInvalidToken.
func (o *IDObfuscator) Deobfuscate(token string, purpose string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, echo_errors.ErrInvalidToken
	}
	gcm, err := o.aead(purpose)
	if err != nil {
		return 0, echo_errors.ErrInvalidToken
	}
	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize+gcm.Overhead() {
		return 0, echo_errors.ErrInvalidToken
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(purpose))
	if err != nil || len(plaintext) != 8 {
		return 0, echo_errors.ErrInvalidToken
	}
	id := binary.BigEndian.Uint64(plaintext)
	if id > uint64(maxInt) {
		return 0, echo_errors.ErrInvalidToken
	}
	return int(id), nil
}

const maxInt = int(^uint(0) >> 1)
