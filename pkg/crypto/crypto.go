package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gtank/cryptopasta"
)

// NewRandomKey generates a random key suitable for Encrypt / Decrypt.
func NewRandomKey() (string, error) {
	key := &[33]byte{} // slightly longer than we need to be safe
	_, err := io.ReadFull(rand.Reader, key[:])
	return base64.RawURLEncoding.EncodeToString(key[:]), err
}

// Encrypt AES-GCM encrypts plaintext with key, signs the cyphertext with
// sig and returns both base64-encoded, joined with ".".
func Encrypt(plaintext []byte, key, sig string) (string, error) {
	rawkey, err := toKey(key)
	if err != nil {
		return "", err
	}
	rawsig, err := toKey(sig)
	if err != nil {
		return "", err
	}

	cyphertext, err := cryptopasta.Encrypt(plaintext, rawkey)
	if err != nil {
		return "", err
	}
	signature := cryptopasta.GenerateHMAC(cyphertext, rawsig)

	return fmt.Sprintf(
		"%s.%s",
		base64.RawURLEncoding.EncodeToString(cyphertext),
		base64.RawURLEncoding.EncodeToString(signature),
	), nil
}

// Decrypt is the inverse of Encrypt, checking the HMAC before decrypting.
func Decrypt(encoded, key, sig string) ([]byte, error) {
	rawkey, err := toKey(key)
	if err != nil {
		return nil, err
	}
	rawsig, err := toKey(sig)
	if err != nil {
		return nil, err
	}

	bits := strings.SplitN(encoded, ".", 2)
	if len(bits) != 2 {
		return nil, fmt.Errorf("decryption failed, encoded string invalid")
	}

	cypher, err := base64.RawURLEncoding.DecodeString(bits[0])
	if err != nil {
		return nil, err
	}
	signature, err := base64.RawURLEncoding.DecodeString(bits[1])
	if err != nil {
		return nil, err
	}

	if !cryptopasta.CheckHMAC(cypher, signature, rawsig) {
		return nil, fmt.Errorf("signature validation failed")
	}
	return cryptopasta.Decrypt(cypher, rawkey)
}

// toKey transforms a string of at least len 32 into the *[32]byte the
// cryptopasta library wants.
func toKey(s string) (*[32]byte, error) {
	if len(s) < 32 {
		return nil, fmt.Errorf("key too short for encryption/signing operation, want at least 32 chars")
	}
	data := &[32]byte{}
	copy(data[:], s)
	return data, nil
}
