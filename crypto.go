// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// crypto.go — AES-256-GCM encryption used to seal individual collection
// elements before they are framed; see types.Encrypted.

package colser

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"
)

// Encryptor encrypts and decrypts element payloads.
type Encryptor interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
	Overhead() int
}

// AES256GCM implements AES-256-GCM authenticated encryption.
type AES256GCM struct {
	aead cipher.AEAD
}

// NewAES256GCM creates an AES-256-GCM encryptor from a 32-byte key.
func NewAES256GCM(key []byte) (*AES256GCM, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AES256GCM{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with a random nonce.
// Output: nonce (12 bytes) || ciphertext || tag (16 bytes).
func (e *AES256GCM) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(plaintext)+e.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return e.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt decrypts ciphertext produced by Encrypt.
func (e *AES256GCM) Decrypt(ciphertext []byte) ([]byte, error) {
	nsize := e.aead.NonceSize()
	if len(ciphertext) < nsize+e.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	return e.aead.Open(nil, ciphertext[:nsize], ciphertext[nsize:], nil)
}

// Overhead returns how many bytes Encrypt adds to a plaintext.
func (e *AES256GCM) Overhead() int { return e.aead.NonceSize() + e.aead.Overhead() }
