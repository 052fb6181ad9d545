package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// secretBytes bytes de entropía del secreto (64 chars hex en el wire).
const secretBytes = 32

// Generate crea un token bearer opaco. Devuelve el texto plano (se entrega
// una sola vez al cliente) y su hash SHA-256 hex (lo único que se persiste).
func Generate() (plaintext, hash string, err error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generar token: %w", err)
	}
	plaintext = hex.EncodeToString(buf)
	return plaintext, Hash(plaintext), nil
}

// Hash calcula el hash SHA-256 hex de un token en texto plano.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
