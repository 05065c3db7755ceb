// Package credentials implementa el hash de secretos con sal explícita.
// Se usa tanto para contraseñas (sal = SecurityStamp del usuario) como para
// códigos OTP (sal = Salt del EncryptedCode). PBKDF2-SHA256 con costo
// adaptativo: determinista dado (secreto, sal) y no invertible.
package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes = 16
	keyBytes  = 32
)

// Hasher genera sales y hashes de secretos. Sin estado mutable; seguro para uso concurrente.
type Hasher struct {
	iterations int
}

// NewHasher construye el hasher con el número de iteraciones configurado.
// Valores menores a 1 caen al mínimo recomendado.
func NewHasher(iterations int) *Hasher {
	if iterations < 1 {
		iterations = 310000
	}
	return &Hasher{iterations: iterations}
}

// GenerateSalt devuelve una sal aleatoria nueva (hex), única por secreto.
func (h *Hasher) GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar sal: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash deriva el hash del secreto con la sal dada (hex). Mismo (secreto, sal)
// produce siempre el mismo resultado.
func (h *Hasher) Hash(secret, salt string) string {
	key := pbkdf2.Key([]byte(secret), []byte(salt), h.iterations, keyBytes, sha256.New)
	return hex.EncodeToString(key)
}

// Compare recalcula el hash del secreto con la sal y lo compara en tiempo
// constante contra el hash almacenado.
func (h *Hasher) Compare(secret, salt, expectedHash string) bool {
	computed := h.Hash(secret, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHash)) == 1
}
