package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construmart/construmart-api/pkg/credentials"
)

// Iteraciones bajas para que la suite corra rápido; el costo real viene de config.
const testIterations = 1000

func TestHash_DeterministaConMismaSal(t *testing.T) {
	h := credentials.NewHasher(testIterations)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)

	h1 := h.Hash("secreto-123", salt)
	h2 := h.Hash("secreto-123", salt)

	assert.Equal(t, h1, h2, "mismo secreto y misma sal deben producir el mismo hash")
}

func TestHash_SalDistintaProduceHashDistinto(t *testing.T) {
	h := credentials.NewHasher(testIterations)
	salt1, err := h.GenerateSalt()
	require.NoError(t, err)
	salt2, err := h.GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, salt1, salt2, "cada sal generada debe ser única")

	assert.NotEqual(t, h.Hash("secreto-123", salt1), h.Hash("secreto-123", salt2),
		"sales distintas deben producir hashes distintos")
}

func TestHash_SecretoDistintoProduceHashDistinto(t *testing.T) {
	h := credentials.NewHasher(testIterations)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, h.Hash("secreto-a", salt), h.Hash("secreto-b", salt))
}

func TestCompare_RoundTrip(t *testing.T) {
	h := credentials.NewHasher(testIterations)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)

	stored := h.Hash("123456", salt)

	assert.True(t, h.Compare("123456", salt, stored),
		"el secreto correcto con la sal almacenada debe coincidir")
	assert.False(t, h.Compare("000000", salt, stored),
		"un secreto incorrecto no debe coincidir")
}

func TestGenerateSalt_Formato(t *testing.T) {
	h := credentials.NewHasher(testIterations)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 32, "sal de 16 bytes en hex = 32 caracteres")
}

func TestNewHasher_IteracionesInvalidasUsanMinimo(t *testing.T) {
	h := credentials.NewHasher(0)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	// No debe entrar en pánico ni producir hash vacío
	assert.NotEmpty(t, h.Hash("x", salt))
}
