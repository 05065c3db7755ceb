package otp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construmart/construmart-api/pkg/otp"
)

func TestGenerate_LongitudYSoloDigitos(t *testing.T) {
	issuer := otp.NewIssuer(6, 2*time.Hour)

	for n := 0; n < 50; n++ {
		code, err := issuer.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6, "el código debe tener exactamente 6 dígitos")
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "el código debe ser numérico: %q", code)
		}
	}
}

func TestGenerate_ConservaCerosALaIzquierda(t *testing.T) {
	// Con 4 dígitos la probabilidad de un cero inicial es alta; generamos
	// suficientes códigos para garantizar que ninguno pierde longitud.
	issuer := otp.NewIssuer(4, time.Hour)
	for n := 0; n < 200; n++ {
		code, err := issuer.Generate()
		require.NoError(t, err)
		require.Len(t, code, 4)
	}
}

func TestExpiresAt_PoliticaDosHoras(t *testing.T) {
	issuer := otp.NewIssuer(6, 2*time.Hour)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(2*time.Hour), issuer.ExpiresAt(now))
}

func TestNewIssuer_ValoresInvalidosUsanDefaults(t *testing.T) {
	issuer := otp.NewIssuer(0, 0)
	code, err := issuer.Generate()
	require.NoError(t, err)
	assert.Len(t, code, 6)

	now := time.Now()
	assert.Equal(t, now.Add(2*time.Hour), issuer.ExpiresAt(now))
}
