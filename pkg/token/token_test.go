package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-clientes-api/pkg/token"
)

// Cada token generado debe ser único y su hash debe coincidir con Hash(plano).
func TestGenerate_TokenUnicoYHashConsistente(t *testing.T) {
	plano1, hash1, err := token.Generate()
	require.NoError(t, err)
	plano2, hash2, err := token.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, plano1, plano2, "dos tokens generados no deben coincidir")
	assert.Len(t, plano1, 64, "32 bytes en hex son 64 caracteres")
	assert.Equal(t, token.Hash(plano1), hash1)
	assert.Equal(t, token.Hash(plano2), hash2)
	assert.NotEqual(t, plano1, hash1, "el hash no debe ser el texto plano")
}

// El hash debe ser determinista: mismo plano, mismo hash.
func TestHash_Determinista(t *testing.T) {
	assert.Equal(t, token.Hash("abc"), token.Hash("abc"))
	assert.NotEqual(t, token.Hash("abc"), token.Hash("abd"))
	assert.Len(t, token.Hash("abc"), 64, "SHA-256 en hex son 64 caracteres")
}
