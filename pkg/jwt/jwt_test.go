package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-pos/pkg/jwt"
)

const secreto = "secreto-de-prueba"

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(secreto, "u1", "maria", []string{"admin", "staff"}, "inventario-pos", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(secreto, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, []string{"admin", "staff"}, claims.Roles)
	assert.Equal(t, "inventario-pos", claims.Issuer)
	assert.Equal(t, "u1", claims.Subject)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secreto, "u1", "maria", nil, "inventario-pos", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err, "un token firmado con otro secreto no valida")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secreto, "u1", "maria", nil, "inventario-pos", -5)
	require.NoError(t, err)

	_, err = jwt.Parse(secreto, token)
	assert.Error(t, err, "un token vencido no valida")
}

func TestParse_TokenBasura(t *testing.T) {
	_, err := jwt.Parse(secreto, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "maria", nil, "inventario-pos", 60)
	assert.Error(t, err)

	_, err = jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
