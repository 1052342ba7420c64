package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/bodegas-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 7, "identidad", 5)
	require.NoError(t, err)

	id, err := pkgjwt.Parse(secret, "identidad", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	id, err = pkgjwt.Parse(secret, "", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestParse_Rechaza(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 7, "identidad", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", "", tok)
	assert.Error(t, err, "firma incorrecta")

	_, err = pkgjwt.Parse(secret, "otro-emisor", tok)
	assert.Error(t, err, "emisor distinto")

	expired, err := pkgjwt.Generate(secret, 7, "identidad", -5)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(secret, "", expired)
	assert.Error(t, err, "token vencido")

	_, err = pkgjwt.Parse(secret, "", "no-es-un-token")
	assert.Error(t, err)

	_, err = pkgjwt.Generate("", 7, "", 5)
	assert.Error(t, err)
}

func TestParse_SinUsuario(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 0, "", 5)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(secret, "", tok)
	assert.Error(t, err)
}
