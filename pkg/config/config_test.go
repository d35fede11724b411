package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/pkg/config"
)

// Sin JWT_SECRET la carga falla: no hay fallback hardcodeado.
func TestLoad_SecretObligatorio(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

// Un entero mal formado en el entorno cae al valor por defecto, nunca a 0.
func TestLoad_EnterosInvalidosCaenAlDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRATION_HOURS", "24h")
	t.Setenv("DB_PORT", "cinco-mil")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.JWT.ExpHours, "24h no es un entero: se usa el default")
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestLoad_EnterosValidos(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")
	t.Setenv("DB_PORT", "6543")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.JWT.ExpHours)
	assert.Equal(t, 6543, cfg.DB.Port)
}
