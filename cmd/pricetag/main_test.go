package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-pricing/internal/app/product/domain"
)

func TestRun(t *testing.T) {
	t.Setenv("PRICETAG_LOCALE", "en-US")
	t.Setenv("LOG_FORMAT", "TEXT")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"explicit margin", []string{"-description", "Caderno", "-cost", "5", "-margin", "0.5"}, "NOME: Caderno: $7.50\n"},
		{"default margin", []string{"-description", "Widget", "-cost", "10"}, "NOME: Widget: $12.00\n"},
		{"explicit locale", []string{"-description", "Caderno", "-cost", "5", "-margin", "0.5", "-locale", "pt-BR"}, "NOME: Caderno: R$ 7,50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, run(tt.args, &stdout, &stderr))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRun_LocaleFromEnvironment(t *testing.T) {
	t.Setenv("PRICETAG_LOCALE", "de-DE")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-description", "Caderno", "-cost", "5", "-margin", "0.5"}, &stdout, &stderr))
	assert.Equal(t, "NOME: Caderno: 7,50 €\n", stdout.String())
}

func TestRun_InvalidProduct(t *testing.T) {
	t.Setenv("PRICETAG_LOCALE", "en-US")
	t.Setenv("LOG_FORMAT", "JSON")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-description", "ab", "-cost", "5", "-margin", "0.2"}, &stdout, &stderr)

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"invalid product"`)
}

func TestRun_InvalidLocale(t *testing.T) {
	t.Setenv("PRICETAG_LOCALE", "en-US")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-description", "Caderno", "-cost", "5", "-locale", "!!"}, &stdout, &stderr)

	require.ErrorIs(t, err, domain.ErrInvalidLocale)
	assert.Empty(t, stdout.String())
}
