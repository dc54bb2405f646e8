package digesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipients(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "Entradas inválidas são descartadas em silêncio",
			raw:      "a@x.com, not-an-email\nb@y.com",
			expected: []string{"a@x.com", "b@y.com"},
		},
		{
			name:     "Separadores mistos - vírgula, ponto e vírgula e quebras de linha",
			raw:      "a@x.com;b@y.com\r\nc@z.com",
			expected: []string{"a@x.com", "b@y.com", "c@z.com"},
		},
		{
			name:     "Duplicatas removidas preservando a primeira ocorrência",
			raw:      "a@x.com, B@Y.com, a@x.com, b@y.com",
			expected: []string{"a@x.com", "b@y.com"},
		},
		{
			name:     "Endereços normalizados para minúsculas",
			raw:      "Admin@Example.COM",
			expected: []string{"admin@example.com"},
		},
		{
			name:     "Texto vazio - lista vazia",
			raw:      "",
			expected: []string{},
		},
		{
			name:     "Somente entradas inválidas - lista vazia",
			raw:      "foo, bar baz, @",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRecipients(tt.raw))
		})
	}
}
