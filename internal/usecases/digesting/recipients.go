package digesting

import (
	"net/mail"
	"strings"
)

// ParseRecipients extrai endereços de email válidos do texto livre de
// destinatários (separado por vírgula ou quebra de linha). Entradas
// inválidas são descartadas em silêncio e duplicatas removidas, mantendo
// a ordem da primeira ocorrência.
func ParseRecipients(raw string) []string {
	normalized := strings.NewReplacer("\r\n", ",", "\n", ",", ";", ",").Replace(raw)

	recipients := make([]string, 0)
	seen := make(map[string]bool)

	for _, part := range strings.Split(normalized, ",") {
		candidate := strings.TrimSpace(part)
		if candidate == "" {
			continue
		}

		address, err := mail.ParseAddress(candidate)
		if err != nil {
			continue
		}

		email := strings.ToLower(address.Address)
		if seen[email] {
			continue
		}

		seen[email] = true
		recipients = append(recipients, email)
	}

	return recipients
}
