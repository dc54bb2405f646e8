package domain

// DigestSettings é a superfície de configuração persistida do digest.
// Diferente da configuração de ambiente, estes valores são editáveis em
// runtime pelos administradores.
type DigestSettings struct {
	EmailEnabled         bool   `json:"email_enabled"`
	Recipients           string `json:"recipients"` // Texto livre: vírgula ou quebra de linha
	WebhookURL           string `json:"webhook_url"`
	MinBookingsThreshold int    `json:"min_bookings_threshold"`
	LookbackDays         int    `json:"lookback_days"`
	SendHour             int    `json:"send_hour"` // 0-23, hora local do site
}

// HasChannel indica se ao menos um canal de entrega está configurado
func (s DigestSettings) HasChannel() bool {
	return s.EmailEnabled || s.WebhookURL != ""
}

// Normalize aplica os limites e padrões dos campos numéricos
func (s *DigestSettings) Normalize() {
	if s.LookbackDays < 1 {
		s.LookbackDays = 1
	}
	if s.SendHour < 0 || s.SendHour > 23 {
		s.SendHour = 8
	}
	if s.MinBookingsThreshold < 0 {
		s.MinBookingsThreshold = 0
	}
}
