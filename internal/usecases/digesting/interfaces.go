package digesting

import (
	"github.com/franpass87/esperienze-insights-api/internal/domain"
)

// Dispatcher monta e entrega o digest operacional de reservas
type Dispatcher interface {
	// BuildReport agrega as reservas dos últimos lookbackDays dias
	BuildReport(lookbackDays int) (*domain.DigestReport, error)

	// Dispatch entrega o digest no canal pedido (email, slack ou all).
	// Nunca retorna erro Go: falhas viram um DispatchResult com status error.
	Dispatch(channel string, lookbackDays int) *domain.DispatchResult

	// LastStatus retorna o registro único do último envio
	LastStatus() (*domain.DispatchStatus, error)

	// Settings carrega a superfície de configuração persistida
	Settings() (domain.DigestSettings, error)

	// SaveSettings persiste a configuração do digest
	SaveSettings(settings domain.DigestSettings) error
}
