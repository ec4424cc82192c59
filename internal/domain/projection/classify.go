package projection

// Status es la señal de triaje de un ítem frente a su demanda estimada.
type Status string

const (
	StatusCritical Status = "CRITICAL"
	StatusPartial  Status = "PARTIAL"
	StatusAdequate Status = "ADEQUATE"
)

// severityRank ordena los estados por urgencia: CRITICAL < PARTIAL < ADEQUATE.
func severityRank(s Status) int {
	switch s {
	case StatusCritical:
		return 0
	case StatusPartial:
		return 1
	default:
		return 2
	}
}

// Classify compara el stock consolidado con la demanda estimada (servicio de dominio).
// ADEQUATE si onHand >= demanda; PARTIAL si 0 < onHand < demanda; CRITICAL si no
// hay stock y queda demanda por cubrir. El caso degenerado (0, 0) es ADEQUATE:
// nada requerido y nada en mano no es un faltante.
func Classify(onHand, estimatedDemand int) Status {
	if onHand <= 0 {
		if estimatedDemand <= onHand {
			return StatusAdequate
		}
		return StatusCritical
	}
	if onHand >= estimatedDemand {
		return StatusAdequate
	}
	return StatusPartial
}
