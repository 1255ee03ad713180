package entities

// RequisitionStatus represents the lifecycle of a purchase requisition (requisição de compra).
//
// Domain notes:
//   - The forward order is pendente → em_analise → aprovado → cotando → comprado → em_entrega → recebido.
//   - rejeitado and cancelado are absorbing terminal states outside that order.
//   - A requisition holds exactly one status at any time.

type RequisitionStatus string

const (
	StatusPendente  RequisitionStatus = "pendente"
	StatusEmAnalise RequisitionStatus = "em_analise"
	StatusAprovado  RequisitionStatus = "aprovado"
	StatusCotando   RequisitionStatus = "cotando"
	StatusComprado  RequisitionStatus = "comprado"
	StatusEmEntrega RequisitionStatus = "em_entrega"
	StatusRecebido  RequisitionStatus = "recebido"
	StatusRejeitado RequisitionStatus = "rejeitado"
	StatusCancelado RequisitionStatus = "cancelado"
)

// NoOrder is the order index of statuses that are not part of forward progress.
const NoOrder = -1

var forwardStatuses = []RequisitionStatus{
	StatusPendente,
	StatusEmAnalise,
	StatusAprovado,
	StatusCotando,
	StatusComprado,
	StatusEmEntrega,
	StatusRecebido,
}

// ForwardStatuses returns the ordered forward lifecycle. The slice is a copy.
func ForwardStatuses() []RequisitionStatus {
	out := make([]RequisitionStatus, len(forwardStatuses))
	copy(out, forwardStatuses)
	return out
}

// AllStatuses returns every status value, forward order first, then the terminal ones.
func AllStatuses() []RequisitionStatus {
	return append(ForwardStatuses(), StatusRejeitado, StatusCancelado)
}

// Order returns the position of s in the forward lifecycle, or NoOrder.
func (s RequisitionStatus) Order() int {
	for i, fs := range forwardStatuses {
		if fs == s {
			return i
		}
	}
	return NoOrder
}

// IsTerminal reports whether s is one of the absorbing non-progress states.
func (s RequisitionStatus) IsTerminal() bool {
	return s == StatusRejeitado || s == StatusCancelado
}

func (s RequisitionStatus) Valid() bool {
	return s.Order() != NoOrder || s.IsTerminal()
}

func (s RequisitionStatus) String() string { return string(s) }
