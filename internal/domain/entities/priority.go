package entities

type Priority string

const (
	PriorityNormal  Priority = "normal"
	PriorityAlta    Priority = "alta"
	PriorityUrgente Priority = "urgente"
)

const (
	justificationMinLength       = 10
	urgentJustificationMinLength = 50
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

// JustificationMinLength is the minimum justification length required for a requisition
// with this priority. The highest tier demands a longer justification.
func (p Priority) JustificationMinLength() int {
	if p == PriorityUrgente {
		return urgentJustificationMinLength
	}
	return justificationMinLength
}
