package lifecycle

import (
	"requisicoes/internal/domain/entities"
)

// StageKey names one point of the forward lifecycle as shown on the timeline.
type StageKey string

const (
	StageCriada    StageKey = "criada"
	StageEmAnalise StageKey = "em_analise"
	StageAprovado  StageKey = "aprovado"
	StageCotando   StageKey = "cotando"
	StageComprado  StageKey = "comprado"
	StageEmEntrega StageKey = "em_entrega"
	StageRecebido  StageKey = "recebido"
)

// ActionReopen is the only action offered by a halted timeline.
const ActionReopen = "reopen"

// Stage maps a timeline position to the single status that represents it.
type Stage struct {
	Key    StageKey                   `json:"key"`
	Label  string                     `json:"label"`
	Status entities.RequisitionStatus `json:"status"`
}

var stages = []Stage{
	{Key: StageCriada, Label: "Criada", Status: entities.StatusPendente},
	{Key: StageEmAnalise, Label: "Em Análise", Status: entities.StatusEmAnalise},
	{Key: StageAprovado, Label: "Aprovado", Status: entities.StatusAprovado},
	{Key: StageCotando, Label: "Cotando", Status: entities.StatusCotando},
	{Key: StageComprado, Label: "Comprado", Status: entities.StatusComprado},
	{Key: StageEmEntrega, Label: "Em Entrega", Status: entities.StatusEmEntrega},
	{Key: StageRecebido, Label: "Recebido", Status: entities.StatusRecebido},
}

// Stages returns the ordered stage list. The slice is a copy.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// StageByKey looks a stage up by key and returns its index.
func StageByKey(key StageKey) (Stage, int, bool) {
	for i, s := range stages {
		if s.Key == key {
			return s, i, true
		}
	}
	return Stage{}, -1, false
}

// StageView is a stage as rendered for one requisition.
type StageView struct {
	Stage
	Completed bool `json:"completed"`
	Current   bool `json:"current"`
}

// Timeline is the rendering of a requisition's position in the lifecycle.
// When Halted is true Stages is empty and Actions holds ActionReopen.
type Timeline struct {
	Status     entities.RequisitionStatus `json:"status"`
	Stages     []StageView                `json:"stages"`
	Current    int                        `json:"current"`
	Progress   float64                    `json:"progress"`
	Halted     bool                       `json:"halted"`
	HaltLabel  string                     `json:"halt_label,omitempty"`
	HaltReason string                     `json:"halt_reason,omitempty"`
	Actions    []string                   `json:"actions,omitempty"`
}

// Build derives the timeline purely from the status and, for halted requisitions, the
// stored rejection reason.
func Build(status entities.RequisitionStatus, rejectionReason string, catalog entities.StatusCatalog) Timeline {
	if status.IsTerminal() {
		return Timeline{
			Status:     status,
			Current:    entities.NoOrder,
			Halted:     true,
			HaltLabel:  catalog.StatusLabel(status),
			HaltReason: rejectionReason,
			Actions:    []string{ActionReopen},
		}
	}

	current := status.Order()
	views := make([]StageView, len(stages))
	for i, s := range stages {
		views[i] = StageView{
			Stage:     s,
			Completed: current != entities.NoOrder && i <= current,
			Current:   i == current,
		}
	}

	t := Timeline{Status: status, Stages: views, Current: current}
	if current > 0 {
		t.Progress = float64(current) / float64(len(stages)-1)
	}
	return t
}

// RevertTarget resolves the status a revert to target would set. It returns false when
// target is unknown, is not earlier than the current stage, or the requisition is halted.
func RevertTarget(current entities.RequisitionStatus, target StageKey) (entities.RequisitionStatus, bool) {
	stage, idx, ok := StageByKey(target)
	if !ok {
		return "", false
	}
	cur := current.Order()
	if cur == entities.NoOrder || idx >= cur {
		return "", false
	}
	return stage.Status, true
}

// ReopenTarget is the status a halted requisition returns to.
func ReopenTarget(current entities.RequisitionStatus) (entities.RequisitionStatus, bool) {
	if !current.IsTerminal() {
		return "", false
	}
	return entities.StatusPendente, true
}
