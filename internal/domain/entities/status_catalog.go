package entities

// StatusMeta is the display metadata attached to a status or priority value.
type StatusMeta struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

// StatusCatalog is an immutable lookup of display metadata for statuses and priorities.
//
// It is built once at startup (DefaultStatusCatalog, optionally overridden from YAML)
// and injected wherever labels are rendered: notifications, emails and exports.
type StatusCatalog struct {
	statuses   map[RequisitionStatus]StatusMeta
	priorities map[Priority]StatusMeta
}

func DefaultStatusCatalog() StatusCatalog {
	return StatusCatalog{
		statuses: map[RequisitionStatus]StatusMeta{
			StatusPendente:  {Label: "Pendente", Color: "#f59e0b"},
			StatusEmAnalise: {Label: "Em Análise", Color: "#3b82f6"},
			StatusAprovado:  {Label: "Aprovado", Color: "#10b981"},
			StatusCotando:   {Label: "Cotando", Color: "#8b5cf6"},
			StatusComprado:  {Label: "Comprado", Color: "#6366f1"},
			StatusEmEntrega: {Label: "Em Entrega", Color: "#06b6d4"},
			StatusRecebido:  {Label: "Recebido", Color: "#22c55e"},
			StatusRejeitado: {Label: "Rejeitado", Color: "#ef4444"},
			StatusCancelado: {Label: "Cancelado", Color: "#6b7280"},
		},
		priorities: map[Priority]StatusMeta{
			PriorityNormal:  {Label: "Normal", Color: "#6b7280"},
			PriorityAlta:    {Label: "Alta", Color: "#f97316"},
			PriorityUrgente: {Label: "Urgente", Color: "#dc2626"},
		},
	}
}

// WithOverrides returns a new catalog with the given entries replaced. Unknown keys are
// ignored and empty fields keep the current value. The receiver is left untouched.
func (c StatusCatalog) WithOverrides(statuses map[RequisitionStatus]StatusMeta, priorities map[Priority]StatusMeta) StatusCatalog {
	out := StatusCatalog{
		statuses:   make(map[RequisitionStatus]StatusMeta, len(c.statuses)),
		priorities: make(map[Priority]StatusMeta, len(c.priorities)),
	}
	for k, v := range c.statuses {
		out.statuses[k] = v
	}
	for k, v := range c.priorities {
		out.priorities[k] = v
	}
	for k, v := range statuses {
		if cur, ok := out.statuses[k]; ok {
			out.statuses[k] = mergeMeta(cur, v)
		}
	}
	for k, v := range priorities {
		if cur, ok := out.priorities[k]; ok {
			out.priorities[k] = mergeMeta(cur, v)
		}
	}
	return out
}

// StatusLabel falls back to the raw value for unknown statuses.
func (c StatusCatalog) StatusLabel(s RequisitionStatus) string {
	if m, ok := c.statuses[s]; ok {
		return m.Label
	}
	return string(s)
}

func (c StatusCatalog) StatusMeta(s RequisitionStatus) (StatusMeta, bool) {
	m, ok := c.statuses[s]
	return m, ok
}

func (c StatusCatalog) PriorityLabel(p Priority) string {
	if m, ok := c.priorities[p]; ok {
		return m.Label
	}
	return string(p)
}

func mergeMeta(cur, override StatusMeta) StatusMeta {
	if override.Label != "" {
		cur.Label = override.Label
	}
	if override.Color != "" {
		cur.Color = override.Color
	}
	return cur
}
