package entities

import "time"

const (
	TableRequisitions = "requisicoes"

	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// ChangeEvent is one record mutation delivered by the change feed.
// Old is nil when the previous version of the record is unknown.
type ChangeEvent struct {
	Table string       `json:"table"`
	Type  string       `json:"type"`
	Old   *Requisition `json:"old,omitempty"`
	New   Requisition  `json:"new"`
	At    time.Time    `json:"at"`
}

// ChangeFilter selects events by table and mutation type. Empty fields match all.
type ChangeFilter struct {
	Table string
	Types []string
}

func (f ChangeFilter) Match(evt ChangeEvent) bool {
	if f.Table != "" && f.Table != evt.Table {
		return false
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == evt.Type {
			return true
		}
	}
	return false
}
