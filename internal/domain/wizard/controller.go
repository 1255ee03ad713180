package wizard

import (
	"context"
	"errors"

	"requisicoes/internal/domain/entities"
)

var (
	ErrNotLastStep  = errors.New("submission is only allowed from the last step")
	ErrInvalidDraft = errors.New("draft has validation errors")
	ErrNoCreator    = errors.New("requisition creator not configured")
)

// Step is one page of the wizard. Fields lists the Draft struct fields validated on
// that page; the review step has none and validates everything.
type Step struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Fields []string `json:"-"`
}

var steps = []Step{
	{Key: "solicitante", Title: "Solicitante", Fields: []string{"RequesterName", "RequesterEmail", "RequesterPhone", "Department", "Company"}},
	{Key: "item", Title: "Item", Fields: []string{"ItemName", "Quantity", "Unit", "Specifications", "CostCenter", "Priority"}},
	{Key: "justificativa", Title: "Justificativa", Fields: []string{"Justification", "PurchaseReason"}},
	{Key: "revisao", Title: "Revisão"},
}

func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Creator persists the assembled payload. The controller never creates records itself.
type Creator interface {
	Create(ctx context.Context, payload Payload) (entities.Requisition, error)
}

// Controller tracks the current step, the collected data and the errors of the last
// validation.
type Controller struct {
	validator *Validator
	current   int
	data      Draft
	errors    map[string]string
}

func NewController(v *Validator) *Controller {
	if v == nil {
		v = NewValidator()
	}
	return &Controller{validator: v, errors: map[string]string{}}
}

func (c *Controller) Index() int                { return c.current }
func (c *Controller) Step() Step                { return steps[c.current] }
func (c *Controller) IsLast() bool              { return c.current == len(steps)-1 }
func (c *Controller) Data() Draft               { return c.data }
func (c *Controller) Errors() map[string]string { return c.errors }

// Update replaces the collected data. Later steps keep whatever was already filled.
func (c *Controller) Update(d Draft) {
	d.Normalize()
	c.data = d
}

// Validate runs the current step's validation and records its errors.
func (c *Controller) Validate() bool {
	c.errors = c.validator.ValidateStep(c.current, c.data)
	return len(c.errors) == 0
}

// Next advances one step when the current one is valid.
func (c *Controller) Next() bool {
	if c.IsLast() || !c.Validate() {
		return false
	}
	c.current++
	return true
}

// Back always succeeds unless already on the first step. Data is kept.
func (c *Controller) Back() bool {
	if c.current == 0 {
		return false
	}
	c.current--
	c.errors = map[string]string{}
	return true
}

// AdvanceTo moves forward until index is reached or a step fails validation.
// It returns the index where it stopped.
func (c *Controller) AdvanceTo(index int) int {
	for c.current < index && c.Next() {
	}
	return c.current
}

// Submit hands the data and files to creator. It is only reachable from the last step.
func (c *Controller) Submit(ctx context.Context, files []File, creator Creator) (entities.Requisition, error) {
	if !c.IsLast() {
		return entities.Requisition{}, ErrNotLastStep
	}
	if !c.Validate() {
		return entities.Requisition{}, ErrInvalidDraft
	}
	if creator == nil {
		return entities.Requisition{}, ErrNoCreator
	}
	return creator.Create(ctx, Payload{Draft: c.data, Files: files})
}
