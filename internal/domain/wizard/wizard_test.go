package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"requisicoes/internal/domain/entities"
)

func validDraft() Draft {
	return Draft{
		RequesterName:  "Ana Souza",
		RequesterEmail: "ana@empresa.com",
		Department:     "TI",
		ItemName:       "Notebook",
		Quantity:       2,
		Unit:           "un",
		Priority:       entities.PriorityNormal,
		Justification:  "Substituição de equipamentos antigos",
	}
}

type creatorFunc func(ctx context.Context, p Payload) (entities.Requisition, error)

func (f creatorFunc) Create(ctx context.Context, p Payload) (entities.Requisition, error) {
	return f(ctx, p)
}

func TestValidator_JustificationBoundaries(t *testing.T) {
	v := NewValidator()
	justificationStep := 2

	cases := []struct {
		name     string
		priority entities.Priority
		length   int
		valid    bool
	}{
		{name: "urgente 49 fails", priority: entities.PriorityUrgente, length: 49, valid: false},
		{name: "urgente 50 passes", priority: entities.PriorityUrgente, length: 50, valid: true},
		{name: "normal 9 fails", priority: entities.PriorityNormal, length: 9, valid: false},
		{name: "normal 10 passes", priority: entities.PriorityNormal, length: 10, valid: true},
		{name: "alta 9 fails", priority: entities.PriorityAlta, length: 9, valid: false},
		{name: "alta 10 passes", priority: entities.PriorityAlta, length: 10, valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			d.Priority = tc.priority
			d.Justification = strings.Repeat("a", tc.length)

			errs := v.ValidateStep(justificationStep, d)
			_, failed := errs["justification"]
			if failed == tc.valid {
				t.Fatalf("expected valid=%v, got errors %v", tc.valid, errs)
			}
		})
	}

	t.Run("multibyte characters count once", func(t *testing.T) {
		d := validDraft()
		d.Justification = strings.Repeat("ç", 10)
		if errs := v.ValidateStep(justificationStep, d); len(errs) != 0 {
			t.Fatalf("unexpected errors %v", errs)
		}
	})

	t.Run("message names the minimum", func(t *testing.T) {
		d := validDraft()
		d.Priority = entities.PriorityUrgente
		errs := v.ValidateStep(justificationStep, d)
		if !strings.Contains(errs["justification"], "50") {
			t.Fatalf("unexpected message %q", errs["justification"])
		}
	})
}

func TestValidator_StepScopes(t *testing.T) {
	v := NewValidator()

	t.Run("requester step ignores item fields", func(t *testing.T) {
		d := validDraft()
		d.ItemName = ""
		if errs := v.ValidateStep(0, d); len(errs) != 0 {
			t.Fatalf("unexpected errors %v", errs)
		}
	})

	t.Run("requester step reports its fields", func(t *testing.T) {
		d := validDraft()
		d.RequesterEmail = "not-an-email"
		d.Department = ""
		errs := v.ValidateStep(0, d)
		if errs["requester_email"] == "" || errs["department"] == "" {
			t.Fatalf("expected requester errors, got %v", errs)
		}
	})

	t.Run("item step", func(t *testing.T) {
		d := validDraft()
		d.Quantity = 0
		d.Priority = "baixa"
		errs := v.ValidateStep(1, d)
		if errs["quantity"] == "" || errs["priority"] == "" {
			t.Fatalf("expected item errors, got %v", errs)
		}
	})

	t.Run("review step validates everything", func(t *testing.T) {
		d := validDraft()
		d.Unit = ""
		errs := v.ValidateStep(3, d)
		if errs["unit"] == "" {
			t.Fatalf("expected unit error, got %v", errs)
		}
	})

	t.Run("invalid index", func(t *testing.T) {
		if errs := v.ValidateStep(9, validDraft()); errs["step"] == "" {
			t.Fatalf("expected step error, got %v", errs)
		}
	})
}

func TestController_Navigation(t *testing.T) {
	t.Run("next blocked by errors", func(t *testing.T) {
		c := NewController(nil)
		d := validDraft()
		d.RequesterName = ""
		c.Update(d)

		if c.Next() {
			t.Fatalf("next should be blocked")
		}
		if c.Index() != 0 {
			t.Fatalf("expected to stay on step 0, got %d", c.Index())
		}
		if c.Errors()["requester_name"] == "" {
			t.Fatalf("expected requester_name error, got %v", c.Errors())
		}
	})

	t.Run("back keeps data", func(t *testing.T) {
		c := NewController(nil)
		c.Update(validDraft())
		if got := c.AdvanceTo(3); got != 3 {
			t.Fatalf("expected to reach review, stopped at %d", got)
		}
		if !c.Back() || !c.Back() {
			t.Fatalf("back should always succeed")
		}
		if c.Index() != 1 {
			t.Fatalf("expected step 1, got %d", c.Index())
		}
		if c.Data().Justification == "" {
			t.Fatalf("later step data must be kept")
		}
	})

	t.Run("back on first step", func(t *testing.T) {
		c := NewController(nil)
		if c.Back() {
			t.Fatalf("cannot go back from first step")
		}
	})

	t.Run("advance stops at failing step", func(t *testing.T) {
		c := NewController(nil)
		d := validDraft()
		d.Priority = entities.PriorityUrgente
		c.Update(d)
		if got := c.AdvanceTo(3); got != 2 {
			t.Fatalf("expected to stop on justification step, got %d", got)
		}
	})

	t.Run("update normalizes", func(t *testing.T) {
		c := NewController(nil)
		d := validDraft()
		d.RequesterEmail = "  ANA@Empresa.com "
		d.Priority = " URGENTE"
		c.Update(d)
		if c.Data().RequesterEmail != "ana@empresa.com" || c.Data().Priority != entities.PriorityUrgente {
			t.Fatalf("unexpected normalized draft %+v", c.Data())
		}
	})
}

func TestController_Submit(t *testing.T) {
	t.Run("only from last step", func(t *testing.T) {
		c := NewController(nil)
		c.Update(validDraft())
		called := false
		_, err := c.Submit(context.Background(), nil, creatorFunc(func(context.Context, Payload) (entities.Requisition, error) {
			called = true
			return entities.Requisition{}, nil
		}))
		if !errors.Is(err, ErrNotLastStep) {
			t.Fatalf("expected ErrNotLastStep, got %v", err)
		}
		if called {
			t.Fatalf("creator must not be called")
		}
	})

	t.Run("assembles payload with files", func(t *testing.T) {
		c := NewController(nil)
		c.Update(validDraft())
		c.AdvanceTo(3)

		files := []File{{Name: "orcamento.pdf", Size: 10}}
		res, err := c.Submit(context.Background(), files, creatorFunc(func(_ context.Context, p Payload) (entities.Requisition, error) {
			if p.Draft.ItemName != "Notebook" || len(p.Files) != 1 {
				t.Fatalf("unexpected payload %+v", p)
			}
			r := p.Draft.Requisition()
			r.ID = "req-1"
			return r, nil
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "req-1" || res.Requester.Email != "ana@empresa.com" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("creator missing", func(t *testing.T) {
		c := NewController(nil)
		c.Update(validDraft())
		c.AdvanceTo(3)
		if _, err := c.Submit(context.Background(), nil, nil); !errors.Is(err, ErrNoCreator) {
			t.Fatalf("expected ErrNoCreator, got %v", err)
		}
	})
}
