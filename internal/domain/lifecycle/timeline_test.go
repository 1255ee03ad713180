package lifecycle

import (
	"testing"

	"requisicoes/internal/domain/entities"
)

func TestBuild_ForwardStatuses(t *testing.T) {
	catalog := entities.DefaultStatusCatalog()

	for _, status := range entities.ForwardStatuses() {
		t.Run(string(status), func(t *testing.T) {
			tl := Build(status, "", catalog)
			if tl.Halted {
				t.Fatalf("forward status must not halt")
			}
			if len(tl.Stages) != 7 {
				t.Fatalf("expected 7 stages, got %d", len(tl.Stages))
			}

			completed, current := 0, 0
			for _, s := range tl.Stages {
				if s.Completed {
					completed++
				}
				if s.Current {
					current++
				}
			}
			if completed != status.Order()+1 {
				t.Fatalf("expected %d completed stages, got %d", status.Order()+1, completed)
			}
			if current != 1 {
				t.Fatalf("expected exactly one current stage, got %d", current)
			}
			if !tl.Stages[status.Order()].Current {
				t.Fatalf("current stage mismatch for %s", status)
			}
			if tl.Stages[status.Order()].Status != status {
				t.Fatalf("stage %d should map to %s", status.Order(), status)
			}
		})
	}
}

func TestBuild_Progress(t *testing.T) {
	catalog := entities.DefaultStatusCatalog()

	if p := Build(entities.StatusPendente, "", catalog).Progress; p != 0 {
		t.Fatalf("expected 0 progress for pendente, got %v", p)
	}
	if p := Build(entities.StatusCotando, "", catalog).Progress; p != 0.5 {
		t.Fatalf("expected 0.5 progress for cotando, got %v", p)
	}
	if p := Build(entities.StatusRecebido, "", catalog).Progress; p != 1 {
		t.Fatalf("expected full progress for recebido, got %v", p)
	}
}

func TestBuild_Halted(t *testing.T) {
	catalog := entities.DefaultStatusCatalog()

	t.Run("rejeitado keeps reason", func(t *testing.T) {
		tl := Build(entities.StatusRejeitado, "fora do orçamento", catalog)
		if !tl.Halted {
			t.Fatalf("expected halted timeline")
		}
		if tl.HaltReason != "fora do orçamento" {
			t.Fatalf("unexpected reason %q", tl.HaltReason)
		}
		if tl.HaltLabel != "Rejeitado" {
			t.Fatalf("unexpected label %q", tl.HaltLabel)
		}
		if len(tl.Actions) != 1 || tl.Actions[0] != ActionReopen {
			t.Fatalf("expected only reopen action, got %v", tl.Actions)
		}
		if len(tl.Stages) != 0 {
			t.Fatalf("halted timeline must not render stages")
		}
	})

	t.Run("cancelado without reason", func(t *testing.T) {
		tl := Build(entities.StatusCancelado, "", catalog)
		if !tl.Halted || tl.HaltReason != "" {
			t.Fatalf("unexpected timeline %+v", tl)
		}
		if len(tl.Actions) != 1 || tl.Actions[0] != ActionReopen {
			t.Fatalf("expected only reopen action, got %v", tl.Actions)
		}
	})
}

func TestRevertTarget(t *testing.T) {
	t.Run("earlier stages succeed with their exact status", func(t *testing.T) {
		for _, stage := range Stages()[:4] {
			got, ok := RevertTarget(entities.StatusComprado, stage.Key)
			if !ok {
				t.Fatalf("revert to %s should be allowed", stage.Key)
			}
			if got != stage.Status {
				t.Fatalf("expected %s, got %s", stage.Status, got)
			}
		}
	})

	t.Run("current and later stages are rejected", func(t *testing.T) {
		for _, stage := range Stages()[4:] {
			if _, ok := RevertTarget(entities.StatusComprado, stage.Key); ok {
				t.Fatalf("revert to %s should be a no-op", stage.Key)
			}
		}
	})

	t.Run("criada maps to pendente", func(t *testing.T) {
		got, ok := RevertTarget(entities.StatusEmAnalise, StageCriada)
		if !ok || got != entities.StatusPendente {
			t.Fatalf("expected pendente, got %s ok=%v", got, ok)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		if _, ok := RevertTarget(entities.StatusRecebido, StageKey("x")); ok {
			t.Fatalf("unknown stage must be rejected")
		}
	})

	t.Run("halted requisition", func(t *testing.T) {
		if _, ok := RevertTarget(entities.StatusRejeitado, StageCriada); ok {
			t.Fatalf("halted requisitions reopen instead of reverting")
		}
	})
}

func TestReopenTarget(t *testing.T) {
	if got, ok := ReopenTarget(entities.StatusCancelado); !ok || got != entities.StatusPendente {
		t.Fatalf("expected pendente, got %s ok=%v", got, ok)
	}
	if _, ok := ReopenTarget(entities.StatusAprovado); ok {
		t.Fatalf("only halted requisitions can reopen")
	}
}
