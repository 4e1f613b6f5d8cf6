package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Engine hooks
	e := NoopEngineHooks{}
	e.OnPlanStart(ctx, true)
	e.OnPlanComplete(ctx, 3, 42, time.Second, nil)
	e.OnRenderStart(ctx, 3)
	e.OnRenderComplete(ctx, 1024, time.Second, nil)

	// Storage hooks
	s := NoopStorageHooks{}
	s.OnSave(ctx, "/tmp/report.pdf", 1024)
	s.OnRemove(ctx, "/tmp/report.pdf")

	// Inference hooks
	i := NoopInferenceHooks{}
	i.OnRequest(ctx, "ollama", "llava", 2048)
	i.OnResponse(ctx, "ollama", "llava", 500, time.Second)
	i.OnError(ctx, "ollama", "llava", errors.New("boom"))
}

type recordingEngineHooks struct {
	NoopEngineHooks
	planStarts int
}

func (h *recordingEngineHooks) OnPlanStart(context.Context, bool) {
	h.planStarts++
}

func TestSetAndGetHooks(t *testing.T) {
	defer Reset()

	rec := &recordingEngineHooks{}
	SetEngineHooks(rec)

	Engine().OnPlanStart(context.Background(), false)
	if rec.planStarts != 1 {
		t.Errorf("planStarts = %d, want 1", rec.planStarts)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	SetEngineHooks(nil)
	SetStorageHooks(nil)
	SetInferenceHooks(nil)

	if Engine() == nil || Storage() == nil || Inference() == nil {
		t.Error("nil registration must not clear the registered hooks")
	}
}

func TestReset(t *testing.T) {
	SetEngineHooks(&recordingEngineHooks{})
	Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Errorf("Engine() after Reset = %T, want NoopEngineHooks", Engine())
	}
}
