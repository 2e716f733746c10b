package testutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/registry"
)

// RecorderModule registers a "recorder" lifecycle kind that logs
// "create:<id>", "open:<id>", "run:<id>" and "close:<id>" to Journal. The
// fail_* arguments make the matching step return an error.
type RecorderModule struct {
	Journal *Journal
}

type recorderInput struct {
	ID        string `hcl:"id"`
	FailOpen  bool   `hcl:"fail_open,optional"`
	FailRun   bool   `hcl:"fail_run,optional"`
	FailClose bool   `hcl:"fail_close,optional"`
}

// Recorder is the value built by the "recorder" kind.
type Recorder struct {
	input   *recorderInput
	journal *Journal
	// Deps are the dependencies injected at construction.
	Deps component.Deps
}

// Register registers the "recorder" kind.
func (m *RecorderModule) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("recorder", "Records lifecycle events.", func(_ context.Context, in *recorderInput, deps component.Deps) (any, error) {
		m.Journal.Record("create:" + in.ID)
		return &Recorder{input: in, journal: m.Journal, Deps: deps}, nil
	}))
}

func (r *Recorder) Open(context.Context) (any, error) {
	r.journal.Record("open:" + r.input.ID)
	if r.input.FailOpen {
		return nil, fmt.Errorf("recorder %s: open failed", r.input.ID)
	}
	return r, nil
}

func (r *Recorder) Run(context.Context) error {
	r.journal.Record("run:" + r.input.ID)
	if r.input.FailRun {
		return fmt.Errorf("recorder %s: run failed", r.input.ID)
	}
	return nil
}

func (r *Recorder) Close(context.Context) error {
	r.journal.Record("close:" + r.input.ID)
	if r.input.FailClose {
		return errors.New("recorder " + r.input.ID + ": close failed")
	}
	return nil
}

func (r *Recorder) String() string { return "recorder(" + r.input.ID + ")" }
