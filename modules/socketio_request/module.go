package socketio_request

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const defaultTimeout = 10 * time.Second

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the kind.
type Input struct {
	OnEvent   string    `hcl:"on_event"`
	EmitEvent string    `hcl:"emit_event"`
	EmitData  cty.Value `hcl:"emit_data,optional"`
	Timeout   string    `hcl:"timeout,optional"`
}

// SocketProvider is satisfied by the socketio_client component.
type SocketProvider interface {
	Socket() (*socket.Socket, error)
}

// Request emits one event and waits for a reply event when run.
type Request struct {
	input   *Input
	client  SocketProvider
	timeout time.Duration

	Response cty.Value
}

type opResult struct {
	value cty.Value
	err   error
}

func newRequest(_ context.Context, input *Input, deps component.Deps) (any, error) {
	client, err := component.Get[SocketProvider](deps, "client")
	if err != nil {
		return nil, err
	}

	timeout := defaultTimeout
	if input.Timeout != "" {
		timeout, err = time.ParseDuration(input.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timeout: %w", err)
		}
	}
	return &Request{input: input, client: client, timeout: timeout}, nil
}

// Run emits EmitEvent with EmitData and stores the first OnEvent payload.
func (r *Request) Run(ctx context.Context) error {
	sock, err := r.client.Socket()
	if err != nil {
		return err
	}

	logger := ctxlog.FromContext(ctx).With("sid", sock.Id())
	logger.Info("Executing request", "emitEvent", r.input.EmitEvent, "onEvent", r.input.OnEvent)

	opCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done, stop := awaitResponse(sock, r.input.OnEvent, logger)
	defer stop()

	data, err := ctyValueToInterface(r.input.EmitData)
	if err != nil {
		return fmt.Errorf("failed to convert emit_data to interface: %w", err)
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		jsonData, _ := json.Marshal(data)
		logger.Debug("Emitting event", "event", r.input.EmitEvent, "data", string(jsonData))
	}
	if err := sock.Emit(r.input.EmitEvent, data); err != nil {
		return fmt.Errorf("failed to emit '%s': %w", r.input.EmitEvent, err)
	}

	select {
	case <-opCtx.Done():
		return fmt.Errorf("timed out after %v waiting for event '%s'", r.timeout, r.input.OnEvent)
	case res := <-done:
		if res.err != nil {
			return res.err
		}
		logger.Info("Successfully received response event", "event", r.input.OnEvent)
		r.Response = res.value
		return nil
	}
}

// listeners is the part of a socket's event emitter awaitResponse needs.
type listeners interface {
	Once(types.EventName, ...types.Listener) error
	RemoveListener(types.EventName, types.Listener) bool
}

// awaitResponse registers a one-time listener for event and returns the
// channel its result is delivered on. stop removes the listener if it has not
// fired yet.
func awaitResponse(em listeners, event string, logger *slog.Logger) (<-chan opResult, func()) {
	done := make(chan opResult, 1)
	var listener types.Listener = func(data ...any) {
		logger.Debug("Response event received", "event", event)
		if len(data) == 0 {
			done <- opResult{value: cty.NullVal(cty.DynamicPseudoType)}
			return
		}
		v, err := interfaceToCtyValue(data[0])
		if err != nil {
			done <- opResult{err: fmt.Errorf("failed to convert received data: %w", err)}
			return
		}
		done <- opResult{value: v}
	}
	em.Once(types.EventName(event), listener)
	return done, func() { em.RemoveListener(types.EventName(event), listener) }
}

func (r *Request) String() string {
	if r.Response.IsNull() {
		return fmt.Sprintf("%s -> %s: (no response)", r.input.EmitEvent, r.input.OnEvent)
	}
	data, err := ctyValueToInterface(r.Response)
	if err != nil {
		return fmt.Sprintf("%s -> %s: %s", r.input.EmitEvent, r.input.OnEvent, r.Response.GoString())
	}
	out, _ := json.Marshal(data)
	return fmt.Sprintf("%s -> %s: %s", r.input.EmitEvent, r.input.OnEvent, out)
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("socketio_request", "Emits a socket.io event and waits for a reply.", newRequest))
}

// ctyValueToInterface converts a cty.Value to a Go interface{}.
func ctyValueToInterface(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}
	if val.Type().IsPrimitiveType() {
		switch val.Type() {
		case cty.String:
			return val.AsString(), nil
		case cty.Number:
			f, _ := val.AsBigFloat().Float64()
			return f, nil
		case cty.Bool:
			return val.True(), nil
		default:
			return nil, fmt.Errorf("unsupported primitive type: %s", val.Type().FriendlyName())
		}
	}
	if val.Type().IsObjectType() || val.Type().IsMapType() {
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			valInterface, err := ctyValueToInterface(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = valInterface
		}
		return out, nil
	}
	if val.Type().IsTupleType() || val.Type().IsListType() {
		var out []any
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			valInterface, err := ctyValueToInterface(v)
			if err != nil {
				return nil, err
			}
			out = append(out, valInterface)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported cty.Type for conversion: %s", val.Type().FriendlyName())
}

// interfaceToCtyValue converts a Go interface{} to a cty.Value.
func interfaceToCtyValue(data any) (cty.Value, error) {
	if data == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	switch v := data.(type) {
	case string:
		return cty.StringVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case map[string]any:
		attrs := make(map[string]cty.Value)
		for key, val := range v {
			ctyVal, err := interfaceToCtyValue(val)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[key] = ctyVal
		}
		return cty.ObjectVal(attrs), nil
	case []any:
		elems := make([]cty.Value, 0, len(v))
		for _, val := range v {
			ctyVal, err := interfaceToCtyValue(val)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, ctyVal)
		}
		return cty.TupleVal(elems), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported type for conversion to cty.Value: %T", v)
	}
}
