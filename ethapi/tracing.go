package ethapi

import "encoding/json"

// TracingOptions selects and tunes a debug tracer for the simulation.
// It mirrors geth's debug tracing config; TracerConfig is forwarded to
// the chosen tracer verbatim.
type TracingOptions struct {
	EnableMemory     bool            `json:"enableMemory,omitempty"`
	DisableStack     bool            `json:"disableStack,omitempty"`
	DisableStorage   bool            `json:"disableStorage,omitempty"`
	EnableReturnData bool            `json:"enableReturnData,omitempty"`
	Limit            int             `json:"limit,omitempty"`
	Tracer           *string         `json:"tracer,omitempty"`
	TracerConfig     json.RawMessage `json:"tracerConfig,omitempty"`
	Timeout          *string         `json:"timeout,omitempty"`
	Reexec           *uint64         `json:"reexec,omitempty"`
}

// Built-in tracer names understood by geth-style nodes.
const (
	CallTracer     = "callTracer"
	PrestateTracer = "prestateTracer"
)

// EmulateOptions tunes a bundle simulation. All three fields are
// independently optional. Unset fields are dropped from the standalone
// JSON form of this struct, but still occupy their positional slot (as
// explicit null) in the wire params tuple.
type EmulateOptions struct {
	TracingOptions *TracingOptions `json:"tracingOptions,omitempty"`
	StateOverrides *StateOverride  `json:"stateOverrides,omitempty"`
	BlockOverrides *BlockOverrides `json:"blockOverrides,omitempty"`
}
