package ethapi

// Version is the JSON-RPC protocol version literal sent and expected in
// every envelope.
const Version = "2.0"

// Request is a JSON-RPC request envelope. The params shape differs per
// method, so the payload is generic.
type Request[P any] struct {
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  P      `json:"params"`
	ID      uint64 `json:"id"`
}

// Response is a JSON-RPC response envelope. The id is echoed by the node;
// the client does not correlate it against the request id.
type Response[R any] struct {
	Jsonrpc string `json:"jsonrpc"`
	Result  R      `json:"result"`
	ID      uint64 `json:"id"`
}
