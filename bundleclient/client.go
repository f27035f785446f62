package bundleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cgpxyz/simbundle/ethapi"
)

// Client calls the cgp_simulateTransactionsBundle extension of an
// Ethereum-compatible node. A Client holds no per-call state, so one
// instance may be shared by concurrent goroutines.
type Client struct {
	endpoint string
	httpc    *http.Client
	id       uint64
	logf     func(string, ...any)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP client used for the POST. The
// default client carries no timeout; callers bound calls via context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpc = hc
		}
	}
}

// WithRequestID sets the correlation id placed in every request
// envelope. The node echoes it back; the client does not validate the
// echo, and ids need not be unique.
func WithRequestID(id uint64) Option {
	return func(c *Client) { c.id = id }
}

// WithLogf installs a progress logger.
func WithLogf(logf func(string, ...any)) Option {
	return func(c *Client) { c.logf = logf }
}

// New returns a client for the node at endpoint.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		httpc:    &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) log(format string, a ...any) {
	if c.logf != nil {
		c.logf(format, a...)
	}
}

// NewBundleRequest assembles the request envelope for one bundle. The
// params tuple keeps all five slots even when options are unset; the
// node addresses them by position.
func NewBundleRequest(txs []ethapi.CallRequest, blockID *ethapi.BlockID, opts ethapi.EmulateOptions, id uint64) ethapi.Request[ethapi.BundleParams] {
	return ethapi.Request[ethapi.BundleParams]{
		Jsonrpc: ethapi.Version,
		Method:  ethapi.MethodSimulateBundle,
		Params: ethapi.BundleParams{
			Transactions:   txs,
			BlockID:        blockID,
			BlockOverrides: opts.BlockOverrides,
			StateOverrides: opts.StateOverrides,
			TracingOptions: opts.TracingOptions,
		},
		ID: id,
	}
}

// SimulateTransactionsBundle executes txs in order against the state
// selected by blockID, without persisting anything node-side. One POST
// per call: no retry, no status-code gating — an error body with a JSON
// payload still reaches the decoder.
func (c *Client) SimulateTransactionsBundle(ctx context.Context, txs []ethapi.CallRequest, blockID *ethapi.BlockID, opts ethapi.EmulateOptions) (*ethapi.Response[ethapi.TransactionSimulationInfo], error) {
	body, err := json.Marshal(NewBundleRequest(txs, blockID, opts, c.id))
	if err != nil {
		return nil, wrapErr(KindSerialization, err)
	}
	c.log("simulate: %d txs, %d request bytes", len(txs), len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, wrapErr(KindTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, wrapErr(KindTransport, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapErr(KindTransport, err)
	}
	c.log("simulate: http %d, %d response bytes", resp.StatusCode, len(raw))

	return decodeSimulationResponse(raw)
}

// decodeSimulationResponse parses the body into the result envelope and
// applies the decoder defaults.
func decodeSimulationResponse(raw []byte) (*ethapi.Response[ethapi.TransactionSimulationInfo], error) {
	var env ethapi.Response[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, wrapErr(KindDecode, err)
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		// The node's error object is not modeled as a channel of its
		// own; surface its message as diagnostics on the decode failure.
		var fail struct {
			Error *struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &fail) == nil && fail.Error != nil {
			return nil, wrapErr(KindDecode, fmt.Errorf("missing result (node error %d: %s)", fail.Error.Code, fail.Error.Message))
		}
		return nil, wrapErr(KindDecode, errors.New("missing result"))
	}
	out := &ethapi.Response[ethapi.TransactionSimulationInfo]{
		Jsonrpc: env.Jsonrpc,
		ID:      env.ID,
	}
	if err := json.Unmarshal(env.Result, &out.Result); err != nil {
		return nil, wrapErr(KindDecode, err)
	}
	return out, nil
}
