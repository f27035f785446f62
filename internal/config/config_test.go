package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"rpc_url", "RPC_URL", "request_id", "REQUEST_ID", "block", "BLOCK", "tracer", "TRACER", "preflight", "PREFLIGHT", "verbose", "VERBOSE"} {
		t.Setenv(k, "")
	}
	st := Load()
	assert.Equal(t, "https://reth.cgp.xyz/", st.RPCURL)
	assert.Equal(t, uint64(0), st.RequestID)
	assert.Equal(t, "pending", st.BlockTag)
	assert.Equal(t, "", st.Tracer)
	assert.False(t, st.Preflight)
	assert.False(t, st.Verbose)
}

func TestLoadDualCaseKeys(t *testing.T) {
	t.Setenv("rpc_url", "http://localhost:8545")
	t.Setenv("REQUEST_ID", "7")
	t.Setenv("TRACER", "callTracer")
	t.Setenv("verbose", "yes")

	st := Load()
	assert.Equal(t, "http://localhost:8545", st.RPCURL)
	assert.Equal(t, uint64(7), st.RequestID)
	assert.Equal(t, "callTracer", st.Tracer)
	assert.True(t, st.Verbose)
}

func TestLoadLowerCaseWinsOverUpper(t *testing.T) {
	t.Setenv("block", "latest")
	t.Setenv("BLOCK", "pending")
	st := Load()
	assert.Equal(t, "latest", st.BlockTag)
}

func TestLoadBadNumberFallsBack(t *testing.T) {
	t.Setenv("REQUEST_ID", "not-a-number")
	st := Load()
	assert.Equal(t, uint64(0), st.RequestID)
}
