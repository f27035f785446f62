package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings keeps all CLI configuration options.
// Naming mirrors the env keys; both lower_case and UPPER_CASE are accepted.
type Settings struct {
	RPCURL    string
	RequestID uint64
	BlockTag  string
	Tracer    string
	Preflight bool
	Verbose   bool
}

// Load reads settings from environment supporting both UPPER_CASE and lower_case keys.
func Load() Settings {
	get := func(keys []string, def string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				return v
			}
		}
		return def
	}
	getUint64 := func(keys []string, def uint64) uint64 {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
			return n
		}
		return def
	}
	getBool := func(keys []string, def bool) bool {
		s := strings.ToLower(get(keys, ""))
		if s == "" {
			return def
		}
		return s == "1" || s == "true" || s == "yes" || s == "on"
	}

	st := Settings{}
	st.RPCURL = get([]string{"rpc_url", "RPC_URL"}, "https://reth.cgp.xyz/")
	st.RequestID = getUint64([]string{"request_id", "REQUEST_ID"}, 0)
	st.BlockTag = get([]string{"block", "BLOCK"}, "pending")
	st.Tracer = get([]string{"tracer", "TRACER"}, "")
	st.Preflight = getBool([]string{"preflight", "PREFLIGHT"}, false)
	st.Verbose = getBool([]string{"verbose", "VERBOSE"}, false)
	return st
}
