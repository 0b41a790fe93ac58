package testutils

import (
	"testing"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
)

// ForAllNets runs the passed testFunc with all available networks
func ForAllNets(t *testing.T, testFunc func(*testing.T, *chaincfg.Params)) {
	allParams := []*chaincfg.Params{
		chaincfg.MainnetParams,
		chaincfg.TestnetParams,
		chaincfg.RegtestParams,
	}

	for _, params := range allParams {
		params := params
		t.Run(params.Name(), func(t *testing.T) {
			t.Parallel()
			t.Logf("Running test for %s", params.Name())
			testFunc(t, params)
		})
	}
}
