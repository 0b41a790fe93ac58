package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
)

func writeOverrideFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "override.json")
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed writing override file: %v", err)
	}
	return path
}

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name           string
		flags          NetworkFlags
		expectedParams *chaincfg.Params
		expectedError  bool
	}{
		{name: "default", flags: NetworkFlags{}, expectedParams: chaincfg.MainnetParams},
		{name: "testnet", flags: NetworkFlags{Testnet: true}, expectedParams: chaincfg.TestnetParams},
		{name: "regtest", flags: NetworkFlags{Regtest: true}, expectedParams: chaincfg.RegtestParams},
		{name: "multiple", flags: NetworkFlags{Testnet: true, Regtest: true}, expectedError: true},
	}

	for _, test := range tests {
		flags := test.flags
		err := flags.ResolveNetwork(nil)
		if test.expectedError {
			if err == nil {
				t.Errorf("%s: expected an error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %+v", test.name, err)
			continue
		}
		if flags.NetParams() != test.expectedParams {
			t.Errorf("%s: expected %s params, got %s", test.name,
				test.expectedParams.Name(), flags.NetParams().Name())
		}
	}
}

func TestOverrideParamsOutsideRegtest(t *testing.T) {
	flags := NetworkFlags{
		Testnet:            true,
		OverrideParamsFile: writeOverrideFile(t, `{"subsidyHalvingInterval": 10}`),
	}
	err := flags.ResolveNetwork(nil)
	if err == nil {
		t.Fatalf("expected override-params-file to be rejected on testnet")
	}
}

func TestOverrideParams(t *testing.T) {
	flags := NetworkFlags{
		Regtest: true,
		OverrideParamsFile: writeOverrideFile(t, `{
			"subsidyHalvingInterval": 10,
			"stakeMinAgeInSeconds": 60,
			"allowMinDifficultyBlocks": false,
			"forks": {"finalPoW": 20}
		}`),
	}
	err := flags.ResolveNetwork(nil)
	if err != nil {
		t.Fatalf("ResolveNetwork: %+v", err)
	}

	params := flags.NetParams()
	if params == chaincfg.RegtestParams {
		t.Fatalf("expected new params, got the regtest preset")
	}
	if params.SubsidyHalvingInterval() != 10 {
		t.Errorf("unexpected halving interval %d", params.SubsidyHalvingInterval())
	}
	if params.StakeMinAge() != time.Minute {
		t.Errorf("unexpected stake min age %s", params.StakeMinAge())
	}
	if params.StakeMaxAge() != chaincfg.RegtestParams.StakeMaxAge() {
		t.Errorf("stake max age changed to %s", params.StakeMaxAge())
	}
	if params.AllowMinDifficultyBlocks() {
		t.Errorf("expected min difficulty blocks to be disallowed")
	}

	forks := params.Forks()
	if forks.FinalPoW != 20 {
		t.Errorf("unexpected final PoW height %d", forks.FinalPoW)
	}
	if forks.KGW != chaincfg.RegtestParams.Forks().KGW {
		t.Errorf("KGW height changed to %d", forks.KGW)
	}

	// The preset itself is untouched
	if chaincfg.RegtestParams.SubsidyHalvingInterval() == 10 {
		t.Errorf("the regtest preset was modified")
	}
}

func TestOverrideParamsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown field", content: `{"k": 18}`},
		{name: "malformed json", content: `{"subsidyHalvingInterval": }`},
		{name: "bad pow limit", content: `{"powLimit": "not hex"}`},
		{name: "zero spacing", content: `{"powTargetSpacingInSeconds": 0}`},
		{name: "min age above max age", content: `{"stakeMinAgeInSeconds": 999999999}`},
	}

	for _, test := range tests {
		flags := NetworkFlags{
			Regtest:            true,
			OverrideParamsFile: writeOverrideFile(t, test.content),
		}
		err := flags.ResolveNetwork(nil)
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}
