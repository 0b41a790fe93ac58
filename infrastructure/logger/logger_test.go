package logger

import (
	"bytes"
	"strings"
	"testing"
)

type bufferCloser struct {
	bytes.Buffer
}

func (b *bufferCloser) Close() error { return nil }

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"verbose", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.in)
		if level != test.expected || ok != test.ok {
			t.Fatalf("LevelFromString(%q): got (%s, %t), want (%s, %t)",
				test.in, level, ok, test.expected, test.ok)
		}
	}
}

func TestBackendFiltersByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	buf := &bufferCloser{}
	err := backend.AddLogWriter(buf, LevelInfo)
	if err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	err = backend.Run()
	if err != nil {
		t.Fatalf("Run: %s", err)
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelTrace)
	log.Debugf("hidden %d", 1)
	log.Infof("shown %d", 2)
	backend.Close()

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Fatalf("debug line leaked into info writer: %q", output)
	}
	if !strings.Contains(output, "[INF] TEST: shown 2") {
		t.Fatalf("missing info line: %q", output)
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	log := RegisterSubSystem("LTST")
	err := ParseAndSetLogLevels("LTST=debug")
	if err != nil {
		t.Fatalf("ParseAndSetLogLevels: %s", err)
	}
	if log.Level() != LevelDebug {
		t.Fatalf("unexpected level %s", log.Level())
	}

	err = ParseAndSetLogLevels("NOPE=debug")
	if err == nil {
		t.Fatalf("expected an error for an unknown subsystem")
	}
	err = ParseAndSetLogLevels("loud")
	if err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}
