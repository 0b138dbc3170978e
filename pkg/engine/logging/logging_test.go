package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	closer, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	Component("gameplay").WithField("tick", 3).Info("gate opened")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	t.Cleanup(func() { Setup("", "info") })

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	line := string(data)
	for _, want := range []string{"component=gameplay", "tick=3", "gate opened"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
}

func TestSetup_Errors(t *testing.T) {
	if _, err := Setup("", "loud"); err == nil {
		t.Error("Setup(level loud) error = nil, want error")
	}
	if _, err := Setup(filepath.Join(t.TempDir(), "missing", "x.log"), "info"); err == nil {
		t.Error("Setup(missing dir) error = nil, want error")
	}
}
