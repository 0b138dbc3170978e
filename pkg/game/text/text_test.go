package text

import (
	"reflect"
	"strings"
	"testing"
)

func TestLanguages(t *testing.T) {
	if got, want := Languages(), []string{"de", "en"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	if err := SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage(en) error: %v", err)
	}
	if got := Get("LOST_BANNER"); got != "GAME OVER" {
		t.Errorf("Get(LOST_BANNER) = %q, want GAME OVER", got)
	}
	if got := Getf("PICKUP", 25); !strings.Contains(got, "+25 HP") {
		t.Errorf("Getf(PICKUP, 25) = %q, want it to contain +25 HP", got)
	}
	if got := Get("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Errorf("Get(NO_SUCH_KEY) = %q, want the key back", got)
	}
	status := Getf("STATUS", 1.5, 2.5, 0.0, 90.0, 0.0, 100, 12.0, Get("GATE_OPEN_STATUS"), 50.0)
	if !strings.Contains(status, "HP: 100") || !strings.Contains(status, "Battery: 50%") {
		t.Errorf("Getf(STATUS) = %q", status)
	}
}

func TestGetf_FormatsOnlyWithArgs(t *testing.T) {
	if err := SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage(en) error: %v", err)
	}
	if got, want := Get("GATE_CLOSED_STATUS"), "CLOSED %.0fs"; got != want {
		t.Errorf("Get(GATE_CLOSED_STATUS) = %q, want the raw %q", got, want)
	}
	if got, want := Getf("GATE_CLOSED_STATUS", 42.4), "CLOSED 42s"; got != want {
		t.Errorf("Getf(GATE_CLOSED_STATUS, 42.4) = %q, want %q", got, want)
	}
	if got, want := Getf("NO_SUCH_KEY"), "NO_SUCH_KEY"; got != want {
		t.Errorf("Getf(NO_SUCH_KEY) = %q, want %q", got, want)
	}
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage(DefaultLanguage)

	if err := SetLanguage("de"); err != nil {
		t.Fatalf("SetLanguage(de) error: %v", err)
	}
	if got := Get("LOST_BANNER"); got != "SPIEL VORBEI" {
		t.Errorf("Get(LOST_BANNER) in de = %q, want SPIEL VORBEI", got)
	}
	if err := SetLanguage("xx"); err == nil {
		t.Error("SetLanguage(xx) error = nil, want error")
	}
}
