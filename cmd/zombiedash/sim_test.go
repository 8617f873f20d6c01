package main

import (
	"testing"

	"github.com/vovakirdan/zombie-dash/internal/core"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected []core.Action
		wantErr  bool
	}{
		{"empty idles", "", []core.Action{core.ActionNone}, false},
		{"moves", "wasd", []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}, false},
		{"items", "F.mV", []core.Action{core.ActionFire, core.ActionNone, core.ActionMine, core.ActionVaccine}, false},
		{"unknown", "dx", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseScript(tc.script)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseScript(%q) error = %v, wantErr %v", tc.script, err, tc.wantErr)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("parseScript(%q) = %v, expected %v", tc.script, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("parseScript(%q)[%d] = %v, expected %v", tc.script, i, got[i], tc.expected[i])
				}
			}
		})
	}
}
