package main

import (
	"errors"
	"testing"
)

func TestCheckArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{name: "empty", args: nil},
		{name: "session", args: []string{"session"}, ok: true},
		{name: "list", args: []string{"list"}, ok: true},
		{name: "show without id", args: []string{"show"}},
		{name: "like", args: []string{"like", "r1"}, ok: true},
		{name: "comment without text", args: []string{"comment", "r1", "Arjuna"}},
		{name: "comment", args: []string{"comment", "r1", "Arjuna", "jai", "ho"}, ok: true},
		{name: "unknown", args: []string{"dance"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkArgs(tt.args)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, errUsage) {
				t.Fatalf("err = %v, want usage", err)
			}
		})
	}
}

func TestRunRejectsBadArgsBeforeConnecting(t *testing.T) {
	if err := run([]string{"show"}); !errors.Is(err, errUsage) {
		t.Fatalf("err = %v, want usage", err)
	}
}
