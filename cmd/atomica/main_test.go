package main

import (
	"io"
	"strings"
	"testing"

	"github.com/san-kum/atomica/internal/config"
)

func TestEffectiveLogLevel(t *testing.T) {
	saved := logLevel
	defer func() { logLevel = saved }()

	cfg := config.DefaultConfig()
	cfg.LogLevel = "warn"

	logLevel = ""
	if got := effectiveLogLevel(cfg); got != "warn" {
		t.Errorf("expected the config level, got %q", got)
	}

	logLevel = "debug"
	if got := effectiveLogLevel(cfg); got != "debug" {
		t.Errorf("the flag should override the config, got %q", got)
	}
}

func TestJumpRejectsInvalidStartingLevel(t *testing.T) {
	for _, from := range []string{"0", "-3"} {
		cmd := jumpCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--from", from})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "starting level") {
			t.Errorf("--from %s: expected a starting-level error, got %v", from, err)
		}
	}
}
