package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgconfig"
)

func TestLogOutput(t *testing.T) {
	for target, want := range map[string]io.Writer{
		"":        os.Stderr,
		"stderr":  os.Stderr,
		"stdout":  os.Stdout,
		"discard": io.Discard,
	} {
		w, closer, err := logOutput(target)
		if err != nil {
			t.Fatalf("logOutput(%q) err = %v", target, err)
		}
		if w != want || closer != nil {
			t.Fatalf("logOutput(%q) got = %v/%v", target, w, closer)
		}
	}

	path := filepath.Join(t.TempDir(), "atm.log")
	w, closer, err := logOutput(path)
	if err != nil {
		t.Fatalf("logOutput(file) err = %v", err)
	}
	if closer == nil {
		t.Fatalf("logOutput(file) expected closer")
	}
	if _, err := io.WriteString(w, "line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil || string(b) != "line\n" {
		t.Fatalf("log file got = %q, %v", b, err)
	}

	if _, _, err := logOutput(filepath.Join(t.TempDir(), "missing", "atm.log")); err == nil {
		t.Fatalf("logOutput() expected error for unwritable path")
	}
}

func TestDefaultConfigWithoutFile(t *testing.T) {
	cfg, err := pkgconfig.NewViper(filepath.Join(t.TempDir(), "config.yaml"), defaultConfig())
	if err != nil {
		t.Fatalf("NewViper() err = %v", err)
	}

	balance, err := cfg.GetDecimal("atm.initial_balance")
	if err != nil || balance.String() != "2607.04" {
		t.Fatalf("initial balance got = %v, %v", balance, err)
	}

	minDeposit, err := cfg.GetDecimal("atm.min_deposit")
	if err != nil || minDeposit.String() != "100" {
		t.Fatalf("min deposit got = %v, %v", minDeposit, err)
	}

	if got := cfg.GetString("atm.currency"); got != "₹" {
		t.Fatalf("currency got = %q, want ₹", got)
	}

	var creds []entity.Credential
	if err := cfg.Unmarshal("atm.credentials", &creds); err != nil {
		t.Fatalf("Unmarshal() err = %v", err)
	}
	if len(creds) != 1 || creds[0].Identifier != "**123" || creds[0].Secret != "12345" {
		t.Fatalf("credentials got = %+v", creds)
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := pkgconfig.NewViper(filepath.Join("..", "..", "config", "config.yaml"), nil)
	if err != nil {
		t.Fatalf("NewViper() err = %v", err)
	}

	defaults, err := pkgconfig.NewViper(filepath.Join(t.TempDir(), "config.yaml"), defaultConfig())
	if err != nil {
		t.Fatalf("NewViper() err = %v", err)
	}

	for _, key := range []string{"log.level", "log.output", "atm.currency", "atm.initial_balance", "atm.min_deposit"} {
		if got, want := cfg.GetString(key), defaults.GetString(key); got != want {
			t.Fatalf("%s got = %q, want %q", key, got, want)
		}
	}
}
