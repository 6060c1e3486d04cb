package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"lifeloop/internal/driver"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifeloop.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "sim: briansbrain\ntps: 30\non_error: continue\n")

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "briansbrain" || cfg.TPS != 30 {
		t.Fatalf("config = %+v, want file values applied", cfg)
	}
	// Values absent from the file keep their defaults.
	if cfg.Width != 64 || cfg.Seed != 42 {
		t.Fatalf("config = %+v, want untouched defaults", cfg)
	}
}

func TestResolveFlagsWinOverFile(t *testing.T) {
	path := writeConfig(t, "tps: 30\nseed: 7\n")

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-tps", "5"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatal(err)
	}

	if cfg.TPS != 5 {
		t.Fatalf("tps = %d, want explicit flag value 5", cfg.TPS)
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed = %d, want file value 7", cfg.Seed)
	}
}

func TestResolveWithoutFileIsNoop(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatal(err)
	}
}

func TestPolicyMapping(t *testing.T) {
	cfg := NewConfig()

	p, err := cfg.Policy()
	if err != nil || p != driver.HaltOnError {
		t.Fatalf("default policy = %v, %v; want halt", p, err)
	}

	cfg.OnError = "continue"
	p, err = cfg.Policy()
	if err != nil || p != driver.LogAndContinue {
		t.Fatalf("policy = %v, %v; want continue", p, err)
	}

	cfg.OnError = "retry"
	if _, err = cfg.Policy(); err == nil {
		t.Fatal("expected an error for an unknown policy")
	}
}
