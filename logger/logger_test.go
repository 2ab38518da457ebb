package logger

import "testing"

func TestNewDefault(t *testing.T) {
	l := NewDefault("wordcab")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "wordcab" {
		t.Errorf("expected service 'wordcab', got %q", l.service)
	}
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{Level: "nonsense", Format: "json", Output: "stdout"}
	l := New(cfg, "wordcab")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected console, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected stderr, got %s", cfg.Output)
	}
	if cfg.NoTimestamp {
		t.Error("timestamps should stay on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigDefaults_KeepsNoTimestamp(t *testing.T) {
	cfg := Config{NoTimestamp: true}
	cfg.ApplyDefaults()
	if !cfg.NoTimestamp {
		t.Error("ApplyDefaults must not override a disabled timestamp")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "console"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields("job_name", "job_abc", "status", "Pending")
	if m["job_name"] != "job_abc" || m["status"] != "Pending" {
		t.Errorf("unexpected fields: %v", m)
	}
	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 field, got %v", m)
	}
}

func TestWithComponentDoesNotPanic(t *testing.T) {
	l := Nop().WithComponent("client").WithFields(map[string]any{"k": "v"})
	l.Debug("noop")
	l.Info("noop")
	l.Warn("noop")
	l.Error("noop")
}
