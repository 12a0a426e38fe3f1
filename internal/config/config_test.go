package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.DatabasePath != "mailserver.sqlite" {
		t.Fatalf("unexpected default database: %q", cfg.App.DatabasePath)
	}
	if cfg.App.BlocklistPath != "/etc/postfix/access" {
		t.Fatalf("unexpected default blocklist: %q", cfg.App.BlocklistPath)
	}
	if cfg.App.RebuildCommand != "postmap hash:/etc/postfix/access" {
		t.Fatalf("unexpected default rebuild command: %q", cfg.App.RebuildCommand)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero geometry, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"ISPMAIL_USERCTL_DB=/env/mail.sqlite",
		"ISPMAIL_USERCTL_BLOCKLIST=/env/access",
		"ISPMAIL_USERCTL_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"-db", "/flag/mail.sqlite"}, env)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.DatabasePath != "/flag/mail.sqlite" {
		t.Fatalf("flag should win over env, got %q", cfg.App.DatabasePath)
	}
	if cfg.App.BlocklistPath != "/env/access" {
		t.Fatalf("env value lost, got %q", cfg.App.BlocklistPath)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
	if cfg.App.RebuildCommand != "postmap hash:/env/access" {
		t.Fatalf("rebuild command should follow blocklist path, got %q", cfg.App.RebuildCommand)
	}
}

func TestLoadArgsRejectsNegativeGeometry(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestValidateRequiresPaths(t *testing.T) {
	cfg, err := LoadArgs([]string{"-db", ""}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation failure for empty database path")
	}
}
