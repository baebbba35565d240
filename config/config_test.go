package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
)

func TestFinalize_ToleratesMissingSections(t *testing.T) {
	cfg := &Config{}

	finalize(cfg)

	if cfg.Postgres != nil {
		t.Fatalf("finalize invented a postgres section: %+v", cfg.Postgres)
	}
	if cfg.Alert == nil {
		t.Fatal("finalize left the alert section nil")
	}
	if cfg.Alert.MaxRecipients != DefaultAlertConfig().MaxRecipients {
		t.Fatalf("alert defaults not applied: %+v", cfg.Alert)
	}
}

func TestFinalize_KeepsConfiguredAlertSection(t *testing.T) {
	alert := &AlertConfig{MaxRecipients: 5}
	cfg := &Config{Alert: alert}

	finalize(cfg)

	if cfg.Alert != alert {
		t.Fatal("finalize replaced a configured alert section")
	}
	if cfg.Alert.MaxRecipients != 5 {
		t.Fatalf("alert section mutated: %+v", cfg.Alert)
	}
}

func TestFinalize_BuildsReplicasWhenPostgresConfigured(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")

	cfg := &Config{Postgres: &postgres.DBConn{}}

	finalize(cfg)

	if len(cfg.Postgres.Replicas) != 1 {
		t.Fatalf("expected one replica, got %d", len(cfg.Postgres.Replicas))
	}
	if cfg.Postgres.Replicas[0].Host != "replica-a" {
		t.Fatalf("replica host = %q, want %q", cfg.Postgres.Replicas[0].Host, "replica-a")
	}
}
