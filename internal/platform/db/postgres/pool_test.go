package postgres

import (
	"testing"
	"time"

	"github.com/ogurasousui/kintai/internal/platform/config"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(config.DatabaseConfig{
		Host:            "localhost",
		Port:            15432,
		User:            "kintai",
		Password:        "kintai",
		Name:            "kintai",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	})
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 || poolCfg.MinConns != 5 {
		t.Errorf("unexpected conn limits: max=%d min=%d", poolCfg.MaxConns, poolCfg.MinConns)
	}

	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}

	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}

	if poolCfg.ConnConfig.Database != "kintai" {
		t.Errorf("unexpected database: %s", poolCfg.ConnConfig.Database)
	}

	if poolCfg.AfterConnect == nil {
		t.Error("expected AfterConnect to register the decimal codec")
	}
}

func TestBuildPoolConfig_ZeroValuesKeepDefaults(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(config.DatabaseConfig{
		Host:     "localhost",
		Port:     15432,
		User:     "kintai",
		Password: "kintai",
		Name:     "kintai",
		SSLMode:  "disable",
	})
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns <= 0 {
		t.Errorf("expected pgxpool default MaxConns, got %d", poolCfg.MaxConns)
	}
}
