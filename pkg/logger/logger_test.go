package logger

import (
	"context"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	log := Get()
	if log == nil {
		t.Fatal("logger is nil after initialization")
	}

	ctx := context.Background()
	log.Info(ctx, "info message", String("key", "value"))
	log.Warn(ctx, "warn message", Int("count", 2))
	log.Debug(ctx, "debug message", Float64("score", 92.5))
	log.Named("sub").Info(ctx, "named logger message")
}

func TestSetLevelString(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", ""} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("SetLevelString(%q) returned error: %v", level, err)
		}
	}
	if err := SetLevelString("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := SetLevelString("info"); err != nil {
		t.Errorf("restoring info level: %v", err)
	}
}
