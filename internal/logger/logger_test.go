package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  zapcore.DebugLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidateLevel(t *testing.T) {
	for _, ok := range []string{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		if err := ValidateLevel(ok); err != nil {
			t.Fatalf("ValidateLevel(%q): %v", ok, err)
		}
	}
	if err := ValidateLevel("INFO"); err == nil {
		t.Fatalf("expected error for upper-case level")
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Infow("event", "k", "v")
	l.Errorw("event", "err", "boom")
}
