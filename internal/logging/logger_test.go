package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		debug     bool
		wantDebug bool
	}{
		{debug: true, wantDebug: true},
		{debug: false, wantDebug: false},
	}
	for _, tc := range testCases {
		logger, err := New(tc.debug)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", tc.debug, err)
		}
		if got := logger.Core().Enabled(zapcore.DebugLevel); got != tc.wantDebug {
			t.Errorf("New(%v) debug enabled = %v, want %v", tc.debug, got, tc.wantDebug)
		}
	}
}
