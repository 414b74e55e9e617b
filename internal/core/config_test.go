package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigTiming(t *testing.T) {
	tests := []struct {
		rate         int
		wantDt       float64
		wantInterval time.Duration
	}{
		{60, 1.0 / 60, time.Second / 60},
		{30, 1.0 / 30, time.Second / 30},
		{0, 1.0 / 60, time.Second / 60},
		{-5, 1.0 / 60, time.Second / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.Dt(); got != tc.wantDt {
			t.Errorf("Dt() at rate %d = %v, expected %v", tc.rate, got, tc.wantDt)
		}
		if got := cfg.TickInterval(); got != tc.wantInterval {
			t.Errorf("TickInterval() at rate %d = %v, expected %v", tc.rate, got, tc.wantInterval)
		}
	}
}
