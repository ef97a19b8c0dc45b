package config

import "testing"

func TestConstants(t *testing.T) {
	if Heartbeat <= 0 {
		t.Fatalf("Heartbeat must be positive")
	}
	if MicroBreakLimit <= 0 || RestBreakLimit <= 0 || DailyLimitSeconds <= 0 {
		t.Fatalf("timer limits must be positive")
	}
	if MicroBreakLimit >= RestBreakLimit {
		t.Fatalf("micro-break should be shorter than rest break")
	}
	if AppName == "" || DBFileName == "" {
		t.Fatalf("application names should not be empty")
	}
	if len(SpeakVolumes) == 0 || SpeakVolumes[0] != DefaultSpeakVolume {
		t.Fatalf("default speak volume should be the first step")
	}
	if SpeakVolumes[len(SpeakVolumes)-1] != 0 {
		t.Fatalf("last speak volume should be muted")
	}
}
