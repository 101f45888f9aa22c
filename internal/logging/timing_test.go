package logging

import (
	"path/filepath"
	"testing"
	"time"
)

func TestTime(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	err := Init(Config{
		FilePath:   logFile,
		Level:      ParseLevel("debug"),
		Format:     FormatText,
		MaxSizeMB:  10,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	executed := false
	Time("test operation", func() {
		time.Sleep(10 * time.Millisecond)
		executed = true
	})

	if !executed {
		t.Error("Time() did not execute the function")
	}
}

func TestTimeWithNoLogging(t *testing.T) {
	if err := Init(Config{FilePath: ""}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	executed := false
	Time("test operation", func() {
		executed = true
	})

	if !executed {
		t.Error("Time() did not execute the function when logging is disabled")
	}
}

func TestStartEnd(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	err := Init(Config{
		FilePath:   logFile,
		Level:      ParseLevel("debug"),
		Format:     FormatText,
		MaxSizeMB:  10,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	tc := Start("manual operation")
	time.Sleep(5 * time.Millisecond)
	End(tc)

	tc = Start("counted operation")
	EndWithCount(tc, 42)
}
