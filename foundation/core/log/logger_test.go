package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"}), buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Audit("always")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were written: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "always") {
		t.Errorf("expected warn and audit output, got %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithRequestID("req-1").Info("divided", Fields{"root": "1", "exact": true})

	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	tests := map[string]interface{}{
		"message":    "divided",
		"level":      "info",
		"logger":     "test",
		"request_id": "req-1",
		"root":       "1",
		"exact":      true,
	}
	for k, want := range tests {
		if m[k] != want {
			t.Errorf("%s = %v, want %v", k, m[k], want)
		}
	}
}

func TestTextFieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("msg", Fields{"b": 2, "a": 1, "c": 3})

	if !strings.Contains(buf.String(), "[a=1 b=2 c=3]") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	child := parent.WithField("component", "poly")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("parent picked up child field: %q", buf.String())
	}
	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "component=poly") {
		t.Errorf("child field missing: %q", buf.String())
	}
}

func TestLogErrorLevelFromSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"parse error is info", mdwerror.New("bad term").WithCode(mdwerror.CodeParse), "[INF]"},
		{"unclassified is warn", mdwerror.New("odd"), "[WRN]"},
		{"database is error", mdwerror.New("locked").WithCode(mdwerror.CodeDatabaseError), "[ERR]"},
		{"plain error", errors.New("plain"), "[ERR]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatText)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.level) {
				t.Errorf("want %s in %q", tt.level, buf.String())
			}
		})
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("divide").WithField("degree", 2)
	if timer.Stop() <= 0 {
		t.Error("Stop() should report a positive duration")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should be a no-op")
	}
	out := buf.String()
	if !strings.Contains(out, "divide completed") || !strings.Contains(out, "degree=2") {
		t.Errorf("unexpected timer output %q", out)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.StartTimer("solve").StopWithError(mdwerror.New("no solution").WithCode(mdwerror.CodeEquation))

	out := buf.String()
	if !strings.Contains(out, "no solution") || !strings.Contains(out, "operation=solve") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	var perr *ParseError
	if _, err := ParseFormat("xml"); !errors.As(err, &perr) || perr.Type != "format" {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}
