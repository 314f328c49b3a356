package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", &buf)

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered lines:\n%s", out)
	}
	for _, want := range []string{"[WARN ] logger_test.go:", "shown 3", "[ERROR]", "shown 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	l.SetLevel("debug")
	l.Debugf("now visible")
	if !strings.Contains(buf.String(), "[DEBUG]") {
		t.Errorf("debug line missing after SetLevel: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"DEBUG": DEBUG, "info": INFO, "warning": WARN, "error": ERROR, "bogus": INFO} {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Infof("dropped")
	l.SetLevel("debug")
}
