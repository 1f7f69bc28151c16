package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestHandleCrash(t *testing.T) {
	var out bytes.Buffer
	var code int
	cleaned := false

	prevOut, prevExit := crashOut, crashExit
	crashOut = &out
	crashExit = func(c int) { code = c }
	SetCrashCleanup(func() { cleaned = true })
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		SetCrashCleanup(nil)
	})

	HandleCrash(nil)
	if cleaned || out.Len() != 0 {
		t.Fatal("nil panic value should be ignored")
	}

	HandleCrash("boom")
	if !cleaned {
		t.Error("cleanup should run before the report")
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("unexpected report: %q", out.String())
	}
}

func TestGo(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}
