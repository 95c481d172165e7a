//go:build windows

package notify

import (
	"strings"
	"testing"
)

func TestNotifyCommandUsesNonModalToast(t *testing.T) {
	name, args := notifyCommand(true, "catr", "Token refreshed")
	if name != "powershell" {
		t.Fatalf("command = %q, want powershell", name)
	}
	script := strings.Join(args, " ")
	if !strings.Contains(script, "ToastNotificationManager") {
		t.Errorf("notify script does not use the toast API: %s", script)
	}
	if strings.Contains(script, "MessageBox") {
		t.Errorf("notify script opens a modal message box: %s", script)
	}
}

func TestQuestionCommandDeclineExitsNonzero(t *testing.T) {
	_, args, err := questionCommand("catr", "Log in now?")
	if err != nil {
		t.Fatalf("questionCommand: %v", err)
	}
	script := strings.Join(args, " ")
	if !strings.Contains(script, "exit 1") {
		t.Errorf("decline does not map to a nonzero exit: %s", script)
	}
}

func TestPsQuoteEscapesSingleQuotes(t *testing.T) {
	got := psQuote("it's done")
	if got != "'it''s done'" {
		t.Errorf("psQuote = %q", got)
	}
}
