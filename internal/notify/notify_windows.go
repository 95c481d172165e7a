//go:build windows

// Where: internal/notify/notify_windows.go
// What: Windows notification and dialog commands.
// Why: powershell reaches both the toast API and message boxes without extra installs.
package notify

import (
	"fmt"
	"strings"
)

// psQuote renders s as a single-quoted PowerShell string literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// notifyCommand uses the WinRT toast API. A toast is non-modal and the
// powershell process returns as soon as it is shown, so the delivery
// timeout never truncates what the user sees.
func notifyCommand(_ bool, title, body string) (string, []string) {
	script := fmt.Sprintf(
		"$null = [Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=WindowsRuntime];"+
			"$xml = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02);"+
			"$texts = $xml.GetElementsByTagName('text');"+
			"$null = $texts.Item(0).AppendChild($xml.CreateTextNode(%s));"+
			"$null = $texts.Item(1).AppendChild($xml.CreateTextNode(%s));"+
			"[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('catr').Show([Windows.UI.Notifications.ToastNotification]::new($xml))",
		psQuote(title), psQuote(body))
	return "powershell", []string{"-NoProfile", "-Command", script}
}

// questionCommand is deliberately modal: a question waits for the user.
func questionCommand(title, body string) (string, []string, error) {
	script := fmt.Sprintf(
		"[void][System.Reflection.Assembly]::LoadWithPartialName('System.Windows.Forms');"+
			"$r=[System.Windows.Forms.MessageBox]::Show(%s, %s, 'YesNo');"+
			"if ($r -ne 'Yes') { exit 1 }",
		psQuote(body), psQuote(title))
	return "powershell", []string{"-NoProfile", "-Command", script}, nil
}
