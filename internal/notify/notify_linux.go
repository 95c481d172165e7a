//go:build linux

// Where: internal/notify/notify_linux.go
// What: Linux notification and dialog commands.
// Why: notify-send and zenity are the common desktop facilities on Linux.
package notify

func notifyCommand(ok bool, title, body string) (string, []string) {
	icon := "dialog-information"
	urgency := "normal"
	if !ok {
		icon = "dialog-error"
		urgency = "critical"
	}
	return "notify-send", []string{"--icon", icon, "--urgency", urgency, title, body}
}

func questionCommand(title, body string) (string, []string, error) {
	return "zenity", []string{"--question", "--title", title, "--text", body}, nil
}
