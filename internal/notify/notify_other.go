//go:build !linux && !darwin && !windows

// Where: internal/notify/notify_other.go
// What: Stub commands for platforms without a known desktop facility.
package notify

func notifyCommand(bool, string, string) (string, []string) {
	return "", nil
}

func questionCommand(string, string) (string, []string, error) {
	return "", nil, errNoDialog
}
