// Package notify fires desktop notifications from the background surface.
// Best-effort: no notifier tool means no notification, never an error.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Send shows a transient notification with a title and message.
func Send(title string, message string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		cmd = exec.Command("osascript", "-e", script)
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			return
		}
		cmd = exec.Command("notify-send", title, message)
	default:
		return
	}
	_ = cmd.Run()
}

// Func is the notification hook shape consumed by the message bus, so
// tests can observe outcomes without a desktop session.
type Func func(title string, message string)
