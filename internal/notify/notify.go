// Package notify shows desktop notifications through notify-send.
package notify

import (
	"fmt"
	"os/exec"
)

// Send shows a desktop notification. Callers treat notifications as
// best effort and usually ignore the error.
func Send(title, message string) error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return fmt.Errorf("notify-send not found")
	}
	return exec.Command("notify-send", title, message).Run()
}
