package imessage

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Sender delivers messages through Messages.app by invoking an AppleScript
// bridge with osascript.
type Sender struct {
	scriptPath string

	// runCommand is swapped out in tests
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// New ...
func New(scriptPath string) *Sender {
	return &Sender{
		scriptPath: scriptPath,
		runCommand: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

// Send runs `osascript <script> <phone> <text>`. A non-zero exit is
// returned as an error with the script's output attached.
func (s *Sender) Send(ctx context.Context, phoneNumber string, text string) error {
	output, err := s.runCommand(ctx, "osascript", s.scriptPath, phoneNumber, text)
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
