//go:build windows

package tts

import "fmt"

// Windows has no SIGSTOP/SIGCONT equivalent, so pause terminates the
// utterance instead.
func (e *ESpeakEngine) pauseProcess() error {
	if e.cmd.Process != nil {
		return e.cmd.Process.Kill()
	}
	return fmt.Errorf("no process to pause")
}

func (e *ESpeakEngine) resumeProcess() error {
	return fmt.Errorf("resume not supported on Windows, utterance was terminated")
}
