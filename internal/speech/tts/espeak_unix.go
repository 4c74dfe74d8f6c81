//go:build unix

package tts

import "syscall"

// pauseProcess suspends the eSpeak process.
func (e *ESpeakEngine) pauseProcess() error {
	return e.cmd.Process.Signal(syscall.SIGSTOP)
}

// resumeProcess continues a suspended eSpeak process.
func (e *ESpeakEngine) resumeProcess() error {
	return e.cmd.Process.Signal(syscall.SIGCONT)
}
