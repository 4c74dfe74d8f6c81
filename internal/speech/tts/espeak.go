package tts

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ESpeakEngine speaks through the eSpeak/eSpeak-NG command line tool.
type ESpeakEngine struct {
	config  Config
	cmd     *exec.Cmd
	playing bool
	paused  bool
	mutex   sync.RWMutex
}

func newESpeakEngine(config Config) (*ESpeakEngine, error) {
	espeakPath, err := findESpeakExecutable()
	if err != nil {
		return nil, fmt.Errorf("eSpeak not found: %w", err)
	}

	if config.Voice == "" || config.Voice == "default" {
		config.Voice = "nl"
	}

	engine := &ESpeakEngine{config: config}
	if err := engine.testInstallation(espeakPath); err != nil {
		return nil, fmt.Errorf("eSpeak test failed: %w", err)
	}
	return engine, nil
}

func findESpeakExecutable() (string, error) {
	candidates := []string{"espeak-ng", "espeak"}
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("eSpeak executable not found in PATH")
}

func (e *ESpeakEngine) testInstallation(espeakPath string) error {
	return exec.Command(espeakPath, "--version").Run()
}

func (e *ESpeakEngine) Speak(text string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.playing {
		return fmt.Errorf("already playing")
	}

	espeakPath, err := findESpeakExecutable()
	if err != nil {
		return err
	}

	args := []string{"-v", e.config.Voice}

	// eSpeak speaks words-per-minute; 175 is its normal rate.
	speed := int(175 * e.config.Speed)
	args = append(args, "-s", strconv.Itoa(speed))

	// Amplitude range is 0-200 with 100 as default.
	volume := int(100 * e.config.Volume)
	args = append(args, "-a", strconv.Itoa(volume))

	args = append(args, text)

	e.cmd = exec.Command(espeakPath, args...)
	e.playing = true
	e.paused = false

	go func() {
		defer func() {
			e.mutex.Lock()
			e.playing = false
			e.paused = false
			e.mutex.Unlock()
		}()

		if err := e.cmd.Run(); err != nil {
			if e.cmd.ProcessState != nil && e.cmd.ProcessState.Exited() {
				return
			}
			logrus.WithError(err).Warn("eSpeak playback failed")
		}
	}()

	return nil
}

func (e *ESpeakEngine) Stop() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.cmd != nil && e.cmd.Process != nil {
		if err := e.cmd.Process.Kill(); err != nil {
			return err
		}
	}

	e.playing = false
	e.paused = false
	return nil
}

func (e *ESpeakEngine) Pause() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.playing || e.paused {
		return nil
	}

	if e.cmd != nil && e.cmd.Process != nil {
		if err := e.pauseProcess(); err != nil {
			return err
		}
		e.paused = true
	}
	return nil
}

func (e *ESpeakEngine) Resume() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.paused {
		return nil
	}

	if e.cmd != nil && e.cmd.Process != nil {
		if err := e.resumeProcess(); err != nil {
			return err
		}
		e.paused = false
	}
	return nil
}

func (e *ESpeakEngine) SetVoice(voice string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	voices, err := e.availableVoices()
	if err != nil {
		return err
	}

	for _, v := range voices {
		if v == voice {
			e.config.Voice = voice
			return nil
		}
	}
	return fmt.Errorf("voice '%s' not available", voice)
}

func (e *ESpeakEngine) SetSpeed(speed float64) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if speed <= 0 || speed > 3.0 {
		return fmt.Errorf("speed must be between 0.1 and 3.0")
	}
	e.config.Speed = speed
	return nil
}

func (e *ESpeakEngine) SetVolume(volume float64) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if volume < 0 || volume > 2.0 {
		return fmt.Errorf("volume must be between 0 and 2.0")
	}
	e.config.Volume = volume
	return nil
}

func (e *ESpeakEngine) IsPlaying() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.playing && !e.paused
}

func (e *ESpeakEngine) IsPaused() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.paused
}

func (e *ESpeakEngine) GetAvailableVoices() ([]string, error) {
	return e.availableVoices()
}

func (e *ESpeakEngine) availableVoices() ([]string, error) {
	espeakPath, err := findESpeakExecutable()
	if err != nil {
		return nil, err
	}

	output, err := exec.Command(espeakPath, "--voices").Output()
	if err != nil {
		return nil, err
	}
	return parseESpeakVoices(string(output)), nil
}

func parseESpeakVoices(output string) []string {
	lines := strings.Split(output, "\n")
	voices := make([]string, 0)

	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}

		// Columns: Pty Language Age/Gender VoiceName File Other
		fields := strings.Fields(line)
		if len(fields) >= 4 {
			voices = append(voices, fields[3])
		}
	}
	return voices
}
