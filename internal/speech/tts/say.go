package tts

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// SayEngine speaks through the macOS `say` command.
type SayEngine struct {
	config  Config
	cmd     *exec.Cmd
	playing bool
	mutex   sync.RWMutex
}

func newSayEngine(config Config) (*SayEngine, error) {
	if _, err := exec.LookPath("say"); err != nil {
		return nil, fmt.Errorf("say command not found: %w", err)
	}

	if config.Voice == "" || config.Voice == "default" {
		config.Voice = "Xander" // Dutch system voice
	}

	return &SayEngine{config: config}, nil
}

func (s *SayEngine) Speak(text string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.playing {
		return fmt.Errorf("already playing")
	}

	// say takes words per minute; its default sits around 175.
	rate := int(175 * s.config.Speed)
	args := []string{"-v", s.config.Voice, "-r", strconv.Itoa(rate), text}

	s.cmd = exec.Command("say", args...)
	s.playing = true

	go func() {
		defer func() {
			s.mutex.Lock()
			s.playing = false
			s.mutex.Unlock()
		}()

		if err := s.cmd.Run(); err != nil {
			if s.cmd.ProcessState != nil && s.cmd.ProcessState.Exited() {
				return
			}
			logrus.WithError(err).Warn("say playback failed")
		}
	}()

	return nil
}

func (s *SayEngine) Stop() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cmd != nil && s.cmd.Process != nil {
		if err := s.cmd.Process.Kill(); err != nil {
			return err
		}
	}
	s.playing = false
	return nil
}

// Pause is not supported by the say subprocess; the utterance keeps playing.
func (s *SayEngine) Pause() error {
	return fmt.Errorf("pause not supported by the say engine")
}

func (s *SayEngine) Resume() error {
	return fmt.Errorf("resume not supported by the say engine")
}

func (s *SayEngine) IsPlaying() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.playing
}

func (s *SayEngine) SetVoice(voice string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.config.Voice = voice
	return nil
}

func (s *SayEngine) SetSpeed(speed float64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if speed <= 0 || speed > 3.0 {
		return fmt.Errorf("speed must be between 0.1 and 3.0")
	}
	s.config.Speed = speed
	return nil
}

func (s *SayEngine) SetVolume(volume float64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if volume < 0 || volume > 1.0 {
		return fmt.Errorf("volume must be between 0 and 1.0")
	}
	s.config.Volume = volume
	return nil
}

func (s *SayEngine) GetAvailableVoices() ([]string, error) {
	output, err := exec.Command("say", "-v", "?").Output()
	if err != nil {
		return nil, err
	}

	var voices []string
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			voices = append(voices, fields[0])
		}
	}
	return voices, nil
}
