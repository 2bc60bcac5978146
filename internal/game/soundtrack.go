package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
)

const (
	levelWindow    = 2048
	levelSmoothing = 0.6
)

var errUnsupportedFormat = errors.New("unsupported file type")

// soundtrack plays an optional looping ambient track and measures how loud
// it currently is.
type soundtrack struct {
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	tap         *visualTap

	baseVolume float64
	muted      bool
	paused     bool
	initDone   bool

	// smoothed loudness in [0, 1]
	level float64
}

func newSoundtrack(cfg config.SoundtrackConfig) *soundtrack {
	return &soundtrack{
		baseVolume: cfg.Volume,
		muted:      cfg.Muted,
	}
}

func (s *soundtrack) loaded() bool {
	return s.streamer != nil
}

// chooseFile asks the user for a track. A cancelled dialog returns "" and no error.
func (s *soundtrack) chooseFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open file dialog: %w", err)
	}
	return filename, nil
}

func decodeTrack(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}
}

// load replaces the current track with the one at path and starts it looping.
func (s *soundtrack) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open soundtrack: %w", err)
	}

	streamer, format, err := decodeTrack(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to decode soundtrack: %w", err)
	}

	// Prepare audio chain: streamer -> loop -> tap -> ctrl -> volume
	t := newVisualTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: s.paused}
	vol := &effects.Volume{Streamer: ctrl, Base: 2, Volume: s.baseVolume, Silent: s.muted}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !s.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		s.initDone = true
	case s.format.SampleRate != format.SampleRate:
		// Re-init when sample rate changes
		s.stop()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
	default:
		s.stop()
	}

	s.currentFile = f
	s.streamer = streamer
	s.format = format
	s.ctrl = ctrl
	s.volume = vol
	s.tap = t

	speaker.Play(vol)
	slog.Info("soundtrack playing", "path", path, "sampleRate", int(format.SampleRate), "length", s.duration())
	return nil
}

// stop silences the speaker and releases the current track.
func (s *soundtrack) stop() {
	if !s.initDone {
		return
	}
	speaker.Clear()
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.currentFile != nil {
		_ = s.currentFile.Close()
		s.currentFile = nil
	}
	s.ctrl, s.volume, s.tap = nil, nil, nil
	s.level = 0
}

func (s *soundtrack) setPaused(paused bool) {
	s.paused = paused
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

func (s *soundtrack) toggleMute() {
	s.muted = !s.muted
	if s.volume == nil {
		return
	}
	speaker.Lock()
	s.volume.Silent = s.muted
	speaker.Unlock()
}

// update refreshes the smoothed loudness; called once per tick.
func (s *soundtrack) update() {
	if s.tap == nil || s.paused {
		s.level *= levelSmoothing
		return
	}
	s.level = levelSmoothing*s.level + (1-levelSmoothing)*s.tap.level(levelWindow)
}

// position and duration within the looping track.
func (s *soundtrack) position() time.Duration {
	if s.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := s.streamer.Position()
	speaker.Unlock()
	return s.format.SampleRate.D(pos)
}

func (s *soundtrack) duration() time.Duration {
	if s.streamer == nil {
		return 0
	}
	return s.format.SampleRate.D(s.streamer.Len())
}
