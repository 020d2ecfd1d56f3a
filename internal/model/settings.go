package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Settings are user preferences for the display and speech surfaces.
type Settings struct {
	Theme          string  `json:"theme"`
	FontSize       string  `json:"fontSize"`
	AutoPlay       bool    `json:"autoPlay"`
	AutoSpeak      bool    `json:"autoSpeak"`
	AnimationSpeed int     `json:"animationSpeed"`
	VoiceRate      float64 `json:"voiceRate"`
	VoicePitch     float64 `json:"voicePitch"`
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		Theme:          "light",
		FontSize:       "medium",
		AutoPlay:       true,
		AutoSpeak:      true,
		AnimationSpeed: 5,
		VoiceRate:      1,
		VoicePitch:     1,
	}
}

// ValidThemes are the allowed theme values.
var ValidThemes = map[string]bool{
	"light": true,
	"dark":  true,
	"auto":  true,
}

// ValidFontSizes are the allowed font sizes.
var ValidFontSizes = map[string]bool{
	"small":  true,
	"medium": true,
	"large":  true,
}

// Validate checks every field is within range.
func (s Settings) Validate() error {
	if !ValidThemes[s.Theme] {
		return fmt.Errorf("%w: theme %q (valid: light, dark, auto)", ErrInvalidArgument, s.Theme)
	}
	if !ValidFontSizes[s.FontSize] {
		return fmt.Errorf("%w: font size %q (valid: small, medium, large)", ErrInvalidArgument, s.FontSize)
	}
	if s.AnimationSpeed < 1 || s.AnimationSpeed > 10 {
		return fmt.Errorf("%w: animation speed %d out of range [1, 10]", ErrInvalidArgument, s.AnimationSpeed)
	}
	if s.VoiceRate < 0.5 || s.VoiceRate > 2 {
		return fmt.Errorf("%w: voice rate %g out of range [0.5, 2]", ErrInvalidArgument, s.VoiceRate)
	}
	if s.VoicePitch < 0.5 || s.VoicePitch > 2 {
		return fmt.Errorf("%w: voice pitch %g out of range [0.5, 2]", ErrInvalidArgument, s.VoicePitch)
	}
	return nil
}

// Set assigns one field by its JSON name and validates the result. s is left
// unchanged on error.
func (s *Settings) Set(key, value string) error {
	next := *s
	value = strings.TrimSpace(value)

	var err error
	switch key {
	case "theme":
		next.Theme = strings.ToLower(value)
	case "fontSize":
		next.FontSize = strings.ToLower(value)
	case "autoPlay":
		next.AutoPlay, err = strconv.ParseBool(value)
	case "autoSpeak":
		next.AutoSpeak, err = strconv.ParseBool(value)
	case "animationSpeed":
		next.AnimationSpeed, err = strconv.Atoi(value)
	case "voiceRate":
		next.VoiceRate, err = strconv.ParseFloat(value, 64)
	case "voicePitch":
		next.VoicePitch, err = strconv.ParseFloat(value, 64)
	default:
		return fmt.Errorf("%w: unknown setting %q", ErrInvalidArgument, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}
