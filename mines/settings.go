package mines

import (
	"fmt"
	"strings"
)

const (
	MinSide = 5
	MaxSide = 50
)

type Settings struct {
	Width  int `schema:"width,required"`
	Height int `schema:"height,required"`
	Mines  int `schema:"mines,required"`
}

func (s Settings) Unpack() (w, h, m int) {
	return s.Width, s.Height, s.Mines
}

func (s Settings) Area() int {
	return s.Width * s.Height
}

func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidSettings, s.Width, s.Height)
	}
	if s.Mines < 1 || s.Mines > s.Area()-1 {
		return fmt.Errorf(
			"%w: %d mines do not fit a %dx%d board",
			ErrInvalidSettings, s.Mines, s.Width, s.Height,
		)
	}
	return nil
}

// Clamp brings user supplied settings into the playable range:
// sides to [MinSide, MaxSide], mines to [1, w*h-1].
func (s Settings) Clamp() Settings {
	s.Width = clamp(s.Width, MinSide, MaxSide)
	s.Height = clamp(s.Height, MinSide, MaxSide)
	s.Mines = clamp(s.Mines, 1, max(1, s.Area()-1))
	return s
}

// String returns the compact WxH:M form, e.g. "9x9:10".
func (s Settings) String() string {
	return fmt.Sprintf("%dx%d:%d", s.Width, s.Height, s.Mines)
}

func ParseSettings(str string) (Settings, error) {
	var s Settings
	sstr := strings.NewReplacer("x", " ", "X", " ", ":", " ").Replace(str)
	n, err := fmt.Sscanf(sstr, "%d %d %d", &s.Width, &s.Height, &s.Mines)
	if n != 3 || err != nil {
		return Settings{}, fmt.Errorf(
			`%w: cannot parse "%s" (n = %d, err = %v)`,
			ErrInvalidSettings, str, n, err,
		)
	}
	return s, nil
}

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Expert       Difficulty = "expert"
	Custom       Difficulty = "custom"
)

var presets = map[Difficulty]Settings{
	Beginner:     {Width: 9, Height: 9, Mines: 10},
	Intermediate: {Width: 16, Height: 16, Mines: 40},
	Expert:       {Width: 30, Height: 16, Mines: 99},
	Custom:       {Width: 16, Height: 16, Mines: 40},
}

// Settings returns the preset board for d. Custom yields its default
// board; callers substitute their own settings for it.
func (d Difficulty) Settings() Settings {
	return presets[d]
}

func ParseDifficulty(str string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(str)))
	if _, ok := presets[d]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSettings, str)
	}
	return d, nil
}
