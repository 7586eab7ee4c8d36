// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
)

// A Gradienter is a color scheme
// that returns a color
// for a value between 0 and 1.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

// Default is the default gradient of the blind package.
type Default struct{}

func (d Default) Gradient(v float64) color.Color {
	return blind.Gradient(clamp(v))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Scheme returns a color scheme by its name.
// Valid names are "incandescent", "iridescent",
// "rainbow", and "default".
func Scheme(name string) (Gradienter, error) {
	switch strings.ToLower(name) {
	case "incandescent":
		return Incandescent{}, nil
	case "iridescent":
		return Iridescent{}, nil
	case "rainbow":
		return RainbowPurpleToRed{}, nil
	case "default", "":
		return Default{}, nil
	}
	return nil, fmt.Errorf("unknown color scheme %q", name)
}

// Palette sets the colors of the categories of a trait,
// spreading the categories evenly
// along the color scheme.
func (m *Map) Palette(g Gradienter, trait string, values []string) {
	for i, v := range values {
		x := 0.5
		if len(values) > 1 {
			x = float64(i) / float64(len(values)-1)
		}
		m.Add(trait, v, Hex(g.Gradient(x)))
	}
}

// Hex returns the hexadecimal RGB code of a color
// (for example "#3F4FCC").
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}
