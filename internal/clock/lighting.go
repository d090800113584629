// Day/night lighting queries. The overlay keeps a fixed night RGB and
// interpolates only its alpha across the phase boundaries; blending the
// RGB channels directly produces muddy intermediate hues on the palette
// the renderer uses, so only alpha may vary.
package clock

import "image/color"

// Lighting phase boundaries, military time.
const (
	phaseDawnEnd     = 700  // Dawn fade-in completes
	phaseSunsetStart = 1700 // Full light until here
	phaseDuskStart   = 2000
	phaseNightStart  = 2200
)

// Overlay alpha levels at the phase boundaries.
const (
	alphaSunset = 0.45
	alphaNight  = 0.85
)

// nightRGB is the fixed overlay color; only its alpha is interpolated.
var nightRGB = color.RGBA{R: 10, G: 10, B: 40}

// AmbientColor returns the base light color. It is constant white; all
// darkening is applied through the night overlay so RGB never shifts.
func (c *Clock) AmbientColor() color.RGBA {
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// NightOverlayAlpha returns the overlay opacity in [0,1] for the current
// time of day, piecewise-linear across the lighting phases.
func (c *Clock) NightOverlayAlpha() float64 {
	t := c.TimeOfDay
	switch {
	case t < DayStart:
		return alphaNight
	case t < phaseDawnEnd:
		// Dawn: fade the night overlay out.
		return alphaNight * (1 - progress(t, DayStart, phaseDawnEnd))
	case t < phaseSunsetStart:
		return 0
	case t < phaseDuskStart:
		return alphaSunset * progress(t, phaseSunsetStart, phaseDuskStart)
	case t < phaseNightStart:
		return alphaSunset + (alphaNight-alphaSunset)*progress(t, phaseDuskStart, phaseNightStart)
	default:
		return alphaNight
	}
}

// NightOverlayColor returns the overlay color with alpha scaled for the
// current time of day, ready for straight-alpha compositing.
func (c *Clock) NightOverlayColor() color.RGBA {
	out := nightRGB
	out.A = uint8(c.NightOverlayAlpha() * 255)
	return out
}

// progress maps t within [from,to] to [0,1]. Times are military format;
// convert to minutes so the xx59→xx+1:00 gap does not distort the ramp.
func progress(t, from, to int) float64 {
	p := float64(minutesOf(t)-minutesOf(from)) / float64(minutesOf(to)-minutesOf(from))
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func minutesOf(military int) int {
	return (military/100)*60 + military%100
}
