package sampleavg

import "math"

// LinearToDisplay encodes a linear-light value with a 1/2.2 power curve and
// scales it to [0, maxValue]. Values at or above 1 saturate, NaN input (and
// negative input, whose power is NaN) yields InvalidChannel.
func LinearToDisplay(v float64, maxValue int) Channel {
	e := math.Pow(v, 1/displayGamma)
	if math.IsNaN(e) {
		return InvalidChannel
	}
	return Channel((float64(maxValue) + encodeSlack) * math.Min(1, e))
}

func encodePixel(p Pixel, maxValue int) [3]Channel {
	return [3]Channel{
		LinearToDisplay(p.R, maxValue),
		LinearToDisplay(p.G, maxValue),
		LinearToDisplay(p.B, maxValue),
	}
}
