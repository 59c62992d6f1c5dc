package poline

import "math/rand/v2"

// RandomHSLPair returns two harmonious HSL colors: a random base hue paired
// with a hue offset by 60 to 240 degrees, a light color first and a dark
// one second. It is the seed used for default palettes.
func RandomHSLPair() []HSL {
	return hslPair(
		rand.Float64()*360,
		60+rand.Float64()*180,
		[2]float64{rand.Float64(), rand.Float64()},
		[2]float64{0.75 + rand.Float64()*0.2, 0.3 + rand.Float64()*0.2},
	)
}

func hslPair(startHue, hueOffset float64, saturations, lightnesses [2]float64) []HSL {
	return []HSL{
		{H: wrapHue(startHue), S: saturations[0], L: lightnesses[0]},
		{H: wrapHue(startHue + hueOffset), S: saturations[1], L: lightnesses[1]},
	}
}

// RandomHSLTriple returns three harmonious HSL colors: a random base hue and
// two further hues each offset by 60 to 240 degrees from the base, spanning
// light to dark.
func RandomHSLTriple() []HSL {
	return hslTriple(
		rand.Float64()*360,
		[2]float64{60 + rand.Float64()*180, 60 + rand.Float64()*180},
		[3]float64{rand.Float64(), rand.Float64(), rand.Float64()},
		[3]float64{0.75 + rand.Float64()*0.2, 0.45 + rand.Float64()*0.2, 0.2 + rand.Float64()*0.2},
	)
}

func hslTriple(startHue float64, hueOffsets [2]float64, saturations, lightnesses [3]float64) []HSL {
	return []HSL{
		{H: wrapHue(startHue), S: saturations[0], L: lightnesses[0]},
		{H: wrapHue(startHue + hueOffsets[0]), S: saturations[1], L: lightnesses[1]},
		{H: wrapHue(startHue + hueOffsets[1]), S: saturations[2], L: lightnesses[2]},
	}
}
