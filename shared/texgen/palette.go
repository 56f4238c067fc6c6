package texgen

import (
	"image/color"
	"strings"
)

// Paleta usada pelas salas e props (mesmos valores das cores nomeadas da Raylib).
var (
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	LightGray = color.RGBA{200, 200, 200, 255}
	Gray      = color.RGBA{130, 130, 130, 255}
	DarkGray  = color.RGBA{80, 80, 80, 255}
	Brown     = color.RGBA{127, 106, 79, 255}
	DarkBrown = color.RGBA{76, 63, 47, 255}
	Beige     = color.RGBA{211, 176, 131, 255}
	Gold      = color.RGBA{255, 203, 0, 255}
	Blue      = color.RGBA{0, 121, 241, 255}
	DarkBlue  = color.RGBA{0, 82, 172, 255}
	SkyBlue   = color.RGBA{102, 191, 255, 255}
	Green     = color.RGBA{0, 228, 48, 255}
	DarkGreen = color.RGBA{0, 117, 44, 255}
	Red       = color.RGBA{230, 41, 55, 255}
	Orange    = color.RGBA{255, 161, 0, 255}
	Purple    = color.RGBA{200, 122, 255, 255}
)

// Brightness multiplica os canais RGB por factor, saturando em [0, 255].
func Brightness(c color.RGBA, factor float32) color.RGBA {
	return color.RGBA{
		R: channel(float32(c.R) * factor),
		G: channel(float32(c.G) * factor),
		B: channel(float32(c.B) * factor),
		A: c.A,
	}
}

// LerpColor interpola linearmente entre a e b (t limitado a [0, 1]).
func LerpColor(a, b color.RGBA, t float32) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return channel(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func channel(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

var named = map[string]color.RGBA{
	"white": White, "black": Black, "lightgray": LightGray, "gray": Gray,
	"darkgray": DarkGray, "brown": Brown, "darkbrown": DarkBrown, "beige": Beige,
	"gold": Gold, "blue": Blue, "darkblue": DarkBlue, "skyblue": SkyBlue,
	"green": Green, "darkgreen": DarkGreen, "red": Red, "orange": Orange, "purple": Purple,
}

// ColorByName resolve uma cor da paleta pelo nome (sem distinção de maiúsculas).
func ColorByName(name string) (color.RGBA, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
