package game

import (
	"encoding/hex"

	"github.com/go-gl/mathgl/mgl32"
)

// Avatar tint palette (Tango scheme): seven hues, three shades each, from
// bright to dark. The shade darkens as the avatar's health drops.
var paletteHex = [7][3]string{
	{"fce94f", "edd400", "c4a000"}, // butter
	{"fcaf3e", "f57900", "ce5c00"}, // orange
	{"e9b96e", "c17d11", "8f5902"}, // chocolate
	{"8ae234", "73d216", "4e9a06"}, // chameleon
	{"729fcf", "3465a4", "204a87"}, // sky blue
	{"ad7fa8", "75507b", "5c3566"}, // plum
	{"ef2929", "cc0000", "a40000"}, // scarlet red
}

// PaletteSize is the number of selectable avatar hues.
const PaletteSize = len(paletteHex)

var palette [PaletteSize][3]mgl32.Vec3

func init() {
	for i, shades := range paletteHex {
		for j, s := range shades {
			b, err := hex.DecodeString(s)
			if err != nil {
				panic("palette: bad hex " + s)
			}
			palette[i][j] = mgl32.Vec3{
				float32(b[0]) / 255,
				float32(b[1]) / 255,
				float32(b[2]) / 255,
			}
		}
	}
}

// Tint returns the RGB tint for a palette hue at the given brightness in
// [0,1]. Brightness selects the shade: the top third of the range maps to the
// brightest shade, the bottom third to the darkest.
func Tint(hue int, brightness float32) mgl32.Vec3 {
	hue = ((hue % PaletteSize) + PaletteSize) % PaletteSize
	shade := 2
	switch {
	case brightness > 2.0/3:
		shade = 0
	case brightness > 1.0/3:
		shade = 1
	}
	return palette[hue][shade]
}
