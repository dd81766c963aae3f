package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoadside_Size(t *testing.T) {
	img := NewGenerator(64, 128).Roadside(1)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestRoadside_SameSeedSameTile(t *testing.T) {
	g := NewGenerator(80, 80)
	assert.Equal(t, g.Roadside(42).Pix, g.Roadside(42).Pix)
	assert.NotEqual(t, g.Roadside(42).Pix, g.Roadside(43).Pix)
}

func TestRoadside_Opaque(t *testing.T) {
	img := NewGenerator(50, 50).Roadside(7)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
}
