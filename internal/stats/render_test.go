package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func assertPNG(t *testing.T, b []byte) {
	t.Helper()
	require.Greater(t, len(b), len(pngMagic))
	assert.Equal(t, pngMagic, b[:len(pngMagic)])
}

func TestRenderMonthlyHistogram(t *testing.T) {
	var buckets [12]int64
	buckets[2] = 2 // mars
	buckets[8] = 1 // septembre

	png, err := RenderMonthlyHistogram(2024, buckets)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderMonthlyHistogramEmptyYear(t *testing.T) {
	// Une année sans contrat terminé rend un graphique vide, pas une erreur.
	png, err := RenderMonthlyHistogram(1999, [12]int64{})
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderPie(t *testing.T) {
	buckets := []Bucket{
		{Label: "Maintenance", Count: 3},
		{Label: "Travaux", Count: 0}, // tranche omise
		{Label: "Étude", Count: 1},
	}
	png, err := RenderPie("Types de contrats", buckets, PaletteTypes)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderPieEmpty(t *testing.T) {
	png, err := RenderPie("Types de contrats", nil, PaletteTypes)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderSupplierBars(t *testing.T) {
	buckets := []Bucket{
		{Label: "SOTUTECH", Count: 4},
		{Label: "TUNINFO", Count: 1},
	}
	png, err := RenderSupplierBars(buckets)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRenderSupplierBarsEmpty(t *testing.T) {
	png, err := RenderSupplierBars(nil)
	require.NoError(t, err)
	assertPNG(t, png)
}
