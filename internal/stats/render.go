package stats

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palettes fixes, cyclées sur le nombre réel de tranches : une catégorie
// de plus que de couleurs ne provoque jamais de dépassement.
var (
	PaletteTypes = []drawing.Color{
		drawing.ColorFromHex("ffd700"), // gold
		drawing.ColorFromHex("f08080"), // lightcoral
		drawing.ColorFromHex("87cefa"), // lightskyblue
		drawing.ColorFromHex("90ee90"), // lightgreen
	}
	PaletteModalites = []drawing.Color{
		drawing.ColorFromHex("ba55d3"),
		drawing.ColorFromHex("fa8072"),
		drawing.ColorFromHex("40e0d0"),
		drawing.ColorFromHex("ffdab9"),
		drawing.ColorFromHex("dda0dd"),
		drawing.ColorFromHex("f0e68c"),
		drawing.ColorFromHex("4682b4"),
		drawing.ColorFromHex("eee8aa"),
	}
	PaletteStatuses = []drawing.Color{
		drawing.ColorFromHex("ffd700"),
		drawing.ColorFromHex("f08080"),
		drawing.ColorFromHex("87cefa"),
	}

	colorBar     = drawing.ColorFromHex("87ceeb") // skyblue
	colorBarPerf = drawing.ColorFromHex("40e0d0") // turquoise
	colorEmpty   = drawing.ColorFromHex("d3d3d3")
)

func renderBarPNG(graph chart.BarChart) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPiePNG(graph chart.PieChart) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderMonthlyHistogram trace les 12 mois de l'année, seaux vides
// compris : une année sans contrat donne un graphique vide valide,
// jamais une erreur.
func RenderMonthlyHistogram(year int, buckets [12]int64) ([]byte, error) {
	var maxCount int64
	for _, n := range buckets {
		if n > maxCount {
			maxCount = n
		}
	}

	title := fmt.Sprintf("Contrats terminés en %d", year)
	if maxCount == 0 {
		title = fmt.Sprintf("Aucun contrat terminé en %d", year)
	}

	bars := make([]chart.Value, 0, 12)
	for i, n := range buckets {
		bars = append(bars, chart.Value{
			Label: MonthNames[i],
			Value: float64(n),
			Style: chart.Style{FillColor: colorBar, StrokeColor: colorBar},
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Bars:     bars,
		XAxis:    chart.Style{FontSize: 9},
		YAxis: chart.YAxis{
			Style:          chart.Shown(),
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
			ValueFormatter: chart.IntValueFormatter,
		},
	}
	return renderBarPNG(graph)
}

// RenderPie trace un camembert avec pourcentages dans les libellés.
// Les tranches à zéro sont omises ; sans aucune donnée, une tranche
// neutre unique est rendue.
func RenderPie(title string, buckets []Bucket, palette []drawing.Color) ([]byte, error) {
	total := Total(buckets)
	values := make([]chart.Value, 0, len(buckets))
	for i, b := range buckets {
		if b.Count == 0 {
			continue
		}
		color := palette[i%len(palette)]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", b.Label, 100*float64(b.Count)/float64(total)),
			Value: float64(b.Count),
			Style: chart.Style{FillColor: color, StrokeColor: chart.ColorWhite, StrokeWidth: 2},
		})
	}
	if len(values) == 0 {
		values = append(values, chart.Value{
			Label: "Aucune donnée",
			Value: 1,
			Style: chart.Style{FillColor: colorEmpty},
		})
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 800,
		Values: values,
	}
	return renderPiePNG(graph)
}

// RenderSupplierBars trace un histogramme par fournisseur, annoté du
// comptage dans le libellé. L'axe part de zéro pour ne pas déformer
// les proportions.
func RenderSupplierBars(buckets []Bucket) ([]byte, error) {
	var maxCount int64
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	bars := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%d)", b.Label, b.Count),
			Value: float64(b.Count),
			Style: chart.Style{FillColor: colorBarPerf, StrokeColor: colorBarPerf},
		})
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{
			Label: "Aucune donnée",
			Value: 0,
			Style: chart.Style{FillColor: colorEmpty},
		})
	}

	graph := chart.BarChart{
		Title:    "Fournisseurs",
		Width:    1000,
		Height:   600,
		BarWidth: 50,
		Bars:     bars,
		XAxis:    chart.Style{FontSize: 9},
		YAxis: chart.YAxis{
			Style:          chart.Shown(),
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
			ValueFormatter: chart.IntValueFormatter,
		},
	}
	return renderBarPNG(graph)
}
