// Package pdf provides heat-load report PDF generation using maroto/v2.
// The generated document is the installer-facing result sheet: building
// summary, per-room breakdown and the generator sizing totals.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"heatload_backend/internal/heatload/calc"
	"heatload_backend/internal/heatload/transport"
)

// ── Colour palette ──────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 17, Green: 24, Blue: 39}    // near-black
	colorSecondary = &props.Color{Red: 107, Green: 114, Blue: 128} // gray-500
	colorAccent    = &props.Color{Red: 234, Green: 88, Blue: 12}   // orange-600
	colorTableHead = &props.Color{Red: 241, Green: 245, Blue: 249} // slate-100
	colorTableAlt  = &props.Color{Red: 249, Green: 250, Blue: 251} // gray-50
	colorBorder    = &props.Color{Red: 226, Green: 232, Blue: 240} // slate-200
)

var numberPrinter = message.NewPrinter(language.German)

// ReportGenerator renders heat-load reports as PDF documents.
type ReportGenerator struct{}

// NewReportGenerator creates a heat-load report PDF generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate creates the PDF document for a stored report.
func (g *ReportGenerator) Generate(report transport.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(buildFooter(report)); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	m.AddRows(buildHeader(report)...)
	m.AddRows(row.New(1).WithStyle(&props.Cell{
		BorderType:  border.Bottom,
		BorderColor: colorBorder,
	}))
	m.AddRows(row.New(6))

	m.AddRows(buildBuildingBlock(report)...)
	m.AddRows(row.New(6))

	m.AddRows(buildRoomTable(report)...)
	m.AddRows(row.New(4))

	m.AddRows(buildTotalsBlock(report)...)

	m.AddRows(row.New(8))
	m.AddRows(buildDisclaimer()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// ── Header ──────────────────────────────────────────────────────────────

func buildHeader(report transport.ReportResponse) []core.Row {
	name := report.ProjectName
	if name == "" {
		name = report.QuoteID
	}

	return []core.Row{
		row.New(20).Add(
			col.New(6).Add(
				text.New(name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Color: colorPrimary,
					Top:   4,
				}),
			),
			col.New(6).Add(
				text.New("HEIZLASTBERECHNUNG", props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: colorAccent,
				}),
				text.New("Angebot "+report.QuoteID, props.Text{
					Size:  10,
					Align: align.Right,
					Color: colorSecondary,
					Top:   11,
				}),
			),
		),
	}
}

// ── Building block ──────────────────────────────────────────────────────

func buildBuildingBlock(report transport.ReportResponse) []core.Row {
	results := report.Results
	dateStr := report.UpdatedAt.Format("02.01.2006")

	bivalence := ""
	if results.BivalenceApplied {
		bivalence = " (Bivalenzpunkt)"
	}

	return []core.Row{
		row.New(5).Add(
			col.New(12).Add(text.New("GEBÄUDE", props.Text{Size: 7, Style: fontstyle.Bold, Color: colorAccent})),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(
				"Auslegungstemperatur außen: "+formatNumber(results.DesignOutdoorTempC)+" °C"+bivalence,
				props.Text{Size: 8, Color: colorSecondary},
			)),
			col.New(6).Add(text.New("Stand: "+dateStr, props.Text{Size: 8, Color: colorSecondary, Align: align.Right})),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(
				"Beheizte Fläche: "+formatNumber(results.HeatedAreaM2)+" m²",
				props.Text{Size: 8, Color: colorSecondary},
			)),
			col.New(6).Add(text.New(
				"Spezifische Heizlast: "+formatNumber(results.SpecificLoadWPerM2)+" W/m²",
				props.Text{Size: 8, Color: colorSecondary, Align: align.Right},
			)),
		),
	}
}

// ── Room table ──────────────────────────────────────────────────────────

func buildRoomTable(report transport.ReportResponse) []core.Row {
	rows := []core.Row{
		row.New(7).Add(
			col.New(12).Add(text.New("RÄUME", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Color: colorAccent,
			})),
		),
	}

	headerStyle := props.Text{Size: 7.5, Style: fontstyle.Bold, Color: colorPrimary, Top: 1.5}
	headerStyleRight := props.Text{Size: 7.5, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right, Top: 1.5}

	rows = append(rows, row.New(7).Add(
		col.New(3).Add(text.New("Raum", headerStyle)),
		col.New(1).Add(text.New("m²", headerStyleRight)),
		col.New(2).Add(text.New("Transmission", headerStyleRight)),
		col.New(2).Add(text.New("Lüftung", headerStyleRight)),
		col.New(2).Add(text.New("Wärmebrücken", headerStyleRight)),
		col.New(2).Add(text.New("Gesamt", headerStyleRight)),
	).WithStyle(&props.Cell{
		BackgroundColor: colorTableHead,
		BorderType:      border.Bottom,
		BorderColor:     colorBorder,
	}))

	for i, room := range report.Results.Summary {
		rows = append(rows, buildRoomRow(room, i))
	}

	return rows
}

func buildRoomRow(room calc.RoomSummary, idx int) core.Row {
	normalStyle := props.Text{Size: 8, Color: colorPrimary, Top: 1}
	rightStyle := props.Text{Size: 8, Color: colorPrimary, Align: align.Right, Top: 1}

	r := row.New(7).Add(
		col.New(3).Add(text.New(room.RoomName, normalStyle)),
		col.New(1).Add(text.New(formatNumber(room.AreaM2), rightStyle)),
		col.New(2).Add(text.New(formatKW(room.TransmissionKW), rightStyle)),
		col.New(2).Add(text.New(formatKW(room.VentilationKW), rightStyle)),
		col.New(2).Add(text.New(formatKW(room.ThermalBridgeKW), rightStyle)),
		col.New(2).Add(text.New(formatKW(room.TotalKW), rightStyle)),
	)

	if idx%2 == 0 {
		r.WithStyle(&props.Cell{BackgroundColor: colorTableAlt})
	}

	return r
}

// ── Totals block ────────────────────────────────────────────────────────

func buildTotalsBlock(report transport.ReportResponse) []core.Row {
	results := report.Results

	labelStyle := props.Text{Size: 9, Color: colorSecondary, Align: align.Right}
	valueStyle := props.Text{Size: 9, Color: colorPrimary, Align: align.Right}

	rows := []core.Row{
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorBorder,
		}),
		row.New(3),
		row.New(6).Add(
			col.New(9).Add(text.New("Heizlast Gebäude", labelStyle)),
			col.New(3).Add(text.New(formatKW(results.HeatingLoadKW), valueStyle)),
		),
	}

	if results.DHWAllowanceKW > 0 {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New("Warmwasser-Zuschlag", labelStyle)),
			col.New(3).Add(text.New(formatKW(results.DHWAllowanceKW), valueStyle)),
		))
	}

	rows = append(rows,
		row.New(2),
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorBorder,
		}),
		row.New(10).Add(
			col.New(9).Add(text.New("ERFORDERLICHE LEISTUNG", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: colorPrimary,
				Align: align.Right,
				Top:   2,
			})),
			col.New(3).Add(text.New(formatKW(results.TotalKW), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: colorPrimary,
				Align: align.Right,
				Top:   2,
			})),
		).WithStyle(&props.Cell{
			BackgroundColor: colorTableHead,
			BorderType:      border.Bottom,
			BorderColor:     colorBorder,
		}),
	)

	return rows
}

// ── Disclaimer ──────────────────────────────────────────────────────────

func buildDisclaimer() []core.Row {
	return []core.Row{
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorBorder,
		}),
		row.New(3),
		row.New(5).Add(
			col.New(12).Add(text.New("HINWEISE", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Color: colorAccent,
			})),
		),
		row.New(4).Add(
			col.New(12).Add(text.New(
				"1.  Überschlägige Heizlastermittlung in Anlehnung an DIN EN 12831 zur Dimensionierung des Wärmeerzeugers.",
				props.Text{Size: 7, Color: colorSecondary},
			)),
		),
		row.New(4).Add(
			col.New(12).Add(text.New(
				"2.  Die Berechnung ersetzt keine raumweise Heizlastberechnung nach Norm und keinen Energieausweis.",
				props.Text{Size: 7, Color: colorSecondary},
			)),
		),
		row.New(4).Add(
			col.New(12).Add(text.New(
				"3.  Angenommene U-Werte basieren, soweit nicht eingegeben, auf Baualtersklasse und Dämmstandard.",
				props.Text{Size: 7, Color: colorSecondary},
			)),
		),
	}
}

// ── Registered footer (repeats on every page) ───────────────────────────

func buildFooter(report transport.ReportResponse) core.Row {
	footerText := "Heizlastbericht  ·  Angebot " + report.QuoteID

	return row.New(10).Add(
		col.New(12).Add(
			text.New(footerText, props.Text{
				Size:  6.5,
				Color: colorSecondary,
				Align: align.Center,
				Top:   4,
			}),
		),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: colorBorder,
	})
}

// ── Helpers ─────────────────────────────────────────────────────────────

func formatNumber(v float64) string {
	return numberPrinter.Sprintf("%.1f", v)
}

func formatKW(v float64) string {
	return numberPrinter.Sprintf("%.2f kW", v)
}
