package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"heatload_backend/internal/heatload/transport"
	"heatload_backend/platform/httpkit"
)

// Exports serve the stored report in the format installers hand to customers
// or import into their own tooling. The CSV is aimed at German spreadsheet
// setups: semicolon separated, UTF-8 BOM so Excel detects the encoding, and
// comma decimals.

var germanPrinter = message.NewPrinter(language.German)

// ExportCSV streams the report as a semicolon-separated CSV file.
// GET /api/v1/heat-load/:id/export/csv
func (h *Handler) ExportCSV(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	data, err := buildReportCSV(report)
	if httpkit.HandleError(c, err) {
		return
	}

	setAttachmentHeaders(c, report, "csv", "text/csv; charset=utf-8")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportJSON streams the report as a JSON attachment.
// GET /api/v1/heat-load/:id/export/json
func (h *Handler) ExportJSON(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if httpkit.HandleError(c, err) {
		return
	}

	setAttachmentHeaders(c, report, "json", "application/json")
	c.Data(http.StatusOK, "application/json", data)
}

// ExportPDF streams the report as a PDF document.
// GET /api/v1/heat-load/:id/export/pdf
func (h *Handler) ExportPDF(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	data, err := h.pdf.Generate(report)
	if httpkit.HandleError(c, err) {
		return
	}

	setAttachmentHeaders(c, report, "pdf", "application/pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) loadReport(c *gin.Context) (transport.ReportResponse, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return transport.ReportResponse{}, false
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return transport.ReportResponse{}, false
	}

	report, err := h.svc.GetByID(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return transport.ReportResponse{}, false
	}
	return report, true
}

func setAttachmentHeaders(c *gin.Context, report transport.ReportResponse, ext, contentType string) {
	name := report.ProjectName
	if name == "" {
		name = report.QuoteID
	}
	fileName := fmt.Sprintf("Heizlast-%s.%s", name, ext)
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
}

// buildReportCSV renders the per-room summary and the building totals.
func buildReportCSV(report transport.ReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	// UTF-8 BOM so Excel opens the file with the right encoding.
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	rows := [][]string{
		{"Projekt", report.ProjectName},
		{"Angebot", report.QuoteID},
		{"Auslegungstemperatur außen (°C)", germanNumber(report.Results.DesignOutdoorTempC)},
		{},
		{"Raum", "Fläche (m²)", "Transmission (kW)", "Lüftung (kW)", "Wärmebrücken (kW)", "Zuschlag (kW)", "Gesamt (kW)"},
	}
	for _, room := range report.Results.Summary {
		rows = append(rows, []string{
			room.RoomName,
			germanNumber(room.AreaM2),
			germanNumber(room.TransmissionKW),
			germanNumber(room.VentilationKW),
			germanNumber(room.ThermalBridgeKW),
			germanNumber(room.SafetyMarginKW),
			germanNumber(room.TotalKW),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Heizlast Gebäude (kW)", germanNumber(report.Results.HeatingLoadKW)},
		[]string{"Warmwasser-Zuschlag (kW)", germanNumber(report.Results.DHWAllowanceKW)},
		[]string{"Gesamtleistung (kW)", germanNumber(report.Results.TotalKW)},
		[]string{"Beheizte Fläche (m²)", germanNumber(report.Results.HeatedAreaM2)},
		[]string{"Spezifische Heizlast (W/m²)", germanNumber(report.Results.SpecificLoadWPerM2)},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write report csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush report csv: %w", err)
	}

	return buf.Bytes(), nil
}

// germanNumber formats a value with a comma decimal separator.
func germanNumber(v float64) string {
	return germanPrinter.Sprintf("%.2f", v)
}
