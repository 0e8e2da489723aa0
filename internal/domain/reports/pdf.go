package reports

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const pdfTitle = "REPORTE CLIENTE - LA GRANJA S.A."

// RenderClientPDF escribe el reporte del cliente como PDF: encabezado, datos del
// cliente, detalle de porcinos y resumen (cantidad y peso total).
func RenderClientPDF(w io.Writer, rep ClientReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Reporte "+rep.Client.Cedula, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Las fuentes core usan cp1252; tr convierte tildes y eñes.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(pdfTitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "BU", 13)
		pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(format string, args ...any) {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf(format, args...)), "", 1, "L", false, 0, "")
	}

	c := rep.Client
	section("INFORMACIÓN DEL CLIENTE")
	line("Cédula: %s", orDefault(c.Cedula, "No especificada"))
	line("Nombres: %s", c.GivenNames)
	line("Apellidos: %s", c.Surnames)
	line("Dirección: %s", orDefault(c.Address, "No especificada"))
	line("Ciudad: %s", orDefault(c.City, "No especificada"))
	line("Teléfono: %s", orDefault(c.Phone, "No especificado"))
	pdf.Ln(4)

	section("PORCINOS ASOCIADOS")
	if len(rep.Livestock) == 0 {
		line("No tiene porcinos registrados")
	}
	for i, e := range rep.Livestock {
		l := e.Livestock
		description, dose := "No especificada", "No especificada"
		if f, ok := e.Feed.Entity(); ok {
			description = orDefault(f.Description, description)
			dose = orDefault(f.Dose, dose)
		}
		pdf.SetFont("Helvetica", "B", 11)
		line("%d. ID: %s", i+1, l.Tag)
		pdf.SetFont("Helvetica", "", 10)
		line("   Raza: %s", l.Breed.Label())
		line("   Edad: %d meses", l.AgeMonths)
		line("   Peso: %s kg", formatKg(l.WeightKg))
		line("   Alimentación: %s", description)
		line("   Dosis: %s", dose)
		pdf.Ln(2)
	}
	pdf.Ln(4)

	section("RESUMEN")
	line("Total de porcinos: %d", rep.TotalCount)
	line("Peso total: %s kg", formatKg(rep.TotalWeight))

	return pdf.Output(w)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
