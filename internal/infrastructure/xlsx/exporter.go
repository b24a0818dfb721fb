// Package xlsx exporta el inventario de artículos a una hoja Excel.
package xlsx

import (
	"fmt"
	"io"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// SheetName nombre de la hoja generada.
const SheetName = "Inventaire"

var header = []interface{}{
	"ID", "Référence", "Nom", "Catégorie", "Quantité", "Unité",
	"Seuil min", "Emplacement", "Fournisseur", "Prix unitaire", "Valeur", "Alerte",
}

// Exporter escribe un libro con una fila por artículo.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ContentType MIME del libro generado.
func (Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export escribe el libro en w.
func (Exporter) Export(w io.Writer, articles []*entity.Article) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("xlsx: panes: %w", err)
	}

	for i, a := range articles {
		alert := ""
		if a.BelowThreshold() {
			alert = "OUI"
		}
		price, _ := a.UnitPrice.Float64()
		value, _ := a.StockValue().Float64()
		row := []interface{}{
			a.ID, a.Reference, a.Name, a.Category, a.Quantity, a.Unit,
			a.MinThreshold, a.Location, a.Supplier, price, value, alert,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: escribir: %w", err)
	}
	return nil
}
