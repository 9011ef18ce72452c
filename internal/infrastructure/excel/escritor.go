// Package excel serializa las corridas de explotación a libros XLSX.
package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/generadores"
)

var _ generadores.EscritorTabular = (*Escritor)(nil)

const nombreHoja = "Hoja1"

// Escritor escribe encabezado y filas en la primera hoja de un libro nuevo.
type Escritor struct{}

func NewEscritor() *Escritor {
	return &Escritor{}
}

// Escribir crea el libro, vuelca encabezado y filas y lo guarda en ruta.
// Crea los directorios intermedios si no existen.
func (e *Escritor) Escribir(ruta string, encabezado []string, filas [][]any) error {
	if err := os.MkdirAll(filepath.Dir(ruta), 0o755); err != nil {
		return fmt.Errorf("crear directorio: %w", err)
	}

	libro := excelize.NewFile()
	defer libro.Close()

	celda, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return fmt.Errorf("coordenadas de encabezado: %w", err)
	}
	fila := make([]any, len(encabezado))
	for i, titulo := range encabezado {
		fila[i] = titulo
	}
	if err := libro.SetSheetRow(nombreHoja, celda, &fila); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}

	for i, valores := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("coordenadas de fila %d: %w", i+2, err)
		}
		if err := libro.SetSheetRow(nombreHoja, celda, &valores); err != nil {
			return fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	if err := libro.SaveAs(ruta); err != nil {
		return fmt.Errorf("guardar libro: %w", err)
	}
	return nil
}
