package entity

import "time"

// Persona es un empleado, pensionado o beneficiario identificado por RFC único.
// El significado exacto del modelo (1 confianza, 2 sindicalizado, 3 pensionado,
// 4 beneficiario) depende de la configuración de la fuente; los generadores
// filtran contra los valores de NominaConfig, nunca contra literales.
type Persona struct {
	ID               int64
	RFC              string
	NumEmpleado      int
	Nombres          string
	ApellidoPrimero  string
	ApellidoSegundo  string
	CURP             string
	Modelo           int
	// IngresoPJFecha fecha de ingreso al Poder Judicial; insumo del cálculo de quinquenios.
	IngresoPJFecha   time.Time
	Estatus          string

	Cuentas []Cuenta

	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// NombreCompleto concatena nombres y apellidos en el orden de los artefactos bancarios.
func (p *Persona) NombreCompleto() string {
	nombre := p.Nombres + " " + p.ApellidoPrimero
	if p.ApellidoSegundo != "" {
		nombre += " " + p.ApellidoSegundo
	}
	return nombre
}
