package dto

import "time"

// GenerarRequest entrada para lanzar una corrida de generación de artefactos.
type GenerarRequest struct {
	QuincenaClave string `json:"quincena_clave" validate:"required,len=6"`
	Fuente        string `json:"fuente" validate:"required"`
}

// TareaResponse salida al lanzar una tarea en segundo plano.
type TareaResponse struct {
	TareaID string `json:"tarea_id"`
	Mensaje string `json:"mensaje"`
}

// TareaEstadoResponse avance de una tarea (0-100 con mensaje legible).
type TareaEstadoResponse struct {
	TareaID    string `json:"tarea_id"`
	Nombre     string `json:"nombre"`
	Avance     int    `json:"avance"`
	Mensaje    string `json:"mensaje"`
	Terminada  bool   `json:"terminada"`
	ConError   bool   `json:"con_error"`
}

// QuincenaResponse salida de una quincena.
type QuincenaResponse struct {
	Clave                   string `json:"clave"`
	Estado                  string `json:"estado"`
	Estatus                 string `json:"estatus"`
	TieneAguinaldos         bool   `json:"tiene_aguinaldos"`
	TieneApoyosAnuales      bool   `json:"tiene_apoyos_anuales"`
	TienePrimasVacacionales bool   `json:"tiene_primas_vacacionales"`
}

// ProductoResponse manifiesto de un artefacto generado.
type ProductoResponse struct {
	Fuente          string    `json:"fuente"`
	Archivo         string    `json:"archivo"`
	URLPublica      string    `json:"url_publica"`
	Mensajes        []string  `json:"mensajes"`
	EsSatisfactorio bool      `json:"es_satisfactorio"`
	CreadoEn        time.Time `json:"creado_en"`
}

// TimbradosResponse resumen de una corrida de conciliación de timbrados.
type TimbradosResponse struct {
	Procesados     int      `json:"procesados"`
	Actualizados   int      `json:"actualizados"`
	SinCambios     int      `json:"sin_cambios"`
	Advertencias   []string `json:"advertencias"`
	SinNomina      []string `json:"sin_nomina"`
	RFCNoCoinciden []string `json:"rfc_no_coinciden"`
}

// TabuladorResponse renglón del tabulador consultado por persona y quincena.
type TabuladorResponse struct {
	PuestoClave string `json:"puesto_clave"`
	Modelo      int    `json:"modelo"`
	Nivel       int    `json:"nivel"`
	Quinquenio  int    `json:"quinquenio"`
	Sueldo      string `json:"sueldo"`
}
