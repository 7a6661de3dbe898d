package models

import "database/sql"

type InventarioItem struct {
	IDInventarioSalud int            `json:"id_inventario_salud"`
	Nombre            string         `json:"nombre"`
	Descripcion       sql.NullString `json:"descripcion"`
	Stock             int            `json:"stock"`
	Dosis             sql.NullString `json:"dosis"`
}

// CreateInventarioItem es el cuerpo del POST /salud/inv.
type CreateInventarioItem struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Stock       int     `json:"stock"`
	Dosis       *string `json:"dosis"`
}

// InventarioItemPatch permite actualizaciones parciales: los campos nil
// conservan el valor actual de la fila.
type InventarioItemPatch struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Stock       *int    `json:"stock"`
	Dosis       *string `json:"dosis"`
}

// MedicamentoAtencion es una línea de medicación del POST /salud/atencion.
type MedicamentoAtencion struct {
	ID            int    `json:"id"`
	Frecuencia    string `json:"frecuencia"`
	Duracion      string `json:"duracion"`
	UnidadesDadas int    `json:"unidadesDadas"`
}

type CreateAtencion struct {
	DatosID          int                   `json:"datos_id"`
	MotivoConsulta   string                `json:"motivoConsulta"`
	Tratamiento      string                `json:"tratamiento"`
	Seguimiento      bool                  `json:"seguimiento"`
	FechaConsulta    string                `json:"fecha_consulta"`
	FechaSeguimiento *string               `json:"fecha_seguimiento"`
	Medicamentos     []MedicamentoAtencion `json:"medicamentos"`
}

type AtencionDatos struct {
	ID             int    `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
}

type MedicinaRecetada struct {
	Frecuencia  string         `json:"frecuencia"`
	Duracion    string         `json:"duracion"`
	Nombre      string         `json:"nombre"`
	Descripcion sql.NullString `json:"descripcion"`
	Dosis       sql.NullString `json:"dosis"`
}

type Atencion struct {
	IDSalud          int                `json:"id_salud"`
	FechaConsulta    string             `json:"fecha_consulta"`
	MotivoConsulta   string             `json:"motivo_consulta"`
	Tratamiento      string             `json:"tratamiento"`
	Seguimiento      int                `json:"seguimiento"`
	FechaSeguimiento sql.NullString     `json:"fecha_seguimiento"`
	Datos            AtencionDatos      `json:"datos"`
	Medicinas        []MedicinaRecetada `json:"medicinas_recetadas"`
}
