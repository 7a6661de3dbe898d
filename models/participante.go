package models

import "database/sql"

// ParticipanteResumen es la fila que alimenta el listado general:
// el nombre ya viene concatenado como "apellido, nombre".
type ParticipanteResumen struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Participante struct {
	ID         int    `json:"id"`
	Comp       string `json:"comp"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Habitacion string `json:"habitacion"`
	Edad       int    `json:"edad"`
	Estaca     string `json:"estaca"`
	Barrio     string `json:"barrio"`
	Asistio    string `json:"asistio"`
}

type ParticipanteCompleto struct {
	ID         int            `json:"id"`
	Comp       string         `json:"comp"`
	Nombre     string         `json:"nombre"`
	Apellido   string         `json:"apellido"`
	Habitacion string         `json:"habitacion"`
	Edad       int            `json:"edad"`
	Estaca     string         `json:"estaca"`
	Barrio     string         `json:"barrio"`
	Asistio    string         `json:"asistio"`
	Telefono   sql.NullString `json:"telefono"`
	Sexo       string         `json:"sexo"`
	Tipo       string         `json:"tipo"`
	Correo     sql.NullString `json:"correo"`
	NomC1      sql.NullString `json:"nom_c1"`
	TelefC1    sql.NullString `json:"telef_c1"`
	GrupoSang  sql.NullString `json:"grupo_sang"`
	Miembro    sql.NullString `json:"miembro"`
	EnfCronica sql.NullString `json:"enf_cronica"`
	TratMed    sql.NullString `json:"trat_med"`
	Seguro     sql.NullString `json:"seguro"`
	AlergiaMed sql.NullString `json:"alergia_med"`
}

// CreateParticipante es el cuerpo del POST /part.
type CreateParticipante struct {
	Apellido     string `json:"apellido"`
	Nombre       string `json:"nombre"`
	Nacimiento   string `json:"nacimiento"`
	Edad         int    `json:"edad"`
	Sexo         string `json:"sexo"`
	IDEstaca     int    `json:"id_estaca"`
	IDBarrio     int    `json:"id_barrio"`
	IDComp       int    `json:"id_comp"`
	IDHabitacion int    `json:"id_habitacion"`
}
