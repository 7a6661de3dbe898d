package models

// ResumenCompania cuenta los asistentes presentes por compañía y sexo.
type ResumenCompania struct {
	Comp    string `json:"comp"`
	Hombres int    `json:"hombres"`
	Mujeres int    `json:"mujeres"`
}

type OcupacionHabitacion struct {
	Habitacion  string `json:"habitacion"`
	Camas       int    `json:"camas"`
	Registrados int    `json:"registrados"`
	Ocupados    int    `json:"ocupados"`
	Libres      int    `json:"libres"`
}

type ParticipanteOrdenado struct {
	Nombres    string `json:"nombres"`
	Sexo       string `json:"sexo"`
	Estaca     string `json:"estaca"`
	Barrio     string `json:"barrio"`
	Comp       string `json:"comp"`
	Habitacion string `json:"habitacion"`
	Asistio    string `json:"asistio"`
}
