package models

type Estaca struct {
	IDEstaca int    `json:"id_estaca"`
	Estaca   string `json:"estaca"`
}

type Barrio struct {
	IDBarrio int    `json:"id_barrio"`
	Barrio   string `json:"barrio"`
}
