package store

import (
	"fmt"

	"github.com/Evangelivm/confejas-2025-back/models"
)

func (s *Store) GetEstacas() ([]models.Estaca, error) {
	rows, err := s.db.Query(`SELECT id_estaca, estaca FROM estaca`)
	if err != nil {
		return nil, fmt.Errorf("listar estacas: %w", err)
	}
	defer rows.Close()

	var estacas []models.Estaca
	for rows.Next() {
		var e models.Estaca
		if err := rows.Scan(&e.IDEstaca, &e.Estaca); err != nil {
			return nil, fmt.Errorf("listar estacas: %w", err)
		}
		estacas = append(estacas, e)
	}
	return estacas, rows.Err()
}

func (s *Store) GetBarriosByEstaca(id string) ([]models.Barrio, error) {
	estacaID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT id_barrio, barrio FROM barrio WHERE id_estaca = ?`, estacaID)
	if err != nil {
		return nil, fmt.Errorf("listar barrios de la estaca %d: %w", estacaID, err)
	}
	defer rows.Close()

	var barrios []models.Barrio
	for rows.Next() {
		var b models.Barrio
		if err := rows.Scan(&b.IDBarrio, &b.Barrio); err != nil {
			return nil, fmt.Errorf("listar barrios de la estaca %d: %w", estacaID, err)
		}
		barrios = append(barrios, b)
	}
	return barrios, rows.Err()
}
