package store

import (
	"database/sql"
	"fmt"

	"github.com/Evangelivm/confejas-2025-back/models"
	log "github.com/sirupsen/logrus"
)

// GetSummaryByAge cuenta, por compañía con miembros de esa edad, los
// participantes presentes de cada sexo. El orden (hombres DESC, mujeres
// DESC) es parte del contrato de los dashboards.
func (s *Store) GetSummaryByAge(edad int) ([]models.ResumenCompania, error) {
	rows, err := s.db.Query(`
	SELECT b.comp,
	       SUM(CASE WHEN a.sexo = 'H' THEN 1 ELSE 0 END) AS hombres,
	       SUM(CASE WHEN a.sexo = 'M' THEN 1 ELSE 0 END) AS mujeres
	FROM datos a
	JOIN comp b ON a.id_comp = b.id_comp
	JOIN asistencia c ON a.id = c.datos_id
	WHERE a.id_comp IN (SELECT id_comp FROM datos WHERE edad = ?)
	  AND a.tipo = 'Participante'
	  AND c.asistio = 'Si'
	GROUP BY b.comp
	ORDER BY hombres DESC, mujeres DESC`, edad)
	if err != nil {
		return nil, fmt.Errorf("resumen por edad %d: %w", edad, err)
	}
	defer rows.Close()

	var resumen []models.ResumenCompania
	for rows.Next() {
		var r models.ResumenCompania
		if err := rows.Scan(&r.Comp, &r.Hombres, &r.Mujeres); err != nil {
			return nil, fmt.Errorf("resumen por edad %d: %w", edad, err)
		}
		resumen = append(resumen, r)
	}
	return resumen, rows.Err()
}

// GetRoomsByAgeAndGenre devuelve la ocupación de las habitaciones del sexo
// indicado que alojan participantes de esa edad.
func (s *Store) GetRoomsByAgeAndGenre(edad int, sexo string) ([]models.OcupacionHabitacion, error) {
	rows, err := s.db.Query(`
	SELECT a.habitacion,
	       a.nro_camas AS camas,
	       COUNT(b.id) AS registrados,
	       COUNT(CASE WHEN c.asistio = 'Si' THEN 1 END) AS ocupados,
	       a.nro_camas - COUNT(CASE WHEN c.asistio = 'Si' THEN 1 END) AS libres
	FROM habitacion a
	JOIN datos b ON a.id_habitacion = b.id_habitacion
	JOIN asistencia c ON b.id = c.datos_id
	WHERE a.sexo = ?
	  AND a.id_habitacion IN (
	      SELECT id_habitacion FROM datos WHERE edad = ? GROUP BY id_habitacion
	  )
	GROUP BY a.id_habitacion, a.habitacion, a.nro_camas`, sexo, edad)
	if err != nil {
		return nil, fmt.Errorf("habitaciones edad %d sexo %s: %w", edad, sexo, err)
	}
	defer rows.Close()

	var habitaciones []models.OcupacionHabitacion
	for rows.Next() {
		var h models.OcupacionHabitacion
		if err := rows.Scan(&h.Habitacion, &h.Camas, &h.Registrados, &h.Ocupados, &h.Libres); err != nil {
			return nil, fmt.Errorf("habitaciones edad %d sexo %s: %w", edad, sexo, err)
		}
		habitaciones = append(habitaciones, h)
	}
	return habitaciones, rows.Err()
}

const ordenadosSelect = `
	SELECT CONCAT(a.apellido, ', ', a.nombre) AS nombres,
	       a.sexo,
	       CONCAT('Estaca ', f.estaca) AS estaca,
	       e.barrio,
	       b.comp,
	       c.habitacion,
	       d.asistio
	FROM datos a
	JOIN comp b ON a.id_comp = b.id_comp
	JOIN habitacion c ON a.id_habitacion = c.id_habitacion
	JOIN asistencia d ON a.id = d.datos_id
	JOIN barrio e ON a.id_barrio = e.id_barrio
	JOIN estaca f ON a.id_estaca = f.id_estaca`

func (s *Store) GetParticipantesOrdenados() ([]models.ParticipanteOrdenado, error) {
	rows, err := s.db.Query(ordenadosSelect + `
	ORDER BY b.comp, a.sexo DESC, d.asistio DESC`)
	if err != nil {
		return nil, fmt.Errorf("lista ordenada: %w", err)
	}
	defer rows.Close()

	participantes, err := scanOrdenados(rows)
	if err != nil {
		return nil, fmt.Errorf("lista ordenada: %w", err)
	}

	log.Info("Lista ordenada consultada")
	return participantes, nil
}

// GetParticipantesOrdenadosByComp filtra la lista ordenada a una compañía.
// El id llega desfasado en 1 respecto a id_comp; comportamiento observado
// del frontend, no corregir sin confirmarlo con producto.
func (s *Store) GetParticipantesOrdenadosByComp(id string) ([]models.ParticipanteOrdenado, error) {
	compID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ordenadosSelect+`
	WHERE a.id_comp = ?
	ORDER BY b.comp, a.sexo DESC, d.asistio DESC`, compID+1)
	if err != nil {
		return nil, fmt.Errorf("lista ordenada compañía %d: %w", compID, err)
	}
	defer rows.Close()

	participantes, err := scanOrdenados(rows)
	if err != nil {
		return nil, fmt.Errorf("lista ordenada compañía %d: %w", compID, err)
	}
	return participantes, nil
}

func scanOrdenados(rows *sql.Rows) ([]models.ParticipanteOrdenado, error) {
	var participantes []models.ParticipanteOrdenado
	for rows.Next() {
		var p models.ParticipanteOrdenado
		if err := rows.Scan(&p.Nombres, &p.Sexo, &p.Estaca, &p.Barrio, &p.Comp, &p.Habitacion, &p.Asistio); err != nil {
			return nil, err
		}
		participantes = append(participantes, p)
	}
	return participantes, rows.Err()
}
