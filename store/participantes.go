package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Evangelivm/confejas-2025-back/models"
	log "github.com/sirupsen/logrus"
)

const participanteJoin = `
	FROM datos a
	JOIN comp b ON a.id_comp = b.id_comp
	JOIN habitacion c ON a.id_habitacion = c.id_habitacion
	JOIN estaca d ON a.id_estaca = d.id_estaca
	JOIN barrio e ON a.id_barrio = e.id_barrio
	JOIN asistencia f ON a.id = f.datos_id`

func (s *Store) ListParticipantes() ([]models.ParticipanteResumen, error) {
	rows, err := s.db.Query(`SELECT id, CONCAT(apellido, ', ', nombre) AS name FROM datos`)
	if err != nil {
		return nil, fmt.Errorf("listar participantes: %w", err)
	}
	defer rows.Close()

	var participantes []models.ParticipanteResumen
	for rows.Next() {
		var p models.ParticipanteResumen
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("listar participantes: %w", err)
		}
		participantes = append(participantes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar participantes: %w", err)
	}

	log.Info("Lista total consultada")
	return participantes, nil
}

func (s *Store) GetParticipanteByID(id string) (*models.Participante, error) {
	datosID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var p models.Participante
	err = s.db.QueryRow(`
	SELECT a.id, b.comp, a.nombre, a.apellido, c.habitacion, a.edad, d.estaca, e.barrio, f.asistio`+
		participanteJoin+`
	WHERE a.id = ?`, datosID).Scan(
		&p.ID, &p.Comp, &p.Nombre, &p.Apellido, &p.Habitacion, &p.Edad, &p.Estaca, &p.Barrio, &p.Asistio,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("consultar participante %d: %w", datosID, err)
	}

	log.WithFields(log.Fields{"nombre": p.Nombre, "apellido": p.Apellido}).Info("Participante consultado")
	return &p, nil
}

func (s *Store) GetFullParticipanteByID(id string) (*models.ParticipanteCompleto, error) {
	datosID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var p models.ParticipanteCompleto
	err = s.db.QueryRow(`
	SELECT a.id, b.comp, a.nombre, a.apellido, c.habitacion, a.edad, d.estaca, e.barrio, f.asistio,
	       a.telefono, a.sexo, a.tipo, a.correo, a.nom_c1, a.telef_c1, a.grupo_sang, a.miembro,
	       a.enf_cronica, a.trat_med, a.seguro, a.alergia_med`+
		participanteJoin+`
	WHERE a.id = ?`, datosID).Scan(
		&p.ID, &p.Comp, &p.Nombre, &p.Apellido, &p.Habitacion, &p.Edad, &p.Estaca, &p.Barrio, &p.Asistio,
		&p.Telefono, &p.Sexo, &p.Tipo, &p.Correo, &p.NomC1, &p.TelefC1, &p.GrupoSang, &p.Miembro,
		&p.EnfCronica, &p.TratMed, &p.Seguro, &p.AlergiaMed,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("consultar participante completo %d: %w", datosID, err)
	}

	log.WithFields(log.Fields{"nombre": p.Nombre, "apellido": p.Apellido}).Info("Información completa consultada")
	return &p, nil
}

// UpdateAsistencia marca presente al participante. La operación es
// idempotente: el flag se escribe incondicionalmente a "Si".
func (s *Store) UpdateAsistencia(id string) (*models.Participante, error) {
	p, err := s.GetParticipanteByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec(`UPDATE asistencia SET asistio = 'Si' WHERE datos_id = ?`, p.ID); err != nil {
		return nil, fmt.Errorf("actualizar asistencia %d: %w", p.ID, err)
	}

	log.WithFields(log.Fields{"nombre": p.Nombre, "apellido": p.Apellido}).Info("Asistencia registrada")
	return p, nil
}

// CreateParticipanteWithAsistencia inserta el participante y su fila de
// asistencia (presente) en una sola transacción: o existen ambas filas o
// ninguna.
func (s *Store) CreateParticipanteWithAsistencia(p models.CreateParticipante) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("crear participante: %w", err)
	}

	result, err := tx.Exec(`
	INSERT INTO datos (apellido, nombre, nacimiento, edad, sexo, id_estaca, id_barrio, id_comp, id_habitacion)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Apellido, p.Nombre, p.Nacimiento, p.Edad, p.Sexo, p.IDEstaca, p.IDBarrio, p.IDComp, p.IDHabitacion,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("insertar participante: %w", err)
	}

	datosID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("obtener id del participante: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO asistencia (datos_id, asistio) VALUES (?, 'Si')`, datosID); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("insertar asistencia: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("crear participante: %w", err)
	}

	log.WithFields(log.Fields{"id": datosID, "nombre": p.Nombre, "apellido": p.Apellido}).Info("Participante creado con asistencia")
	return int(datosID), nil
}

func parseID(id string) (int, error) {
	if id == "" {
		return 0, ErrInvalidID
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return n, nil
}
