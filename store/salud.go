package store

import (
	"database/sql"
	"fmt"

	"github.com/Evangelivm/confejas-2025-back/models"
	log "github.com/sirupsen/logrus"
)

func (s *Store) GetInventario() ([]models.InventarioItem, error) {
	rows, err := s.db.Query(`SELECT id_inventario_salud, nombre, descripcion, stock, dosis FROM inventario_salud`)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	defer rows.Close()

	var items []models.InventarioItem
	for rows.Next() {
		var item models.InventarioItem
		if err := rows.Scan(&item.IDInventarioSalud, &item.Nombre, &item.Descripcion, &item.Stock, &item.Dosis); err != nil {
			return nil, fmt.Errorf("listar inventario: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) CreateInventarioItem(in models.CreateInventarioItem) (models.InventarioItem, error) {
	result, err := s.db.Exec(`
	INSERT INTO inventario_salud (nombre, descripcion, stock, dosis) VALUES (?, ?, ?, ?)`,
		in.Nombre, in.Descripcion, in.Stock, in.Dosis,
	)
	if err != nil {
		return models.InventarioItem{}, fmt.Errorf("crear item de inventario: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.InventarioItem{}, fmt.Errorf("obtener id del item: %w", err)
	}

	item := models.InventarioItem{
		IDInventarioSalud: int(id),
		Nombre:            in.Nombre,
		Stock:             in.Stock,
	}
	if in.Descripcion != nil {
		item.Descripcion = sql.NullString{String: *in.Descripcion, Valid: true}
	}
	if in.Dosis != nil {
		item.Dosis = sql.NullString{String: *in.Dosis, Valid: true}
	}
	return item, nil
}

// UpdateInventarioItem aplica un parche parcial: los campos nil del parche
// conservan el valor actual.
func (s *Store) UpdateInventarioItem(id int, patch models.InventarioItemPatch) error {
	if err := s.inventarioItemExists(s.db, id); err != nil {
		return err
	}

	_, err := s.db.Exec(`
	UPDATE inventario_salud
	SET nombre = COALESCE(?, nombre),
	    descripcion = COALESCE(?, descripcion),
	    stock = COALESCE(?, stock),
	    dosis = COALESCE(?, dosis)
	WHERE id_inventario_salud = ?`,
		patch.Nombre, patch.Descripcion, patch.Stock, patch.Dosis, id,
	)
	if err != nil {
		return fmt.Errorf("actualizar item %d: %w", id, err)
	}
	return nil
}

// DecreaseStock descuenta unidades del inventario. Rechaza la operación si
// el stock actual no alcanza; el stock nunca queda por debajo de cero.
func (s *Store) DecreaseStock(id, amount int) error {
	return decreaseStock(s.db, id, amount)
}

func decreaseStock(ex execer, id, amount int) error {
	var stock int
	err := ex.QueryRow(`SELECT stock FROM inventario_salud WHERE id_inventario_salud = ?`, id).Scan(&stock)
	if err == sql.ErrNoRows {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("consultar stock del item %d: %w", id, err)
	}
	if stock < amount {
		return ErrInsufficientStock
	}

	// stock >= ? cubre decrementos concurrentes entre el SELECT y el UPDATE.
	result, err := ex.Exec(`
	UPDATE inventario_salud SET stock = stock - ? WHERE id_inventario_salud = ? AND stock >= ?`,
		amount, id, amount,
	)
	if err != nil {
		return fmt.Errorf("descontar stock del item %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("descontar stock del item %d: %w", id, err)
	}
	if affected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (s *Store) DeleteInventarioItem(id int) error {
	if err := s.inventarioItemExists(s.db, id); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM inventario_salud WHERE id_inventario_salud = ?`, id); err != nil {
		return fmt.Errorf("eliminar item %d: %w", id, err)
	}
	return nil
}

func (s *Store) inventarioItemExists(ex execer, id int) error {
	var exists bool
	err := ex.QueryRow(`SELECT EXISTS(SELECT 1 FROM inventario_salud WHERE id_inventario_salud = ?)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("verificar item %d: %w", id, err)
	}
	if !exists {
		return ErrItemNotFound
	}
	return nil
}

// CreateAtencion registra la consulta, sus medicinas recetadas y el
// descuento de stock de cada una en una sola transacción: un descuento
// fallido revierte la atención completa.
func (s *Store) CreateAtencion(a models.CreateAtencion) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("crear atención: %w", err)
	}

	seguimiento := 0
	if a.Seguimiento {
		seguimiento = 1
	}

	result, err := tx.Exec(`
	INSERT INTO salud (datos_id, motivo_consulta, tratamiento, seguimiento, fecha_consulta, fecha_seguimiento)
	VALUES (?, ?, ?, ?, ?, ?)`,
		a.DatosID, a.MotivoConsulta, a.Tratamiento, seguimiento, a.FechaConsulta, a.FechaSeguimiento,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("insertar atención: %w", err)
	}

	saludID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("obtener id de la atención: %w", err)
	}

	for _, m := range a.Medicamentos {
		if _, err := tx.Exec(`
		INSERT INTO medicinas_recetadas (id_salud, id_inventario_salud, frecuencia, duracion)
		VALUES (?, ?, ?, ?)`,
			saludID, m.ID, m.Frecuencia, m.Duracion,
		); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("insertar medicina recetada: %w", err)
		}
		if err := decreaseStock(tx, m.ID, m.UnidadesDadas); err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("crear atención: %w", err)
	}

	log.WithFields(log.Fields{"id_salud": saludID, "medicamentos": len(a.Medicamentos)}).Info("Atención registrada")
	return int(saludID), nil
}

const atencionSelect = `
	SELECT s.id_salud, s.fecha_consulta, s.motivo_consulta, s.tratamiento, s.seguimiento, s.fecha_seguimiento,
	       d.id, CONCAT(d.nombre, ' ', d.apellido) AS nombre_completo
	FROM salud s
	JOIN datos d ON s.datos_id = d.id`

func (s *Store) GetAtenciones() ([]models.Atencion, error) {
	rows, err := s.db.Query(atencionSelect)
	if err != nil {
		return nil, fmt.Errorf("listar atenciones: %w", err)
	}
	atenciones, err := s.scanAtenciones(rows)
	if err != nil {
		return nil, fmt.Errorf("listar atenciones: %w", err)
	}
	return atenciones, nil
}

func (s *Store) GetAtencionByID(id int) (*models.Atencion, error) {
	rows, err := s.db.Query(atencionSelect+` WHERE s.id_salud = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("consultar atención %d: %w", id, err)
	}
	atenciones, err := s.scanAtenciones(rows)
	if err != nil {
		return nil, fmt.Errorf("consultar atención %d: %w", id, err)
	}
	if len(atenciones) == 0 {
		return nil, ErrAtencionNotFound
	}
	return &atenciones[0], nil
}

func (s *Store) GetAtencionesByDatosID(id int) ([]models.Atencion, error) {
	rows, err := s.db.Query(atencionSelect+` WHERE s.datos_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("atenciones del participante %d: %w", id, err)
	}
	atenciones, err := s.scanAtenciones(rows)
	if err != nil {
		return nil, fmt.Errorf("atenciones del participante %d: %w", id, err)
	}
	return atenciones, nil
}

func (s *Store) scanAtenciones(rows *sql.Rows) ([]models.Atencion, error) {
	defer rows.Close()

	var atenciones []models.Atencion
	for rows.Next() {
		var a models.Atencion
		if err := rows.Scan(
			&a.IDSalud, &a.FechaConsulta, &a.MotivoConsulta, &a.Tratamiento, &a.Seguimiento,
			&a.FechaSeguimiento, &a.Datos.ID, &a.Datos.NombreCompleto,
		); err != nil {
			return nil, err
		}
		atenciones = append(atenciones, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range atenciones {
		medicinas, err := s.medicinasByAtencion(atenciones[i].IDSalud)
		if err != nil {
			return nil, err
		}
		atenciones[i].Medicinas = medicinas
	}
	return atenciones, nil
}

func (s *Store) medicinasByAtencion(idSalud int) ([]models.MedicinaRecetada, error) {
	rows, err := s.db.Query(`
	SELECT m.frecuencia, m.duracion, i.nombre, i.descripcion, i.dosis
	FROM medicinas_recetadas m
	JOIN inventario_salud i ON m.id_inventario_salud = i.id_inventario_salud
	WHERE m.id_salud = ?`, idSalud)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var medicinas []models.MedicinaRecetada
	for rows.Next() {
		var m models.MedicinaRecetada
		if err := rows.Scan(&m.Frecuencia, &m.Duracion, &m.Nombre, &m.Descripcion, &m.Dosis); err != nil {
			return nil, err
		}
		medicinas = append(medicinas, m)
	}
	return medicinas, rows.Err()
}
