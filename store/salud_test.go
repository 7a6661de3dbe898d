package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Evangelivm/confejas-2025-back/models"
)

func TestDecreaseStock(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM inventario_salud WHERE id_inventario_salud = ?")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(10))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE inventario_salud SET stock = stock - ? WHERE id_inventario_salud = ? AND stock >= ?")).
		WithArgs(4, 5, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DecreaseStock(5, 4); err != nil {
		t.Fatalf("DecreaseStock: %v", err)
	}
	expectDone(t, mock)
}

func TestDecreaseStockInsuficiente(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM inventario_salud")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(3))

	err := s.DecreaseStock(5, 4)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("err = %v, se esperaba ErrInsufficientStock", err)
	}
	expectDone(t, mock)
}

// El UPDATE condicionado puede no afectar filas si otro descuento ganó la
// carrera; también debe reportarse como stock insuficiente.
func TestDecreaseStockCarrera(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM inventario_salud")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE inventario_salud SET stock = stock - ?")).
		WithArgs(4, 5, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DecreaseStock(5, 4); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("err = %v, se esperaba ErrInsufficientStock", err)
	}
	expectDone(t, mock)
}

func TestDecreaseStockItemInexistente(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM inventario_salud")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}))

	if err := s.DecreaseStock(99, 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, se esperaba ErrItemNotFound", err)
	}
	expectDone(t, mock)
}

func TestDeleteInventarioItemInexistente(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM inventario_salud WHERE id_inventario_salud = ?)")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	if err := s.DeleteInventarioItem(99); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, se esperaba ErrItemNotFound", err)
	}
	expectDone(t, mock)
}

func TestUpdateInventarioItemParcial(t *testing.T) {
	s, mock := newTestStore(t)

	stock := 25
	patch := models.InventarioItemPatch{Stock: &stock}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM inventario_salud")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE inventario_salud")).
		WithArgs(nil, nil, 25, nil, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.UpdateInventarioItem(5, patch); err != nil {
		t.Fatalf("UpdateInventarioItem: %v", err)
	}
	expectDone(t, mock)
}

// Una atención con N medicamentos inserta una fila de consulta, N recetas y
// descuenta stock N veces, todo dentro de la misma transacción.
func TestCreateAtencion(t *testing.T) {
	s, mock := newTestStore(t)

	atencion := models.CreateAtencion{
		DatosID:        7,
		MotivoConsulta: "Cefalea",
		Tratamiento:    "Reposo e hidratación",
		Seguimiento:    true,
		FechaConsulta:  "2025-01-10 09:30:00",
		Medicamentos: []models.MedicamentoAtencion{
			{ID: 1, Frecuencia: "cada 8 horas", Duracion: "3 días", UnidadesDadas: 9},
			{ID: 2, Frecuencia: "cada 12 horas", Duracion: "5 días", UnidadesDadas: 10},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO salud")).
		WithArgs(7, "Cefalea", "Reposo e hidratación", 1, "2025-01-10 09:30:00", nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	for _, m := range atencion.Medicamentos {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO medicinas_recetadas")).
			WithArgs(int64(11), m.ID, m.Frecuencia, m.Duracion).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM inventario_salud")).
			WithArgs(m.ID).
			WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(50))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE inventario_salud SET stock = stock - ?")).
			WithArgs(m.UnidadesDadas, m.ID, m.UnidadesDadas).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	id, err := s.CreateAtencion(atencion)
	if err != nil {
		t.Fatalf("CreateAtencion: %v", err)
	}
	if id != 11 {
		t.Errorf("id = %d, se esperaba 11", id)
	}
	expectDone(t, mock)
}

// Un descuento insuficiente revierte la atención completa: ni la consulta
// ni las recetas ya insertadas sobreviven.
func TestCreateAtencionRollbackPorStock(t *testing.T) {
	s, mock := newTestStore(t)

	atencion := models.CreateAtencion{
		DatosID:       7,
		FechaConsulta: "2025-01-10 09:30:00",
		Medicamentos: []models.MedicamentoAtencion{
			{ID: 1, Frecuencia: "cada 8 horas", Duracion: "3 días", UnidadesDadas: 99},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO salud")).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO medicinas_recetadas")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM inventario_salud")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(2))
	mock.ExpectRollback()

	if _, err := s.CreateAtencion(atencion); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("err = %v, se esperaba ErrInsufficientStock", err)
	}
	expectDone(t, mock)
}
