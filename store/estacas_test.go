package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetEstacas(t *testing.T) {
	s, mock := newTestStore(t)

	rows := sqlmock.NewRows([]string{"id_estaca", "estaca"}).
		AddRow(1, "Lima Norte").
		AddRow(2, "Lima Sur")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_estaca, estaca FROM estaca")).
		WillReturnRows(rows)

	estacas, err := s.GetEstacas()
	if err != nil {
		t.Fatalf("GetEstacas: %v", err)
	}
	if len(estacas) != 2 {
		t.Fatalf("estacas = %d, se esperaban 2", len(estacas))
	}
	expectDone(t, mock)
}

func TestGetBarriosByEstaca(t *testing.T) {
	s, mock := newTestStore(t)

	rows := sqlmock.NewRows([]string{"id_barrio", "barrio"}).
		AddRow(4, "Olivos")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_barrio, barrio FROM barrio WHERE id_estaca = ?")).
		WithArgs(2).
		WillReturnRows(rows)

	barrios, err := s.GetBarriosByEstaca("2")
	if err != nil {
		t.Fatalf("GetBarriosByEstaca: %v", err)
	}
	if len(barrios) != 1 || barrios[0].Barrio != "Olivos" {
		t.Errorf("barrios = %+v", barrios)
	}
	expectDone(t, mock)
}

func TestGetBarriosByEstacaInvalid(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.GetBarriosByEstaca("x"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("err = %v, se esperaba ErrInvalidID", err)
	}
}
