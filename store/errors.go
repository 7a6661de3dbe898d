package store

import "errors"

// Errores de dominio con discriminante estable. Los handlers los mapean a
// códigos HTTP con errors.Is, nunca comparando texto de mensajes.
var (
	ErrInvalidID         = errors.New("store: id inválido")
	ErrNotFound          = errors.New("store: participante no encontrado")
	ErrItemNotFound      = errors.New("store: item de inventario no encontrado")
	ErrAtencionNotFound  = errors.New("store: atención no encontrada")
	ErrInsufficientStock = errors.New("store: stock insuficiente")
)
