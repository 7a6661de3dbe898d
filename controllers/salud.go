package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Evangelivm/confejas-2025-back/models"
	"github.com/Evangelivm/confejas-2025-back/store"
	"github.com/Evangelivm/confejas-2025-back/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SaludController struct{}

func (sc SaludController) GetAtenciones(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atenciones, err := s.GetAtenciones()
		if err != nil {
			log.WithError(err).Error("Error al listar atenciones")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar las atenciones"})
			return
		}
		utils.ResponseJSON(w, atenciones)
	}
}

func (sc SaludController) GetAtencionByID(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		atencion, err := s.GetAtencionByID(id)
		if err != nil {
			if errors.Is(err, store.ErrAtencionNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Atención no encontrada"})
				return
			}
			log.WithError(err).Error("Error al consultar la atención")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar la atención"})
			return
		}
		utils.ResponseJSON(w, atencion)
	}
}

func (sc SaludController) GetAtencionesByDatosID(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		atenciones, err := s.GetAtencionesByDatosID(id)
		if err != nil {
			log.WithError(err).Error("Error al consultar las atenciones del participante")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar las atenciones"})
			return
		}
		utils.ResponseJSON(w, atenciones)
	}
}

func (sc SaludController) GetInventario(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.GetInventario()
		if err != nil {
			log.WithError(err).Error("Error al listar el inventario")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar el inventario"})
			return
		}
		utils.ResponseJSON(w, items)
	}
}

func (sc SaludController) CreateInventarioItem(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.CreateInventarioItem
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Cuerpo de la petición inválido"})
			return
		}

		item, err := s.CreateInventarioItem(in)
		if err != nil {
			log.WithError(err).Error("Error al crear el item de inventario")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al crear el item"})
			return
		}
		utils.ResponseJSONStatus(w, http.StatusCreated, item)
	}
}

func (sc SaludController) UpdateInventarioItem(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var patch models.InventarioItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Cuerpo de la petición inválido"})
			return
		}

		if err := s.UpdateInventarioItem(id, patch); err != nil {
			respondInventarioError(w, err, "Error al actualizar el item")
			return
		}
		utils.ResponseJSON(w, models.Message{Message: "Item actualizado con éxito"})
	}
}

func (sc SaludController) DecreaseStock(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var body struct {
			Amount int `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Amount <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Cantidad inválida"})
			return
		}

		if err := s.DecreaseStock(id, body.Amount); err != nil {
			respondInventarioError(w, err, "Error al descontar el stock")
			return
		}
		utils.ResponseJSON(w, models.Message{Message: "Stock actualizado con éxito"})
	}
}

func (sc SaludController) DeleteInventarioItem(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := s.DeleteInventarioItem(id); err != nil {
			respondInventarioError(w, err, "Error al eliminar el item")
			return
		}
		utils.ResponseJSON(w, models.Message{Message: "Item eliminado con éxito"})
	}
}

func (sc SaludController) CreateAtencion(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var atencion models.CreateAtencion
		if err := json.NewDecoder(r.Body).Decode(&atencion); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Cuerpo de la petición inválido"})
			return
		}

		id, err := s.CreateAtencion(atencion)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInsufficientStock):
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Insufficient stock"})
			case errors.Is(err, store.ErrItemNotFound):
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Item no encontrado"})
			default:
				log.WithError(err).Error("Error al registrar la atención")
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al registrar la atención"})
			}
			return
		}
		utils.ResponseJSONStatus(w, http.StatusCreated, models.CreatedMessage{
			Message: "Atención registrada con éxito",
			ID:      id,
		})
	}
}

func respondInventarioError(w http.ResponseWriter, err error, generic string) {
	switch {
	case errors.Is(err, store.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Item no encontrado"})
	case errors.Is(err, store.ErrInsufficientStock):
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Insufficient stock"})
	default:
		log.WithError(err).Error(generic)
		utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: generic})
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "El id proporcionado no es válido"})
		return 0, false
	}
	return id, true
}
