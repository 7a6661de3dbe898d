package controllers

import (
	"errors"
	"net/http"

	"github.com/Evangelivm/confejas-2025-back/models"
	"github.com/Evangelivm/confejas-2025-back/store"
	"github.com/Evangelivm/confejas-2025-back/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EstacaController struct{}

func (ec EstacaController) GetEstacas(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		estacas, err := s.GetEstacas()
		if err != nil {
			log.WithError(err).Error("Error al listar estacas")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar las estacas"})
			return
		}
		utils.ResponseJSON(w, estacas)
	}
}

func (ec EstacaController) GetBarriosByEstaca(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		barrios, err := s.GetBarriosByEstaca(vars["id"])
		if err != nil {
			if errors.Is(err, store.ErrInvalidID) {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "El id proporcionado no es válido"})
				return
			}
			log.WithError(err).Error("Error al listar barrios")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar los barrios"})
			return
		}
		utils.ResponseJSON(w, barrios)
	}
}
