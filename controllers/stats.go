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

type StatsController struct{}

func (sc StatsController) GetStats(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantes, err := s.GetParticipantesOrdenados()
		if err != nil {
			log.WithError(err).Error("Error al consultar la lista ordenada")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar la lista ordenada"})
			return
		}
		utils.ResponseJSON(w, participantes)
	}
}

func (sc StatsController) GetStatsByComp(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		participantes, err := s.GetParticipantesOrdenadosByComp(vars["id"])
		if err != nil {
			if errors.Is(err, store.ErrInvalidID) {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "El id proporcionado no es válido"})
				return
			}
			log.WithError(err).Error("Error al consultar la lista ordenada por compañía")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar la lista ordenada"})
			return
		}
		utils.ResponseJSON(w, participantes)
	}
}
