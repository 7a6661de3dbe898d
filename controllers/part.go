package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Evangelivm/confejas-2025-back/models"
	"github.com/Evangelivm/confejas-2025-back/store"
	"github.com/Evangelivm/confejas-2025-back/summary"
	"github.com/Evangelivm/confejas-2025-back/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PartController struct{}

func (pc PartController) GetParticipantes(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantes, err := s.ListParticipantes()
		if err != nil {
			log.WithError(err).Error("Error al listar participantes")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar los participantes"})
			return
		}
		utils.ResponseJSON(w, participantes)
	}
}

func (pc PartController) GetParticipanteByID(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		participante, err := s.GetParticipanteByID(vars["id"])
		if err != nil {
			respondParticipanteError(w, err)
			return
		}
		utils.ResponseJSON(w, participante)
	}
}

func (pc PartController) GetFullParticipanteByID(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		participante, err := s.GetFullParticipanteByID(vars["id"])
		if err != nil {
			respondParticipanteError(w, err)
			return
		}
		utils.ResponseJSON(w, participante)
	}
}

// UpdateAsistencia marca presente al participante y dispara la publicación
// de resúmenes. La publicación corre después de confirmada la escritura y
// sus fallos no afectan la respuesta.
func (pc PartController) UpdateAsistencia(s *store.Store, pub *summary.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if _, err := s.UpdateAsistencia(vars["id"]); err != nil {
			respondParticipanteError(w, err)
			return
		}

		log.Info("Actualización realizada, publicando resúmenes")
		pub.PublishAll(r.Context())

		utils.ResponseJSON(w, models.Message{Message: "Asistencia actualizada con éxito"})
	}
}

func (pc PartController) CreateParticipante(s *store.Store, pub *summary.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var participante models.CreateParticipante
		if err := json.NewDecoder(r.Body).Decode(&participante); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Cuerpo de la petición inválido"})
			return
		}

		id, err := s.CreateParticipanteWithAsistencia(participante)
		if err != nil {
			log.WithError(err).Error("Error al crear participante")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al crear participante y asistencia"})
			return
		}

		log.Info("Nuevo participante creado, publicando resúmenes")
		pub.PublishAll(r.Context())

		utils.ResponseJSONStatus(w, http.StatusCreated, models.CreatedMessage{
			Message: "Participante creado con éxito",
			ID:      id,
		})
	}
}

func respondParticipanteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "El id proporcionado no es válido"})
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Participante no encontrado"})
	default:
		log.WithError(err).Error("Error al consultar el participante")
		utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Error al consultar el participante"})
	}
}
