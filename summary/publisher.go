package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Evangelivm/confejas-2025-back/pubsub"
	"github.com/Evangelivm/confejas-2025-back/store"
	log "github.com/sirupsen/logrus"
)

// Canal de la lista completa ordenada por compañía.
const ChannelOrdenados = "participantes-ordenados"

var generos = []string{"H", "M"}

// Publisher recalcula los resúmenes derivados y los publica en Redis.
// Corre después de cada escritura sobre participantes; sus fallos se
// registran pero nunca se propagan al caller, la asistencia ya quedó
// confirmada en la base.
type Publisher struct {
	store *store.Store
	ps    *pubsub.Client
	ages  []int
}

func NewPublisher(s *store.Store, ps *pubsub.Client, ages []int) *Publisher {
	return &Publisher{store: s, ps: ps, ages: ages}
}

func ChannelSummaryAge(edad int) string {
	return fmt.Sprintf("summary-age-%d", edad)
}

func ChannelRoomsAge(edad int, sexo string) string {
	return fmt.Sprintf("rooms-age-%d-%s", edad, sexo)
}

// PublishAll publica los resúmenes por edad, la ocupación de habitaciones
// por edad y sexo, y la lista ordenada.
func (p *Publisher) PublishAll(ctx context.Context) {
	p.publishSummariesByAges(ctx)
	p.publishRoomsByAgesAndGenre(ctx)
	p.publishParticipantesOrdenados(ctx)
}

func (p *Publisher) publishSummariesByAges(ctx context.Context) {
	for _, edad := range p.ages {
		resumen, err := p.store.GetSummaryByAge(edad)
		if err != nil {
			log.WithError(err).WithField("edad", edad).Error("No se pudo recalcular el resumen")
			continue
		}
		p.publish(ctx, ChannelSummaryAge(edad), resumen)
	}
}

func (p *Publisher) publishRoomsByAgesAndGenre(ctx context.Context) {
	for _, sexo := range generos {
		for _, edad := range p.ages {
			habitaciones, err := p.store.GetRoomsByAgeAndGenre(edad, sexo)
			if err != nil {
				log.WithError(err).WithFields(log.Fields{"edad": edad, "sexo": sexo}).Error("No se pudo recalcular la ocupación")
				continue
			}
			p.publish(ctx, ChannelRoomsAge(edad, sexo), habitaciones)
		}
	}
}

func (p *Publisher) publishParticipantesOrdenados(ctx context.Context) {
	participantes, err := p.store.GetParticipantesOrdenados()
	if err != nil {
		log.WithError(err).Error("No se pudo recalcular la lista ordenada")
		return
	}
	p.publish(ctx, ChannelOrdenados, participantes)
}

func (p *Publisher) publish(ctx context.Context, channel string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.WithError(err).WithField("canal", channel).Error("No se pudo serializar el resumen")
		return
	}
	if err := p.ps.Publish(ctx, channel, payload); err != nil {
		log.WithError(err).WithField("canal", channel).Error("No se pudo publicar el resumen")
		return
	}
	log.WithField("canal", channel).Info("Resumen publicado y guardado")
}
