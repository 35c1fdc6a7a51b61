package apptconsumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/platform/kafka"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

type Converter interface {
	AppointmentConfirmedToModel(data []byte) (model.AppointmentConfirmed, error)
}

type AppointmentSyncer interface {
	SyncFromAppointments(ctx context.Context, date string) (*model.SyncResult, error)
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	syncer   AppointmentSyncer
}

func NewAppointmentConsumer(
	consumer kafka.Consumer,
	conv Converter,
	syncer AppointmentSyncer,
) *service {
	return &service{consumer: consumer, conv: conv, syncer: syncer}
}

func (s *service) RunAppointmentConfirmedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting appointment confirmed consumer")

	if err := s.consumer.Consume(ctx, s.appointmentConfirmedHandler); err != nil {
		logger.Error(ctx, "Consume from appointment.confirmed topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// appointmentConfirmedHandler re-syncs the whole day of the event. Malformed
// events are dropped so they do not block the partition.
func (s *service) appointmentConfirmedHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.AppointmentConfirmedToModel(msg.Value)
	if err != nil {
		logger.Warn(ctx, "Dropping undecodable AppointmentConfirmed",
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return nil
	}

	log := logger.With(
		logger.String("appointment_id", event.AppointmentID),
		logger.String("date", event.ScheduledDate),
	)

	res, err := s.syncer.SyncFromAppointments(ctx, event.ScheduledDate)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			log.Warn(ctx, "Dropping AppointmentConfirmed with invalid date", logger.ErrorF(err))
			return nil
		}
		log.Error(ctx, "consumer.SyncFromAppointments", logger.ErrorF(err))
		return fmt.Errorf("sync appointments of %s: %w", event.ScheduledDate, err)
	}

	log.Info(ctx, "Appointment day synced",
		logger.Int("created", res.Summary.Created),
		logger.Int("updated", res.Summary.Updated),
		logger.Int("failed", res.Summary.Failed),
	)

	return nil
}
