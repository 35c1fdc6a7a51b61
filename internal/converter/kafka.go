package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	lockerv1 "github.com/ANGELZzz6/Hako-sub000/pkg/api/locker/v1"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) AppointmentConfirmedToModel(data []byte) (model.AppointmentConfirmed, error) {
	var ev lockerv1.AppointmentConfirmedEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return model.AppointmentConfirmed{}, fmt.Errorf("failed to unmarshal appointment confirmed: %w", err)
	}
	if _, err := time.Parse(model.DateLayout, ev.ScheduledDate); err != nil {
		return model.AppointmentConfirmed{}, fmt.Errorf("bad scheduled date %q: %w", ev.ScheduledDate, err)
	}

	return model.AppointmentConfirmed{
		EventID:       ev.EventID,
		AppointmentID: ev.AppointmentID,
		ScheduledDate: ev.ScheduledDate,
		TimeSlot:      ev.TimeSlot,
	}, nil
}

func (c *kafkaConverter) AssignmentReservedToPayload(m model.AssignmentReserved) ([]byte, error) {
	payload, err := json.Marshal(lockerv1.AssignmentReservedEvent{
		EventID:       m.EventID.String(),
		AssignmentID:  m.AssignmentID.String(),
		AppointmentID: m.AppointmentID,
		LockerNumber:  m.LockerNumber,
		ScheduledDate: m.ScheduledDate,
		TimeSlot:      m.TimeSlot,
		SlotsUsed:     m.SlotsUsed,
		Oversize:      m.Oversize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assignment reserved: %w", err)
	}

	return payload, nil
}
