package asgproducer

import (
	"context"
	"fmt"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/platform/kafka"
)

const (
	headerContentType = "content-type"
	headerEventID     = "event-id"
	contentTypeJSON   = "application/json"
)

type Converter interface {
	AssignmentReservedToPayload(m model.AssignmentReserved) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewAssignmentProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendAssignmentReserved keys the record by appointment so every locker of
// one appointment lands on the same partition.
func (s *service) SendAssignmentReserved(ctx context.Context, event model.AssignmentReserved) error {
	payload, err := s.conv.AssignmentReservedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter assignment_reserved_to_payload error: %w", err)
	}

	headers := map[string]string{
		headerContentType: contentTypeJSON,
		headerEventID:     event.EventID.String(),
	}
	if err := s.producer.Send(ctx, []byte(event.AppointmentID), payload, headers); err != nil {
		return fmt.Errorf("producer to locker.assignment.reserved topic error: %w", err)
	}

	return nil
}
