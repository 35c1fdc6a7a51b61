package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Mongo interface {
	DSN() string
	DatabaseName() string
	AppointmentsCollection() string
	ProductsCollection() string
	UnitsCollection() string
}

type Kafka interface {
	Brokers() []string
	AppointmentConfirmedTopic() string
	AssignmentReservedTopic() string
	ConsumerGroupID() string
	AppointmentConfirmedConsumerConfig() *sarama.Config
	AssignmentReservedProducerConfig() *sarama.Config
}

type Locker interface {
	Count() int
	Location() *time.Location
	OversizePolicy() string
	Store() string
}
