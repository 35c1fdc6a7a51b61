package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                       []string `env:"KAFKA_BROKERS,required"`
	AppointmentConfirmedTopicName string   `env:"APPOINTMENT_CONFIRMED_TOPIC_NAME,required"`
	AssignmentReservedTopicName   string   `env:"ASSIGNMENT_RESERVED_TOPIC_NAME,required"`
	AppointmentConsumerGroupID    string   `env:"APPOINTMENT_CONSUMER_GROUP_ID,required"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string                 { return cfg.raw.Brokers }
func (cfg *kafka) AppointmentConfirmedTopic() string { return cfg.raw.AppointmentConfirmedTopicName }
func (cfg *kafka) AssignmentReservedTopic() string   { return cfg.raw.AssignmentReservedTopicName }
func (cfg *kafka) ConsumerGroupID() string           { return cfg.raw.AppointmentConsumerGroupID }

func (cfg *kafka) AppointmentConfirmedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) AssignmentReservedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	return config
}
