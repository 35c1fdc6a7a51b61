package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/ANGELZzz6/Hako-sub000/internal/config"
	envconfig "github.com/ANGELZzz6/Hako-sub000/internal/config/env"
	"github.com/ANGELZzz6/Hako-sub000/internal/converter"
	"github.com/ANGELZzz6/Hako-sub000/internal/metrics"
	apptRepository "github.com/ANGELZzz6/Hako-sub000/internal/repository/appointment"
	assignmentRepository "github.com/ANGELZzz6/Hako-sub000/internal/repository/assignment"
	catalogRepository "github.com/ANGELZzz6/Hako-sub000/internal/repository/catalog"
	service "github.com/ANGELZzz6/Hako-sub000/internal/service/assignment"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/binpack"
	apptconsumer "github.com/ANGELZzz6/Hako-sub000/internal/service/consumer/appointment"
	asgproducer "github.com/ANGELZzz6/Hako-sub000/internal/service/producer/assignment"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/slotgrid"
	thttp "github.com/ANGELZzz6/Hako-sub000/internal/transport/http/locker/v1"
	"github.com/ANGELZzz6/Hako-sub000/platform/closer"
	"github.com/ANGELZzz6/Hako-sub000/platform/db/migrator"
	"github.com/ANGELZzz6/Hako-sub000/platform/kafka"
	"github.com/ANGELZzz6/Hako-sub000/platform/kafka/consumer"
	"github.com/ANGELZzz6/Hako-sub000/platform/kafka/middleware"
	"github.com/ANGELZzz6/Hako-sub000/platform/kafka/producer"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

const metricsNamespace = "hako_locker"

type Converter interface {
	apptconsumer.Converter
	asgproducer.Converter
}

type AppointmentConsumer interface {
	RunAppointmentConfirmedConsume(ctx context.Context) error
}

type AssignmentService interface {
	thttp.AssignmentService
	apptconsumer.AppointmentSyncer
}

type Splitter interface {
	service.Splitter
	Policy() slotgrid.OversizePolicy
}

type Handler interface {
	Routes(r chi.Router)
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	mongo        *mongo.Client
	appointments service.AppointmentRepository
	catalog      service.CatalogRepository
	repository   service.AssignmentRepository

	consumerGroup                sarama.ConsumerGroup
	appointmentConfirmedConsumer kafka.Consumer
	appointmentConsumer          AppointmentConsumer

	syncProducer               sarama.SyncProducer
	assignmentReservedProducer kafka.Producer
	assignmentProducer         service.AssignmentReservedSender

	conv Converter

	registry *prometheus.Registry
	metrics  service.Metrics

	splitter Splitter
	packer   thttp.ContinuousPacker

	service AssignmentService
	handler Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) mongoCollection(ctx context.Context, name string) *mongo.Collection {
	return d.MongoDB(ctx).Database(config.C().Mongo.DatabaseName()).Collection(name)
}

func (d *di) AppointmentRepository(ctx context.Context) service.AppointmentRepository {
	if d.appointments == nil {
		repo := apptRepository.NewAppointmentRepository(
			d.mongoCollection(ctx, config.C().Mongo.AppointmentsCollection()),
		)
		if err := repo.EnsureIndexes(ctx); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}

		d.appointments = repo
	}

	return d.appointments
}

func (d *di) CatalogRepository(ctx context.Context) service.CatalogRepository {
	if d.catalog == nil {
		cfg := config.C()

		d.catalog = catalogRepository.NewCatalogRepository(
			d.mongoCollection(ctx, cfg.Mongo.ProductsCollection()),
			d.mongoCollection(ctx, cfg.Mongo.UnitsCollection()),
		)
	}

	return d.catalog
}

func (d *di) AssignmentRepository(ctx context.Context) service.AssignmentRepository {
	if d.repository == nil {
		if config.C().Locker.Store() == envconfig.StoreMemory {
			logger.Warn(ctx, "assignments are kept in memory and lost on restart")
			d.repository = assignmentRepository.NewMemoryRepository()
		} else {
			d.repository = assignmentRepository.NewAssignmentRepository(d.DBPool(ctx))
		}
	}

	return d.repository
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.AppointmentConfirmedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) AppointmentConfirmedConsumer(ctx context.Context) kafka.Consumer {
	if d.appointmentConfirmedConsumer == nil {
		d.appointmentConfirmedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.AppointmentConfirmedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.appointmentConfirmedConsumer
}

func (d *di) AppointmentConsumer(ctx context.Context) AppointmentConsumer {
	if d.appointmentConsumer == nil {
		d.appointmentConsumer = apptconsumer.NewAppointmentConsumer(
			d.AppointmentConfirmedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.AssignmentService(ctx),
		)
	}

	return d.appointmentConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.AssignmentReservedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) AssignmentReservedProducer(ctx context.Context) kafka.Producer {
	if d.assignmentReservedProducer == nil {
		d.assignmentReservedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.AssignmentReservedTopic(),
			logger.L(),
		)
	}

	return d.assignmentReservedProducer
}

func (d *di) AssignmentProducer(ctx context.Context) service.AssignmentReservedSender {
	if d.assignmentProducer == nil {
		d.assignmentProducer = asgproducer.NewAssignmentProducer(
			d.AssignmentReservedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.assignmentProducer
}

func (d *di) Registry(_ context.Context) *prometheus.Registry {
	if d.registry == nil {
		d.registry = prometheus.NewRegistry()
	}

	return d.registry
}

func (d *di) Metrics(ctx context.Context) service.Metrics {
	if d.metrics == nil {
		d.metrics = metrics.NewPrometheus(d.Registry(ctx), metricsNamespace)
	}

	return d.metrics
}

func (d *di) Splitter(ctx context.Context) Splitter {
	if d.splitter == nil {
		policy := slotgrid.OversizePolicy(config.C().Locker.OversizePolicy())
		if !policy.Valid() {
			logger.Warn(ctx, "unknown oversize policy, using dedicated",
				logger.String("policy", string(policy)),
			)
		}

		d.splitter = slotgrid.NewPacker(policy)
	}

	return d.splitter
}

func (d *di) ContinuousPacker(_ context.Context) thttp.ContinuousPacker {
	if d.packer == nil {
		d.packer = binpack.NewPacker(config.C().Locker.Count())
	}

	return d.packer
}

func (d *di) AssignmentService(ctx context.Context) AssignmentService {
	if d.service == nil {
		cfg := config.C()

		d.service = service.NewAssignmentService(
			d.AssignmentRepository(ctx),
			d.AppointmentRepository(ctx),
			d.CatalogRepository(ctx),
			d.AssignmentProducer(ctx),
			d.Splitter(ctx),
			d.Metrics(ctx),
			service.Config{
				LockerCount:    cfg.Locker.Count(),
				Location:       cfg.Locker.Location(),
				ReadDBTimeout:  cfg.Server.DBReadTimeout(),
				WriteDBTimeout: cfg.Server.DBWriteTimeout(),
			},
		)
	}

	return d.service
}

func (d *di) LockerHandler(ctx context.Context) Handler {
	if d.handler == nil {
		d.handler = thttp.NewLockerHandler(
			d.AssignmentService(ctx),
			d.Splitter(ctx),
			d.ContinuousPacker(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
