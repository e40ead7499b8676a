package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/organization"
	"go-payroll/internal/payroll"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	// Delivery sink hanya butuh jalur baca payroll, tanpa Redis dan outbox.
	organizationRepo := organization.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	structureRepo := salarystructure.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)

	organizationService := organization.NewService(organizationRepo)
	employeeService := employee.NewService(employeeRepo, nil)
	attendanceService := attendance.NewService(attendanceRepo)
	structureService := salarystructure.NewService(sqlDB, structureRepo, nil)

	generator := payroll.NewGenerator(structureService, attendanceService, employeeService)
	payrollService := payroll.NewService(sqlDB, payrollRepo, generator, organizationService, counterRepo, nil)

	deliveryReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayslipGeneratedTopic,
		GroupID:        "go-payroll-payslip-delivery",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer deliveryReader.Close()

	completedReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayrollRunCompletedTopic,
		GroupID:        "go-payroll-run-completed",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer completedReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipDelivery(ctx, deliveryReader, payrollService, logger)
	go consumer.ConsumeRunCompleted(ctx, completedReader, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
