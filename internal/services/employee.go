package services

//go:generate mockgen -source=employee.go -destination=employee_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	ErrEmployeeAlreadyExists = errors.New("employee is already added")
	ErrEmployeeNotFound      = errors.New("employee not found")
)

// EmployeeReader defines read-only operations for employees.
type EmployeeReader interface {
	List(ctx context.Context) ([]models.EmployeeDB, error)
	GetByID(ctx context.Context, employeeID uuid.UUID) (*models.EmployeeDB, error)
	Search(ctx context.Context, text string) ([]models.EmployeeDB, error)
}

// EmployeeWriter defines write operations for employees.
type EmployeeWriter interface {
	Save(ctx context.Context, employee *models.EmployeeDB) error
	Update(ctx context.Context, employeeID uuid.UUID, update models.EmployeeUpdate) (*models.EmployeeDB, error)
	Delete(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EmployeeService handles employee records and publishes their lifecycle events.
type EmployeeService struct {
	reader      EmployeeReader
	writer      EmployeeWriter
	kafkaWriter KafkaWriter
}

// NewEmployeeService creates a new EmployeeService. kafkaWriter may be nil.
func NewEmployeeService(reader EmployeeReader, writer EmployeeWriter, kafkaWriter KafkaWriter) *EmployeeService {
	return &EmployeeService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an employee event to Kafka. Failures are logged only.
func (s *EmployeeService) publishEvent(ctx context.Context, employeeID uuid.UUID, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "employee_id", employeeID, "operation", operation)
		return
	}

	event := models.EmployeeEvent{
		EventID:    uuid.NewString(),
		EmployeeID: employeeID.String(),
		Operation:  operation,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal employee event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EmployeeID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish employee event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Employee event published to Kafka", "event_id", event.EventID, "employee_id", event.EmployeeID, "operation", operation)
	}
}

// List returns all employees.
func (s *EmployeeService) List(ctx context.Context) ([]models.EmployeeDB, error) {
	employees, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

// Create stores a new employee and returns the id assigned by the store.
func (s *EmployeeService) Create(ctx context.Context, employee models.EmployeeDB) (uuid.UUID, error) {
	if err := s.writer.Save(ctx, &employee); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			logger.Log.Warnw("employee already exists", "email", employee.Email)
			return uuid.Nil, ErrEmployeeAlreadyExists
		}
		logger.Log.Errorw("failed to save employee", "email", employee.Email, "error", err)
		return uuid.Nil, err
	}

	s.publishEvent(ctx, employee.EmployeeID, models.EmployeeCreated)
	return employee.EmployeeID, nil
}

// Get returns the employee with the given id.
func (s *EmployeeService) Get(ctx context.Context, employeeID uuid.UUID) (*models.EmployeeDB, error) {
	employee, err := s.reader.GetByID(ctx, employeeID)
	if err != nil {
		logger.Log.Errorw("failed to get employee", "employee_id", employeeID, "error", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

// Update overwrites the fields set in update. Fields are not validated.
func (s *EmployeeService) Update(ctx context.Context, employeeID uuid.UUID, update models.EmployeeUpdate) error {
	employee, err := s.writer.Update(ctx, employeeID, update)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			logger.Log.Warnw("employee email already in use", "employee_id", employeeID)
			return ErrEmployeeAlreadyExists
		}
		logger.Log.Errorw("failed to update employee", "employee_id", employeeID, "error", err)
		return err
	}
	if employee == nil {
		return ErrEmployeeNotFound
	}

	s.publishEvent(ctx, employeeID, models.EmployeeUpdated)
	return nil
}

// Delete removes the employee with the given id.
func (s *EmployeeService) Delete(ctx context.Context, employeeID uuid.UUID) error {
	deleted, err := s.writer.Delete(ctx, employeeID)
	if err != nil {
		logger.Log.Errorw("failed to delete employee", "employee_id", employeeID, "error", err)
		return err
	}
	if !deleted {
		return ErrEmployeeNotFound
	}

	s.publishEvent(ctx, employeeID, models.EmployeeDeleted)
	return nil
}

// Search returns employees whose department or position equals text.
func (s *EmployeeService) Search(ctx context.Context, text string) ([]models.EmployeeDB, error) {
	employees, err := s.reader.Search(ctx, text)
	if err != nil {
		logger.Log.Errorw("failed to search employees", "text", text, "error", err)
		return nil, err
	}
	return employees, nil
}
