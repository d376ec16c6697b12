package employee

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	employeeerrors "go-emprec/internal/employee/errors"
	"go-emprec/internal/events"
	"go-emprec/internal/messaging/kafka"
	"go-emprec/internal/shared/contextutil"
	"go-emprec/internal/shared/counter"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	GetByEmployeeNo(ctx context.Context, employeeNo string) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req EmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, logger...)
}

// NewServiceWithOutbox also records a lifecycle event for every write, in
// the same transaction as the write itself.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("first_name", req.FirstName),
		zap.String("last_name", req.LastName),
	)

	fields, err := ValidateRequest(req)
	if err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByNaturalKey(ctx, fields.FirstName, fields.LastName, fields.DateOfBirth)
	if err != nil {
		log.Error("create employee duplicate check failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if exists {
		log.Warn("create employee duplicate natural key",
			zap.String("first_name", fields.FirstName),
			zap.String("last_name", fields.LastName),
			zap.String("dob", fields.DateOfBirth.Format(DateLayout)),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	}

	if !IsEligible(fields.DateOfBirth, fields.DateOfJoining) {
		log.Warn("create employee underage",
			zap.Int("age_at_join", AgeAtJoin(fields.DateOfBirth, fields.DateOfJoining)),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmployeeUnderage
	}

	seq, err := s.counter.NextValue(ctx, IDSequence)
	if err != nil {
		log.Error("create employee allocate id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	emp := &Employee{
		ID:            seq,
		EmployeeNo:    GenerateEmployeeNo(fields.DateOfJoining, seq, fields.FirstName, fields.LastName),
		FirstName:     fields.FirstName,
		LastName:      fields.LastName,
		DateOfBirth:   fields.DateOfBirth,
		DateOfJoining: fields.DateOfJoining,
		Salary:        fields.Salary,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		log.Error("create employee persist failed", zap.Int64("employee_id", seq), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeCreated, emp); err != nil {
		log.Error("create employee outbox persist failed", zap.Int64("employee_id", emp.ID), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success",
		zap.Int64("employee_id", emp.ID),
		zap.String("employee_no", emp.EmployeeNo),
	)

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get all employees requested")

	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by id requested", zap.Int64("employee_id", id))

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Warn("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		if mapped := mapRepositoryError(err); mapped != employeeerrors.ErrEmployeeNotFound {
			return EmployeeResponse{}, mapped
		}
		return EmployeeResponse{}, employeeerrors.NotFoundByID(id)
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetByEmployeeNo(ctx context.Context, employeeNo string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by number requested", zap.String("employee_no", employeeNo))

	emp, err := s.repo.FindByEmployeeNo(ctx, employeeNo)
	if err != nil {
		log.Warn("get employee by number failed", zap.String("employee_no", employeeNo), zap.Error(err))
		return EmployeeResponse{}, notFoundOr(err, employeeNo)
	}

	return mapToResponse(*emp), nil
}

// Update overwrites names, dates and salary. The duplicate and age rules
// apply at creation only.
func (s *service) Update(ctx context.Context, id int64, req EmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.Int64("employee_id", id))

	fields, err := ValidateRequest(req)
	if err != nil {
		log.Warn("update employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("update employee fetch existing failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, notFoundOr(err, id)
	}

	emp.FirstName = fields.FirstName
	emp.LastName = fields.LastName
	emp.DateOfBirth = fields.DateOfBirth
	emp.DateOfJoining = fields.DateOfJoining
	emp.Salary = fields.Salary

	if err := qtx.Update(ctx, emp); err != nil {
		log.Error("update employee persist failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeUpdated, emp); err != nil {
		log.Error("update employee outbox persist failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.Int64("employee_id", id))

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.Int64("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByID(ctx, id)
	if err != nil {
		log.Error("delete employee exists check failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !exists {
		log.Warn("delete employee not found", zap.Int64("employee_id", id))
		return employeeerrors.NotFound(id)
	}

	if err := qtx.DeleteByID(ctx, id); err != nil {
		log.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeDeleted, &Employee{ID: id}); err != nil {
		log.Error("delete employee outbox persist failed", zap.Int64("employee_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	log.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

// enqueue writes a lifecycle event to the outbox inside tx. Without an
// outbox repository it does nothing.
func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, emp *Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	aggregateID := strconv.FormatInt(emp.ID, 10)
	event, err := kafka.NewOutboxEvent(
		events.EmployeeLifecycleTopic,
		events.EmployeeAggregate,
		aggregateID,
		eventType,
		rid,
		events.EmployeeLifecycleEvent{
			EventType:  eventType,
			RequestID:  rid,
			EmployeeID: emp.ID,
			EmployeeNo: emp.EmployeeNo,
			OccurredAt: s.now(),
		},
	)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

// notFoundOr names the missing identifier when err is a not-found.
func notFoundOr(err error, id any) error {
	mapped := mapRepositoryError(err)
	if mapped == employeeerrors.ErrEmployeeNotFound {
		return employeeerrors.NotFound(id)
	}
	return mapped
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		EmployeeNo: emp.EmployeeNo,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		DOB:        emp.DateOfBirth.Format(DateLayout),
		DOJ:        emp.DateOfJoining.Format(DateLayout),
		Salary:     emp.Salary,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
