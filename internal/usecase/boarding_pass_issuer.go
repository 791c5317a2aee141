package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/metrics"
)

// BoardingPassUseCase is the issuance surface used by the HTTP layer
type BoardingPassUseCase interface {
	IssueBatch(ctx context.Context, req entity.IssueRequest) ([]*entity.BoardingPass, error)
	GetPass(ctx context.Context, id string) (*entity.BoardingPass, error)
	ListPasses(ctx context.Context) ([]*entity.BoardingPass, error)
}

// issueUnit is the state of one pass moving through the pipeline
type issueUnit struct {
	index     int
	plan      entity.FlightPlan
	email     string
	pass      *entity.BoardingPass
	artifacts *entity.Artifacts
}

// issueStep is one fallible stage of the per-pass pipeline
type issueStep struct {
	name string
	kind error
	run  func(ctx context.Context, u *issueUnit) error
}

// BoardingPassIssuer issues batches of boarding passes
type BoardingPassIssuer struct {
	passRepo  repository.BoardingPassRepository
	artifacts repository.ArtifactGenerator
	notifier  PassNotifier
	generator *FlightGenerator
	metrics   *metrics.Metrics
	logger    logger.Logger
	steps     []issueStep
}

// NewBoardingPassIssuer creates a new issuer
func NewBoardingPassIssuer(
	passRepo repository.BoardingPassRepository,
	artifacts repository.ArtifactGenerator,
	notifier PassNotifier,
	generator *FlightGenerator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *BoardingPassIssuer {
	i := &BoardingPassIssuer{
		passRepo:  passRepo,
		artifacts: artifacts,
		notifier:  notifier,
		generator: generator,
		metrics:   metrics,
		logger:    logger,
	}

	i.steps = []issueStep{
		{name: "persist pass", kind: entity.ErrPersistence, run: i.persist},
		{name: "render artifacts", kind: entity.ErrArtifactGeneration, run: i.renderArtifacts},
		{name: "store artifacts", kind: entity.ErrPersistence, run: i.storeArtifacts},
		{name: "send email", kind: entity.ErrNotification, run: i.notify},
	}

	return i
}

// IssueBatch validates the request, picks one flight plan for the batch and
// runs every unit through the pipeline in order. The first failing step
// aborts the batch; passes completed before it stay persisted and emailed.
func (i *BoardingPassIssuer) IssueBatch(ctx context.Context, req entity.IssueRequest) ([]*entity.BoardingPass, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := ValidateIssueRequest(req); err != nil {
		i.metrics.BatchesIssued.WithLabelValues("rejected").Inc()
		return nil, err
	}

	start := time.Now()
	defer func() {
		i.metrics.ProcessingTime.Observe(time.Since(start).Seconds())
	}()

	plan := i.generator.PlanBatch()
	log := i.logger.With(
		"airline", plan.Airline,
		"destination", plan.Destination.Code,
		"connection", plan.ConnectionCode(),
		"count", req.Count,
	)
	log.Info("Issuing boarding pass batch")

	passes := make([]*entity.BoardingPass, 0, req.Count)
	for idx := 0; idx < req.Count; idx++ {
		unit := &issueUnit{
			index: idx,
			plan:  plan,
			email: req.Email,
			pass:  i.newPass(idx, plan, req.PassengerName),
		}

		if err := i.runPipeline(ctx, unit); err != nil {
			log.Error("Boarding pass batch aborted",
				"unit", idx,
				"completed", len(passes),
				"error", err)
			i.metrics.BatchesIssued.WithLabelValues("failed").Inc()
			return passes, err
		}

		passes = append(passes, unit.pass)
	}

	log.Info("Boarding pass batch issued", "issued", len(passes))
	i.metrics.BatchesIssued.WithLabelValues("issued").Inc()
	return passes, nil
}

// GetPass fetches a single pass; entity.ErrPassNotFound when absent
func (i *BoardingPassIssuer) GetPass(ctx context.Context, id string) (*entity.BoardingPass, error) {
	return i.passRepo.FindByID(ctx, id)
}

// ListPasses returns every issued pass in storage order
func (i *BoardingPassIssuer) ListPasses(ctx context.Context) ([]*entity.BoardingPass, error) {
	return i.passRepo.FindAll(ctx)
}

// ValidateIssueRequest checks the batch size and recipient
func ValidateIssueRequest(req entity.IssueRequest) error {
	if req.Count < entity.MinBatchSize || req.Count > entity.MaxBatchSize {
		return &entity.ValidationError{
			Field:   "count",
			Message: fmt.Sprintf("Count must be %d-%d", entity.MinBatchSize, entity.MaxBatchSize),
		}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &entity.ValidationError{Field: "email", Message: "Email required"}
	}
	return nil
}

func (i *BoardingPassIssuer) newPass(idx int, plan entity.FlightPlan, passengerName string) *entity.BoardingPass {
	return &entity.BoardingPass{
		Airline:       plan.Airline,
		FlightNumber:  i.generator.FlightNumber(plan.Airline),
		Origin:        plan.Origin.Code,
		Destination:   plan.Destination.Code,
		Connection:    plan.ConnectionCode(),
		Seat:          i.generator.Seat(idx),
		PassengerName: strings.TrimSpace(passengerName),
	}
}

func (i *BoardingPassIssuer) runPipeline(ctx context.Context, u *issueUnit) error {
	for _, step := range i.steps {
		if err := step.run(ctx, u); err != nil {
			i.metrics.ErrorsCount.WithLabelValues(step.name).Inc()
			return &entity.StepError{
				Kind:   step.kind,
				Step:   step.name,
				PassID: u.pass.ID,
				Err:    err,
			}
		}
	}
	return nil
}

func (i *BoardingPassIssuer) persist(ctx context.Context, u *issueUnit) error {
	if err := i.passRepo.Create(ctx, u.pass); err != nil {
		return err
	}
	i.metrics.PassesIssued.Inc()
	i.logger.Debug("Boarding pass persisted", "id", u.pass.ID, "seat", u.pass.Seat)
	return nil
}

func (i *BoardingPassIssuer) renderArtifacts(ctx context.Context, u *issueUnit) error {
	artifacts, err := i.artifacts.Generate(u.pass.ID)
	if err != nil {
		return err
	}
	u.artifacts = artifacts
	return nil
}

func (i *BoardingPassIssuer) storeArtifacts(ctx context.Context, u *issueUnit) error {
	u.pass.QR = u.artifacts.QR
	u.pass.Barcode = u.artifacts.Barcode
	if err := i.passRepo.AttachArtifacts(ctx, u.pass); err != nil {
		u.pass.QR = ""
		u.pass.Barcode = ""
		return err
	}
	return nil
}

func (i *BoardingPassIssuer) notify(ctx context.Context, u *issueUnit) error {
	if err := i.notifier.Send(ctx, u.email, u.pass, u.plan.Origin, u.plan.Destination); err != nil {
		return err
	}
	i.metrics.EmailsSent.Inc()
	i.logger.Info("Boarding pass sent", "id", u.pass.ID, "flightNumber", u.pass.FlightNumber, "seat", u.pass.Seat)
	return nil
}
