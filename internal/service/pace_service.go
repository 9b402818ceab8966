package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/gpx-pace-backend/internal/gpx"
	"github.com/jengzang/gpx-pace-backend/internal/models"
	"github.com/jengzang/gpx-pace-backend/internal/pace"
	"github.com/jengzang/gpx-pace-backend/internal/storage"
)

// Failure is the failure variant of Result
type Failure struct {
	Kind    models.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

// Result is either a Summary or a Failure, never both
type Result struct {
	Summary *models.Summary `json:"summary,omitempty"`
	Failure *Failure        `json:"failure,omitempty"`
}

// OK reports whether the computation succeeded
func (r Result) OK() bool {
	return r.Failure == nil
}

// QueryStore persists and lists computation outcomes
type QueryStore interface {
	Insert(ctx context.Context, q *models.PaceQuery) error
	List(ctx context.Context, limit int) ([]models.PaceQuery, error)
}

// PaceService runs the parse, select and calculate pipeline
type PaceService struct {
	stager  *storage.Stager
	queries QueryStore
	now     func() time.Time
}

// NewPaceService creates a new pace service. stager and queries may be nil
// when only Compute is used.
func NewPaceService(stager *storage.Stager, queries QueryStore) *PaceService {
	return &PaceService{
		stager:  stager,
		queries: queries,
		now:     time.Now,
	}
}

// Compute parses the track at path and summarizes the selected sub-range
func (s *PaceService) Compute(ctx context.Context, path string, req models.PaceRequest) Result {
	summary, err := s.compute(ctx, path, req)
	if err != nil {
		return failed(err)
	}
	return Result{Summary: summary}
}

func (s *PaceService) compute(ctx context.Context, path string, req models.PaceRequest) (*models.Summary, error) {
	criterion, err := pace.NewCriterion(req.Method, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	points, err := gpx.ParseFile(path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selected, err := pace.Select(points, criterion)
	if err != nil {
		return nil, err
	}

	result, err := pace.Calculate(selected)
	if err != nil {
		return nil, err
	}

	summary := pace.Summarize(result)
	return &summary, nil
}

// ComputeUpload stages an uploaded track, computes its summary, records the
// outcome and removes the staged file again
func (s *PaceService) ComputeUpload(ctx context.Context, filename string, r io.Reader, req models.PaceRequest) Result {
	if s.stager == nil {
		return failed(errors.New("upload staging is not configured"))
	}

	staged, err := s.stager.Stage(filename, r)
	if err != nil {
		return failed(err)
	}
	defer func() {
		if err := s.stager.Remove(staged); err != nil {
			log.Printf("Failed to remove staged upload: %v", err)
		}
	}()

	result := s.Compute(ctx, staged.Path, req)
	s.record(ctx, staged, req, result)
	return result
}

// History returns the most recent computations
func (s *PaceService) History(ctx context.Context, limit int) ([]models.PaceQuery, error) {
	if s.queries == nil {
		return []models.PaceQuery{}, nil
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	queries, err := s.queries.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pace history: %w", err)
	}
	return queries, nil
}

func (s *PaceService) record(ctx context.Context, staged *storage.StagedFile, req models.PaceRequest, result Result) {
	if s.queries == nil {
		return
	}

	q := &models.PaceQuery{
		ID:           uuid.NewString(),
		StorageKey:   staged.Key,
		OriginalName: staged.OriginalName,
		Method:       req.Method,
		StartParam:   req.Start,
		EndParam:     req.End,
		CreatedAt:    s.now().UTC(),
	}
	if result.Summary != nil {
		stats := result.Summary.Stats
		q.PointCount = stats.PointCount
		q.DistanceMeters = stats.DistanceMeters
		q.DurationSeconds = stats.DurationSeconds
		q.PaceSecondsPerKm = stats.PaceSecondsPerKm
	}
	if result.Failure != nil {
		kind := string(result.Failure.Kind)
		msg := result.Failure.Message
		q.ErrorKind = &kind
		q.ErrorMessage = &msg
	}

	// the ledger is best effort; a failed insert never fails the request
	if err := s.queries.Insert(context.WithoutCancel(ctx), q); err != nil {
		log.Printf("Failed to record pace query %s: %v", q.ID, err)
	}
}

func failed(err error) Result {
	kind := models.KindOf(err)
	if kind == models.KindInternal {
		log.Printf("Pace computation failed: %v", err)
	}
	return Result{Failure: &Failure{Kind: kind, Message: err.Error()}}
}
