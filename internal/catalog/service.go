// Package catalog orchestrates the two flows of the service: ingest
// (persist item → upload image → extract features asynchronously) and search
// (extract query features → fetch candidates → rank).
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NitinV84/couch-matcher/internal/domain"
	"github.com/NitinV84/couch-matcher/internal/monitoring"
	"github.com/google/uuid"
)

//go:generate moq -out service_moq_test.go . SofaRepo FileStorage Extractor Ranker
type SofaRepo interface {
	Insert(ctx context.Context, sofa domain.Sofa) (domain.Sofa, error)
	Get(ctx context.Context, id int64) (domain.Sofa, error)
	GetAll(ctx context.Context) ([]domain.Sofa, error)
	FilterByMaxPrice(ctx context.Context, budget float64) ([]domain.Sofa, error)
	FilterByClass(ctx context.Context, label string) ([]domain.Sofa, error)
	UpdateFeatures(ctx context.Context, id int64, record domain.FeatureRecord) error
	Delete(ctx context.Context, id int64) error
}

type FileStorage interface {
	Upload(ctx context.Context, key, path string) error
	Download(key string) (*os.File, error)
	DeleteFile(ctx context.Context, key string) error
}

type Extractor interface {
	Extract(ctx context.Context, imagePath string) (domain.FeatureRecord, error)
}

type Ranker interface {
	Rank(ctx context.Context, query domain.FeatureRecord, candidates []domain.Sofa) ([]domain.Match, error)
}

const imageKeyPrefix = "sofa-images/"

type NewSofa struct {
	Name        string
	Description string
	Price       float64
	Discount    float64
	Quantity    int
}

type Service struct {
	repo    SofaRepo
	storage FileStorage

	// ingest extracts without background removal, query with; see the
	// extractor package for why the two differ.
	ingestExtractor Extractor
	queryExtractor  Extractor
	ranker          Ranker

	jobs chan extractionJob

	log     *slog.Logger
	tracker *monitoring.Tracker
}

type extractionJob struct {
	sofaID   int64
	imageKey string
}

func NewService(
	repo SofaRepo,
	storage FileStorage,
	ingestExtractor Extractor,
	queryExtractor Extractor,
	ranker Ranker,
	log *slog.Logger,
	tracker *monitoring.Tracker,
) *Service {
	return &Service{
		repo:            repo,
		storage:         storage,
		ingestExtractor: ingestExtractor,
		queryExtractor:  queryExtractor,
		ranker:          ranker,
		jobs:            make(chan extractionJob, 64),
		log:             log.WithGroup("CATALOG"),
		tracker:         tracker,
	}
}

// Create persists a new catalog item and schedules feature extraction for
// it. Extraction happens off the request path; its failure never fails the
// creation, the item just keeps null features.
func (s *Service) Create(ctx context.Context, input NewSofa, imagePath string) (domain.Sofa, error) {
	key := imageKeyPrefix + uuid.New().String() + filepath.Ext(imagePath)

	if err := s.storage.Upload(ctx, key, imagePath); err != nil {
		return domain.Sofa{}, fmt.Errorf("uploading image, %w", err)
	}

	sofa, err := s.repo.Insert(ctx, domain.Sofa{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Discount:    input.Discount,
		Quantity:    input.Quantity,
		ImageKey:    key,
	})
	if err != nil {
		// best effort: the uploaded object is orphaned without its row
		if delErr := s.storage.DeleteFile(ctx, key); delErr != nil {
			s.log.Error("removing orphaned image",
				slog.String("key", key),
				slog.String("err", delErr.Error()),
			)
		}
		return domain.Sofa{}, fmt.Errorf("persisting sofa, %w", err)
	}

	select {
	case s.jobs <- extractionJob{sofaID: sofa.ID, imageKey: key}:
	default:
		// a full queue must not fail the creation; the item simply stays
		// without features
		s.log.Error("extraction queue full, skipping", slog.Int64("sofa_id", sofa.ID))
	}

	s.tracker.OnIngest()

	return sofa, nil
}

// RunExtractionWorker consumes queued extraction jobs until the context is
// cancelled. A single worker guarantees two extraction attempts for the same
// item never race.
func (s *Service) RunExtractionWorker(ctx context.Context) error {
	s.log.Info("starting extraction worker")
	for {
		select {
		case job := <-s.jobs:
			s.extract(ctx, job)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Service) extract(ctx context.Context, job extractionJob) {
	f, err := s.storage.Download(job.imageKey)
	if f != nil {
		defer func(name string) {
			err := os.Remove(name)
			if err != nil {
				s.log.Error("removing temp file",
					slog.String("file", name),
					slog.String("err", err.Error()),
				)
			}
		}(f.Name())
	}
	if err != nil {
		s.log.Error("cannot download image for extraction",
			slog.Int64("sofa_id", job.sofaID),
			slog.String("err", err.Error()),
		)
		return
	}

	record, err := s.ingestExtractor.Extract(ctx, f.Name())
	if err != nil {
		s.log.Error("feature extraction failed, item keeps null features",
			slog.Int64("sofa_id", job.sofaID),
			slog.String("err", err.Error()),
		)
		return
	}

	if err := s.repo.UpdateFeatures(ctx, job.sofaID, record); err != nil {
		s.log.Error("saving extracted features",
			slog.Int64("sofa_id", job.sofaID),
			slog.String("err", err.Error()),
		)
		return
	}

	s.log.Info("features extracted", slog.Int64("sofa_id", job.sofaID))
	s.tracker.OnExtraction()
}

// Delete removes a catalog item together with its stored image. The image
// goes first so a failed storage call never leaves a row pointing at nothing.
func (s *Service) Delete(ctx context.Context, id int64) error {
	sofa, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading sofa %d, %w", id, err)
	}

	if err := s.storage.DeleteFile(ctx, sofa.ImageKey); err != nil {
		return fmt.Errorf("deleting image %s, %w", sofa.ImageKey, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting sofa %d, %w", id, err)
	}

	return nil
}

// List returns catalog items, optionally restricted to a maximum discounted
// price.
func (s *Service) List(ctx context.Context, budget *float64) ([]domain.Sofa, error) {
	if budget != nil {
		return s.repo.FilterByMaxPrice(ctx, *budget)
	}
	return s.repo.GetAll(ctx)
}

// Search extracts features from the query image and ranks the candidate set
// against them. An empty result is a valid no-match outcome, not an error.
func (s *Service) Search(ctx context.Context, budget *float64, imagePath string) ([]domain.Match, error) {
	s.tracker.OnSearch()

	query, err := s.queryExtractor.Extract(ctx, imagePath)
	if err != nil {
		if errors.Is(err, domain.ErrNoForegroundPixels) {
			// nothing to compare against: report no match, not a fault
			return nil, nil
		}
		return nil, fmt.Errorf("extracting query features, %w", err)
	}

	candidates, err := s.candidates(ctx, budget, query)
	if err != nil {
		return nil, err
	}

	matches, err := s.ranker.Rank(ctx, query, candidates)
	if err != nil {
		return nil, fmt.Errorf("ranking %d candidates, %w", len(candidates), err)
	}

	return matches, nil
}

// candidates picks the cheapest pre-filter the store can answer: budget cuts
// first when given, otherwise the class-equality filter for strategies that
// know the query class. Rankers still enforce their own pre-filters.
func (s *Service) candidates(ctx context.Context, budget *float64, query domain.FeatureRecord) ([]domain.Sofa, error) {
	switch {
	case budget != nil:
		sofas, err := s.repo.FilterByMaxPrice(ctx, *budget)
		if err != nil {
			return nil, fmt.Errorf("filtering candidates by budget, %w", err)
		}
		return sofas, nil
	case query.ClassLabel != "":
		sofas, err := s.repo.FilterByClass(ctx, query.ClassLabel)
		if err != nil {
			return nil, fmt.Errorf("filtering candidates by class, %w", err)
		}
		return sofas, nil
	default:
		sofas, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing candidates, %w", err)
		}
		return sofas, nil
	}
}
