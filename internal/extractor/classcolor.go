package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/NitinV84/couch-matcher/internal/classifier"
	"github.com/NitinV84/couch-matcher/internal/domain"
	"github.com/NitinV84/couch-matcher/internal/preprocess"
)

//go:generate moq -out classcolor_moq_test.go . Classifier BackgroundRemover
type Classifier interface {
	Classify(ctx context.Context, img []byte) (classifier.Prediction, error)
}

type BackgroundRemover interface {
	Remove(ctx context.Context, img []byte) ([]byte, error)
}

// ClassColor runs the pretrained classifier on the canonical 224x224 buffer
// and clusters the dominant color on the (optionally background-removed)
// image. On the ingest path the remover is a passthrough and the near-white
// heuristic handles the background.
type ClassColor struct {
	classifier Classifier
	remover    BackgroundRemover

	log *slog.Logger
}

func NewClassColor(c Classifier, r BackgroundRemover, log *slog.Logger) *ClassColor {
	return &ClassColor{classifier: c, remover: r, log: log.WithGroup("EXTRACTOR")}
}

func (e *ClassColor) Extract(ctx context.Context, imagePath string) (domain.FeatureRecord, error) {
	img, err := preprocess.Load(imagePath)
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("loading image, %w", err)
	}

	canonical := preprocess.FitSquare(img, preprocess.ClassifierSize)
	png, err := preprocess.PNGBytes(canonical)
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("preparing classifier input, %w", err)
	}

	pred, err := e.classifier.Classify(ctx, png)
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("classifying image, %w", err)
	}

	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("reading image for color extraction, %w", err)
	}

	cleaned, err := e.remover.Remove(ctx, raw)
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("removing background, %w", err)
	}

	colorSrc, err := preprocess.Decode(cleaned)
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("decoding background-removed image, %w", err)
	}

	color, err := DominantColor(colorSrc)
	if err != nil {
		return domain.FeatureRecord{}, fmt.Errorf("extracting dominant color, %w", err)
	}

	e.log.Info("features extracted",
		slog.String("class", pred.Label),
		slog.String("color", color.Name),
	)

	return domain.FeatureRecord{
		ClassLabel: pred.Label,
		Confidence: pred.Confidence,
		Color:      &color,
	}, nil
}
