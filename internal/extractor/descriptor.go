package extractor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NitinV84/couch-matcher/internal/domain"
	"gocv.io/x/gocv"
)

// Descriptor extracts ORB keypoint descriptors: scale-invariant corner
// detection with rotation-invariant binary descriptors, flattened into one
// byte sequence. Finding no keypoints is a valid "no features" outcome and
// yields an empty blob, not an error.
type Descriptor struct {
	log *slog.Logger
}

func NewDescriptor(log *slog.Logger) (*Descriptor, error) {
	// Creating and releasing a detector up front surfaces a broken OpenCV
	// installation at startup instead of on the first request.
	orb := gocv.NewORB()
	if err := orb.Close(); err != nil {
		return nil, fmt.Errorf("orb initialization failed, %w", err)
	}

	return &Descriptor{log: log.WithGroup("EXTRACTOR")}, nil
}

func (d *Descriptor) Extract(ctx context.Context, imagePath string) (domain.FeatureRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeatureRecord{}, err
	}

	img := gocv.IMRead(imagePath, gocv.IMReadGrayScale)
	if img.Empty() {
		return domain.FeatureRecord{}, fmt.Errorf("reading %s as grayscale, %w", imagePath, domain.ErrBadImage)
	}
	defer img.Close()

	// ORB detectors are not safe for concurrent use, one per extraction.
	orb := gocv.NewORB()
	defer orb.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	kps, desc := orb.DetectAndCompute(img, mask)
	defer desc.Close()

	if len(kps) == 0 || desc.Empty() {
		d.log.Info("no keypoints detected", slog.String("file", imagePath))
		return domain.FeatureRecord{}, nil
	}

	blob := desc.ToBytes()

	d.log.Info("descriptors extracted",
		slog.String("file", imagePath),
		slog.Int("keypoints", len(kps)),
		slog.Int("bytes", len(blob)),
	)

	return domain.FeatureRecord{Descriptors: blob}, nil
}
