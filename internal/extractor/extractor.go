// Package extractor derives the persisted feature representation from an
// image file. Two strategies exist and are selected by deployment
// configuration: classification plus dominant color, or ORB keypoint
// descriptors. Both are deterministic for identical pixel input, except for
// the bounded randomness of the color clustering.
package extractor

import (
	"context"

	"github.com/NitinV84/couch-matcher/internal/domain"
)

type Extractor interface {
	Extract(ctx context.Context, imagePath string) (domain.FeatureRecord, error)
}
