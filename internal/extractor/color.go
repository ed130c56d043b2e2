package extractor

import (
	"fmt"
	"image"

	"github.com/NitinV84/couch-matcher/internal/domain"
	"github.com/disintegration/imaging"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

const (
	colorClusters  = 3
	kmeansRestarts = 10

	// convergenceDelta stops an iteration round once fewer than this
	// fraction of pixels change cluster.
	convergenceDelta = 0.2

	// sampleBound caps the number of pixels fed into clustering.
	sampleBound = 96

	// whiteCutoff is the per-channel floor above which a pixel counts as
	// background when the image carries no alpha channel.
	whiteCutoff = 250
)

// DominantColor estimates the single most prevalent non-background color.
// Background pixels are masked out first: fully transparent pixels when an
// alpha channel exists, near-white pixels otherwise. The remaining pixels are
// clustered with k-means and the centroid of the largest cluster wins.
//
// The initial centroids are random, so exact channel values may drift within
// the convergence tolerance between runs. Restarts keep the drift small.
func DominantColor(img image.Image) (domain.DominantColor, error) {
	small := imaging.Fit(img, sampleBound, sampleBound, imaging.Lanczos)

	obs := foregroundPixels(small)
	if len(obs) == 0 {
		return domain.DominantColor{}, domain.ErrNoForegroundPixels
	}

	center, err := dominantCenter(obs)
	if err != nil {
		return domain.DominantColor{}, fmt.Errorf("clustering %d pixels, %w", len(obs), err)
	}

	rgb := [3]uint8{clampChannel(center[0]), clampChannel(center[1]), clampChannel(center[2])}

	return domain.DominantColor{
		RGB:  rgb,
		Name: colorName(rgb),
		Hex:  hexFor(rgb),
	}, nil
}

// foregroundPixels converts the image into RGB observations, dropping
// whatever the background mask selects.
func foregroundPixels(img *image.NRGBA) clusters.Observations {
	hasAlpha := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 0xff {
			hasAlpha = true
			break
		}
	}

	var obs clusters.Observations
	for i := 0; i+3 < len(img.Pix); i += 4 {
		r, g, b, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]

		if hasAlpha {
			if a == 0 {
				continue
			}
		} else if r > whiteCutoff && g > whiteCutoff && b > whiteCutoff {
			continue
		}

		obs = append(obs, clusters.Coordinates{float64(r), float64(g), float64(b)})
	}

	return obs
}

// dominantCenter runs bounded k-means with restarts and returns the centroid
// of the largest cluster of the best partition (lowest within-cluster squared
// error).
func dominantCenter(obs clusters.Observations) (clusters.Coordinates, error) {
	k := colorClusters
	if len(obs) < k {
		k = len(obs)
	}

	km, err := kmeans.NewWithOptions(convergenceDelta, nil)
	if err != nil {
		return nil, fmt.Errorf("configuring clustering, %w", err)
	}

	var best clusters.Clusters
	bestErr := -1.0
	for i := 0; i < kmeansRestarts; i++ {
		cs, err := km.Partition(obs, k)
		if err != nil {
			return nil, fmt.Errorf("partitioning into %d clusters, %w", k, err)
		}

		sse := withinClusterError(cs)
		if bestErr < 0 || sse < bestErr {
			bestErr = sse
			best = cs
		}
	}

	largest := best[0]
	for _, c := range best[1:] {
		if len(c.Observations) > len(largest.Observations) {
			largest = c
		}
	}

	return largest.Center, nil
}

func withinClusterError(cs clusters.Clusters) float64 {
	var sum float64
	for _, c := range cs {
		for _, o := range c.Observations {
			sum += o.Coordinates().Distance(c.Center)
		}
	}
	return sum
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
