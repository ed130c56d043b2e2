package domain

import "errors"

var (
	// ErrRecordNotFound is returned by the catalog store for missing rows.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNoForegroundPixels is returned when background masking leaves no
	// pixels to cluster. Callers treat it as "no features", not a fault.
	ErrNoForegroundPixels = errors.New("no foreground pixels after masking")

	// ErrQuotaExceeded signals that the background removal service rejected
	// the request because of quota or payment issues.
	ErrQuotaExceeded = errors.New("background removal quota exceeded")

	// ErrBadImage marks an upload that cannot be decoded as an image.
	ErrBadImage = errors.New("image cannot be decoded")

	// ErrCorruptBlob marks a stored descriptor blob whose length is not a
	// multiple of the descriptor width.
	ErrCorruptBlob = errors.New("corrupt descriptor blob")

	// ErrCorruptFeatures marks a features column that cannot be decoded.
	ErrCorruptFeatures = errors.New("corrupt feature record")
)
