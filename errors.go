package curvedit

import (
	"errors"

	"github.com/aretw0/curvedit/pkg/curve"
)

var (
	ErrCurveNotFound    = errors.New("curve not found")
	ErrDocumentNotFound = errors.New("table not open")
	ErrDocumentExists   = errors.New("table already open")
	ErrNameCollision    = errors.New("curve name already in use")
	ErrInvalidName      = errors.New("invalid curve name")
	// ErrBuiltin is returned when an edit targets a builtin curve, which is read-only.
	ErrBuiltin = errors.New("builtin curves cannot be modified")

	ErrTooFewKeyframes = curve.ErrTooFewKeyframes
	ErrKeyframeIndex   = curve.ErrKeyframeIndex
	ErrNonFinite       = curve.ErrNonFinite
)
