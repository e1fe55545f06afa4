package chemops

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyStructure     = errors.New("structure cannot be empty")
	ErrEmptyFormat        = errors.New("structure format cannot be empty")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrInvalidDimensions  = errors.New("invalid image dimensions")

	// Engine errors.
	ErrParse          = errors.New("structure parsing failed")
	ErrProtonation    = errors.New("protonation calculation failed")
	ErrRender         = errors.New("image rendering failed")
	ErrEngineStart    = errors.New("failed to start chemistry engine")
	ErrEngineProtocol = errors.New("chemistry engine protocol error")

	// Formula errors.
	ErrInvalidFormula = errors.New("invalid empirical formula")
	ErrInvalidElement = errors.New("invalid element symbol")
)
