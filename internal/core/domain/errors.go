package domain

import "errors"

// ============================================================================
// Analysis Job Errors
// ============================================================================

var (
	ErrJobNotFound      = errors.New("analysis job not found")
	ErrJobNotFinished   = errors.New("analysis job has not finished yet")
	ErrJobAlreadyExists = errors.New("analysis job with this ID already exists")
	ErrQueueFull        = errors.New("analysis queue is full")
)

// Validation errors
var (
	ErrInvalidJobID       = errors.New("job ID is required")
	ErrMissingCallbackURL = errors.New("callback URL is required")
	ErrNoGenomeSource     = errors.New("no genome content or file URL provided")
	ErrNoVariantsFound    = errors.New("no valid variants found in genome file")
)

// ============================================================================
// Annotation Errors
// ============================================================================

var (
	ErrVariantNotFound = errors.New("no annotation found for this variant")
	ErrInvalidRSID     = errors.New("rsID is required")
)
