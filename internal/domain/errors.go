package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// CacheNotReadyErr signals that a match request arrived before warm-up
// sealed the embedding cache, or that warm-up failed entirely. It is never
// conflated with a no-match result.
type CacheNotReadyErr struct {
	domainErr
}

// NewCacheNotReadyErr creates a new CacheNotReadyErr with the given message.
func NewCacheNotReadyErr(message string) *CacheNotReadyErr {
	return &CacheNotReadyErr{
		domainErr: domainErr{message: message},
	}
}

// DimensionMismatchErr signals a fatal configuration inconsistency between
// cached and query vector dimensions.
type DimensionMismatchErr struct {
	domainErr
}

// NewDimensionMismatchErr creates a new DimensionMismatchErr with the given message.
func NewDimensionMismatchErr(message string) *DimensionMismatchErr {
	return &DimensionMismatchErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderErr represents a service-level failure of the embedding or chat
// provider (error status, malformed or empty payload).
type ProviderErr struct {
	domainErr
}

// NewProviderErr creates a new ProviderErr with the given message.
func NewProviderErr(message string) *ProviderErr {
	return &ProviderErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderUnavailableErr represents a transport-level failure reaching the
// provider (connection refused, timeout).
type ProviderUnavailableErr struct {
	domainErr
}

// NewProviderUnavailableErr creates a new ProviderUnavailableErr with the given message.
func NewProviderUnavailableErr(message string) *ProviderUnavailableErr {
	return &ProviderUnavailableErr{
		domainErr: domainErr{message: message},
	}
}
