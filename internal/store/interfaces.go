package store

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
