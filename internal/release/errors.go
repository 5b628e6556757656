package release

// missingFileError signals that an always-expected input file is absent.
type missingFileError struct{ path string }

func (e missingFileError) Error() string { return "missing required file: " + e.path }

// ErrMissingFile constructs a missingFileError for the given path.
func ErrMissingFile(path string) error { return missingFileError{path: path} }

// IsMissingFile reports whether err indicates a missing required input file.
func IsMissingFile(err error) bool {
	_, ok := err.(missingFileError)
	return ok
}

// archiveError signals that the output archive could not be produced.
type archiveError struct {
	zip string
	err error
}

func (e archiveError) Error() string { return "archive " + e.zip + ": " + e.err.Error() }
func (e archiveError) Unwrap() error { return e.err }

// ErrArchive wraps an underlying system error from the archiving step.
func ErrArchive(zip string, err error) error { return archiveError{zip: zip, err: err} }

// IsArchiveFailure reports whether err came from the archiving step.
func IsArchiveFailure(err error) bool {
	_, ok := err.(archiveError)
	return ok
}
