package timeadmin

import "errors"

var (
	ErrInvalidParameters    = errors.New("valid year and month (1-12) are required")
	ErrUpstreamFetchFailure = errors.New("failed to fetch time administration data")
	ErrInvalidRange         = errors.New("reporting window start is after its end")
)
