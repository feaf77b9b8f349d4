package service

import "errors"

var (
	ErrInvalidPeriod    = errors.New("unknown period mode")
	ErrNoFileSelector   = errors.New("period mode has no file selector")
	ErrUnknownFile      = errors.New("file is not in the selector list")
	ErrAnalysisDisabled = errors.New("scar analysis is disabled")
	ErrInvalidRegion    = errors.New("invalid region geometry")
	ErrNoRegion         = errors.New("no region drawn")
	ErrLiveFeedAnalysis = errors.New("scar analysis needs a monthly or annual file")
	ErrNoFileSelected   = errors.New("no file selected for the period")
	ErrAnalysisInFlight = errors.New("scar analysis already in progress")
)

// AnalysisFailedError - анализ не удался, Message показывается пользователю
type AnalysisFailedError struct {
	Message string
	Err     error
}

func (e *AnalysisFailedError) Error() string {
	return "service: scar analysis failed: " + e.Err.Error()
}

func (e *AnalysisFailedError) Unwrap() error { return e.Err }
