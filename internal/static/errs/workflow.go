package errs

import "errors"

var AuthenticationRequired = errors.New("authentication required")

var (
	DescriptionRequired    = errors.New("please enter a problem description")
	GenerationInFlight     = errors.New("a generation request is already in flight")
	EvaluationInFlight     = errors.New("an evaluation is already in flight")
	SubmissionNotConfirmed = errors.New("submission not confirmed")
	NoPendingDelete        = errors.New("no deletion is pending confirmation")
	NoProblemLoaded        = errors.New("no problem loaded")
	UnknownLanguage        = errors.New("unknown language")
)
