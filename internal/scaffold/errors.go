package scaffold

import "fmt"

// Stage names one step of the scaffold pipeline.
type Stage string

// Pipeline stages that can fail fatally, in execution order. Install failures
// are reported without stopping the run.
const (
	StageTarget    Stage = "target"
	StageFetch     Stage = "fetch"
	StageInterview Stage = "interview"
	StageManifest  Stage = "manifest"
	StageEnv       Stage = "env"
)

// StageError is a fatal failure of one pipeline stage. Files written by
// earlier stages stay on disk.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
