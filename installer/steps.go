package installer

import "context"

// StepResult represents the outcome of a step execution.
type StepResult struct {
	// Skip indicates the step was skipped (already done, not needed).
	// A skipped step counts as successful.
	Skip bool

	// Info contains a success or informational message.
	// For skipped steps, this explains why it was skipped.
	Info string

	// Warn contains a non-fatal problem. The step is treated as completed
	// and the error is collected for the caller's warning report.
	Warn error

	// Err contains the error if the step failed. A failed step aborts the
	// remaining sequence.
	Err error
}

// Success creates a successful StepResult with an optional info message.
func Success(info string) StepResult {
	return StepResult{Info: info}
}

// Skipped creates a StepResult indicating the step was skipped.
func Skipped(reason string) StepResult {
	return StepResult{Skip: true, Info: reason}
}

// Warning creates a StepResult that completes the step but records err.
func Warning(err error) StepResult {
	return StepResult{Warn: err}
}

// Failed creates a StepResult with a fatal error.
func Failed(err error) StepResult {
	return StepResult{Err: err}
}

// Step represents a named action executed during an install or uninstall
// sequence.
type Step struct {
	// Name is the display name for the step (shown in progress output).
	Name string

	// Action executes the step and returns the result.
	Action func() StepResult
}

// runSteps executes steps sequentially, publishing progress before each one
// and checking for cancellation between steps. It returns the collected
// warnings and the first fatal error, if any. onProgress and log may be nil.
func runSteps(ctx context.Context, steps []Step, onProgress ProgressFunc, log *Logger) ([]error, error) {
	var warnings []error
	total := len(steps)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			if log != nil {
				log.Warn("cancelled before step %q", step.Name)
			}
			return warnings, ErrCancelled
		}

		if onProgress != nil {
			onProgress(i, total, step.Name)
		}
		if log != nil {
			log.Step("%s", step.Name)
		}

		result := step.Action()

		switch {
		case result.Err != nil:
			if log != nil {
				log.Error("step %q failed: %v", step.Name, result.Err)
			}
			return warnings, result.Err
		case result.Warn != nil:
			warnings = append(warnings, result.Warn)
			if log != nil {
				log.Warn("step %q: %v", step.Name, result.Warn)
			}
		case result.Skip:
			if log != nil {
				log.Info("step %q skipped: %s", step.Name, result.Info)
			}
		default:
			if log != nil && result.Info != "" {
				log.Info("step %q: %s", step.Name, result.Info)
			}
		}
	}

	if onProgress != nil {
		onProgress(total, total, "Complete")
	}
	return warnings, nil
}
