package domain

// Stage identifies one step of the deployment pipeline. Stages run strictly
// in declaration order.
type Stage int

const (
	// StageValidate checks the inputs and tool availability.
	StageValidate Stage = iota
	// StageLayout decides the AppDir style and computes its directories.
	StageLayout
	// StageStructure creates the AppDir skeleton on disk.
	StageStructure
	// StageResolve walks the dependency closure of the main binary.
	StageResolve
	// StageDetect establishes the framework version from the closure.
	StageDetect
	// StageLibraries copies bundled libraries into the AppDir.
	StageLibraries
	// StageStackPatch clears the executable bit on GNU_STACK segments.
	StageStackPatch
	// StageRunPaths rewrites run paths to $ORIGIN-relative entries.
	StageRunPaths
	// StagePlugins deploys framework plugins and QML modules.
	StagePlugins
	// StageExtras deploys translations, WebEngine resources and desktop files.
	StageExtras
	// StageVerify audits the finished AppDir.
	StageVerify
)

// String returns the stage name used in logs and progress reports.
func (s Stage) String() string {
	switch s {
	case StageValidate:
		return "validate"
	case StageLayout:
		return "layout"
	case StageStructure:
		return "structure"
	case StageResolve:
		return "resolve"
	case StageDetect:
		return "detect"
	case StageLibraries:
		return "libraries"
	case StageStackPatch:
		return "stack-patch"
	case StageRunPaths:
		return "run-paths"
	case StagePlugins:
		return "plugins"
	case StageExtras:
		return "extras"
	case StageVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// Optional reports whether a stage failure is logged and skipped rather than
// aborting the run.
func (s Stage) Optional() bool {
	switch s {
	case StageStackPatch, StageExtras:
		return true
	default:
		return false
	}
}

// Stages returns all pipeline stages in execution order.
func Stages() []Stage {
	return []Stage{
		StageValidate,
		StageLayout,
		StageStructure,
		StageResolve,
		StageDetect,
		StageLibraries,
		StageStackPatch,
		StageRunPaths,
		StagePlugins,
		StageExtras,
		StageVerify,
	}
}

// StageStatus represents the lifecycle state of a pipeline stage.
type StageStatus string

const (
	// StageStatusPending indicates the stage has not started yet.
	StageStatusPending StageStatus = "pending"
	// StageStatusRunning indicates the stage is currently executing.
	StageStatusRunning StageStatus = "running"
	// StageStatusCompleted indicates the stage finished successfully.
	StageStatusCompleted StageStatus = "completed"
	// StageStatusFailed indicates the stage failed.
	StageStatusFailed StageStatus = "failed"
	// StageStatusSkipped indicates an optional stage was skipped after an error.
	StageStatusSkipped StageStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state.
func (s StageStatus) IsTerminal() bool {
	switch s {
	case StageStatusCompleted, StageStatusFailed, StageStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard
// slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
