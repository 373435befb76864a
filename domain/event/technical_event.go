package event

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
)

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

// Diagnostic reports background task lifecycle changes.
type Diagnostic struct {
	Component string
	Status    string
}
