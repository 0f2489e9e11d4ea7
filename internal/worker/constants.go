package worker

import "time"

// ============================================================================
// Pool Defaults
// ============================================================================

const (
	// DefaultJobTimeout bounds a single job's context
	DefaultJobTimeout = 10 * time.Second
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for pool lifecycle
const (
	LogMsgPoolDraining = "Worker pool draining queued jobs"
	LogMsgPoolStopped  = "Worker pool stopped"
	LogMsgQueueFull    = "Worker queue full, running job inline"
)

// ============================================================================
// Log Messages - Save Flush
// ============================================================================

const (
	LogMsgSaveFlushed = "Flushed save"
)
