package ports

import "time"

type MetricsPort interface {
	RecordRentStarted()
	RecordRentReturned(amount float64, elapsed time.Duration)
	RecordFailure(operation string, err error)
}
