package worker

import (
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/skitter/oerror"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run executes a single job. A panicking job is reported and does not take the worker down.
func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("component", "worker")
			})
			hub.Recover(oerror.New("worker job panicked: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues a CPU intensive function to be run by one of the workers. It blocks while
// every worker is busy and the queue is full.
func Submit(f func()) {
	workerQueue <- f
}
