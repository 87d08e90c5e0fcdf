package gods

import (
	"time"
)

type delayer[T any] interface {
	stop()
	wait(msg *ScheduledMessage[T])
	available() bool
}

type delayState int

const (
	Idle delayState = iota
	Waiting
)

type delay[T any] struct {
	state            delayState
	respondIdleState bool

	idleChannel   chan<- bool
	egressChannel chan<- T
	cancelChannel chan bool
}

func newDelay[T any](respondIdleState bool, egressChannel chan<- T, idleChannel chan<- bool) *delay[T] {
	return &delay[T]{
		respondIdleState: respondIdleState,
		idleChannel:      idleChannel,
		egressChannel:    egressChannel,
		cancelChannel:    make(chan bool, 1),
	}
}

// stop sends a cancel signal to the current timer process
func (d *delay[T]) stop() {
	if d.state == Waiting {
		d.cancelChannel <- true
	}
}

// wait will create a timer based on the time from `msg.At` and dispatch the message to the egress channel asynchronously
func (d *delay[T]) wait(msg *ScheduledMessage[T]) {
	d.state = Waiting
	curTimer := time.NewTimer(time.Until(msg.At))

	go func() {
		for {
			select {
			case <-d.cancelChannel:
				curTimer.Stop()
				d.state = Idle
				if d.respondIdleState {
					d.idleChannel <- true
				}
				return
			case <-curTimer.C:
				d.egressChannel <- msg.Message
				d.state = Idle
				if d.respondIdleState {
					d.idleChannel <- true
				}
				return
			}
		}
	}()
}

// available returns whether the delay is able to accept a new message to wait on
func (d *delay[T]) available() bool {
	return d.state == Idle
}
