package gods

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/alexsniffin/gods/heap"
)

// dispatcherState represents state for a Dispatcher
type dispatcherState int

const (
	Paused dispatcherState = iota
	Processing
	Shutdown
	ShutdownAndDrain
)

// messageCompare ranks earlier dispatch times higher. When guaranteeOrder is
// set, messages scheduled for the same time rank by ingress order so they
// dispatch FIFO.
func messageCompare[T any](guaranteeOrder bool) heap.CompareFunc[*ScheduledMessage[T]] {
	return func(a, b *ScheduledMessage[T]) int {
		switch {
		case a.At.Before(b.At):
			return 1
		case b.At.Before(a.At):
			return -1
		}
		if guaranteeOrder {
			switch {
			case a.seq < b.seq:
				return 1
			case b.seq < a.seq:
				return -1
			}
		}
		return 0
	}
}

// Dispatcher processes the ingress and dispatching of scheduled messages
type Dispatcher[T any] struct {
	state          dispatcherState
	maxMessages    int
	guaranteeOrder bool
	seq            uint64

	pq          *heap.Heap[*ScheduledMessage[T]]
	nextMessage *ScheduledMessage[T]
	delayer     delayer[T]

	delayerIdleChannel chan bool
	dispatchChannel    chan T
	ingressChannel     chan *ScheduledMessage[T]
	shutdown           chan error
	stopProcess        chan bool
}

// NewDispatcher creates a new instance of a Dispatcher
func NewDispatcher[T any](config *DispatcherConfig) (*Dispatcher[T], error) {
	if config.MaxMessages <= 0 {
		return nil, errors.New("MaxMessages should be greater than 0")
	}

	newIdleChannel := make(chan bool, 1)
	newDispatchChannel := make(chan T, config.DispatchChannelSize)
	newPq, err := heap.New[*ScheduledMessage[T]](config.MaxMessages, messageCompare[T](config.GuaranteeOrder), nil)
	if err != nil {
		return nil, err
	}

	return &Dispatcher[T]{
		pq:                 newPq,
		maxMessages:        config.MaxMessages,
		guaranteeOrder:     config.GuaranteeOrder,
		delayer:            newDelay(!config.GuaranteeOrder, newDispatchChannel, newIdleChannel),
		delayerIdleChannel: newIdleChannel,
		dispatchChannel:    newDispatchChannel,
		ingressChannel:     make(chan *ScheduledMessage[T], config.IngressChannelSize),
		shutdown:           make(chan error),
		stopProcess:        make(chan bool),
	}, nil
}

// Shutdown will attempt to shutdown the Dispatcher within the context deadline, otherwise terminating the process
// ungracefully
//
// If drainImmediately is true, then all messages will be dispatched immediately regardless of the schedule set
func (d *Dispatcher[T]) Shutdown(ctx context.Context, drainImmediately bool) error {
	// if paused, resume the process in order to drain messages
	if d.state == Paused {
		if d.nextMessage != nil {
			d.delayer.wait(d.nextMessage)
		}
		go d.process()
	}

	if drainImmediately {
		d.state = ShutdownAndDrain
	} else {
		d.state = Shutdown
	}

	// block new messages and let the channel drain
	close(d.ingressChannel)

	for {
		select {
		case <-ctx.Done():
			// forcefully kill the process regardless of messages left
			close(d.stopProcess)
			close(d.dispatchChannel)
			return errors.New("failed to gracefully drain and shutdown dispatcher within deadline")
		default:
			// wait for the ingress channel and heap to drain
			if len(d.ingressChannel) == 0 && d.pq.Len() == 0 && d.delayer.available() {
				close(d.stopProcess)
				close(d.dispatchChannel)
				return nil
			}
		}
	}
}

// Start initializes the processing of scheduled messages
func (d *Dispatcher[T]) Start() error {
	if d.state == Shutdown || d.state == ShutdownAndDrain {
		return errors.New("dispatcher is already running and shutting down")
	} else if d.state == Processing {
		return errors.New("dispatcher is already running")
	}

	d.state = Processing
	d.process()
	return nil
}

// Pause updates the state of the Dispatcher to stop processing messages
func (d *Dispatcher[T]) Pause() error {
	if d.state == Shutdown || d.state == ShutdownAndDrain {
		return errors.New("dispatcher is shutting down and cannot be paused")
	} else if d.state == Paused {
		return errors.New("dispatcher is already paused")
	}

	d.state = Paused
	d.stopProcess <- true
	d.delayer.stop()
	return nil
}

// Resume updates the state of the Dispatcher to start processing messages and starts the timer for the last message
// being processed
func (d *Dispatcher[T]) Resume() error {
	if d.state == Shutdown || d.state == ShutdownAndDrain {
		return errors.New("dispatcher is shutting down")
	} else if d.state == Processing {
		return errors.New("dispatcher is already running")
	}

	d.state = Processing
	if d.nextMessage != nil {
		d.delayer.wait(d.nextMessage)
	}
	d.process()
	return nil
}

// process handles the processing of scheduled messages
func (d *Dispatcher[T]) process() {
	for {
		select {
		case <-d.stopProcess:
			return
		default:
			// dispatch everything left immediately
			if d.state == ShutdownAndDrain {
				d.drainDelayer()
				d.drainHeap()
			}

			// check if we've exceeded the maximum messages to store in the heap
			if d.pq.Len() >= d.maxMessages {
				if !d.guaranteeOrder && len(d.delayerIdleChannel) > 0 {
					<-d.delayerIdleChannel
					d.waitNextMessage()
				} else if d.delayer.available() {
					d.waitNextMessage()
				}
				// skip ingest to prevent heap from exceeding MaxMessages
				continue
			} else if d.pq.Len() > 0 {
				if !d.guaranteeOrder && len(d.delayerIdleChannel) > 0 {
					<-d.delayerIdleChannel
					d.waitNextMessage()
				} else if d.delayer.available() {
					d.waitNextMessage()
				}
			}

			if len(d.ingressChannel) > 0 {
				if msg, ok := <-d.ingressChannel; ok {
					d.ingest(msg)
				}
			}
		}
	}
}

// ingest tags a new message and routes it to the delayer or the heap
func (d *Dispatcher[T]) ingest(msg *ScheduledMessage[T]) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.seq = d.seq
	d.seq++

	if d.state == ShutdownAndDrain {
		// dispatch the new message immediately
		d.dispatchChannel <- msg.Message
	} else if d.nextMessage != nil && msg.At.Before(d.nextMessage.At) {
		_ = d.pq.Push(d.nextMessage)
		d.nextMessage = msg
		d.delayer.stop()
		if !d.guaranteeOrder {
			<-d.delayerIdleChannel
		}
		d.delayer.wait(msg)
	} else if d.nextMessage == nil {
		d.nextMessage = msg
		d.delayer.wait(msg)
	} else {
		_ = d.pq.Push(msg)
	}
}

func (d *Dispatcher[T]) waitNextMessage() {
	msg, ok := d.pq.Pop()
	if !ok {
		return
	}
	d.nextMessage = msg
	d.delayer.wait(msg)
}

// drainDelayer cancels a pending timer and dispatches its message without
// waiting for the schedule
func (d *Dispatcher[T]) drainDelayer() {
	if d.nextMessage == nil || d.delayer.available() {
		return
	}
	d.delayer.stop()
	if !d.guaranteeOrder {
		<-d.delayerIdleChannel
	}
	d.dispatchChannel <- d.nextMessage.Message
	d.nextMessage = nil
}

func (d *Dispatcher[T]) drainHeap() {
	for {
		msg, ok := d.pq.Pop()
		if !ok {
			return
		}
		// dispatch the message immediately
		d.dispatchChannel <- msg.Message
	}
}

// IngressChannel returns the send-only channel of type `ScheduledMessage`
func (d *Dispatcher[T]) IngressChannel() chan<- *ScheduledMessage[T] {
	return d.ingressChannel
}

// DispatchChannel returns a receive-only channel of the message type
func (d *Dispatcher[T]) DispatchChannel() <-chan T {
	return d.dispatchChannel
}
