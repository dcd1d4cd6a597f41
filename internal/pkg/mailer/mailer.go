package mailer

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Message is one outbound email. Rendering and SMTP delivery live behind
// Sender; the queue only guarantees the primary request never waits on them.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender performs the actual delivery.
type Sender interface {
	Send(msg Message) error
}

// Queue dispatches messages on a background worker with retry and backoff.
// Enqueue never blocks: when the buffer is full the message is dropped and
// logged, because notification failures must not fail bookings.
type Queue struct {
	sender  Sender
	log     *logrus.Logger
	ch      chan Message
	done    chan struct{}
	retries int
	backoff time.Duration
}

func NewQueue(sender Sender, log *logrus.Logger, buffer int) *Queue {
	if buffer <= 0 {
		buffer = 64
	}
	q := &Queue{
		sender:  sender,
		log:     log,
		ch:      make(chan Message, buffer),
		done:    make(chan struct{}),
		retries: 3,
		backoff: 2 * time.Second,
	}
	go q.run()
	return q
}

// Enqueue submits a message for delivery and returns immediately.
func (q *Queue) Enqueue(msg Message) {
	select {
	case q.ch <- msg:
	default:
		q.log.WithFields(logrus.Fields{"to": msg.To, "subject": msg.Subject}).
			Warn("mail queue full, dropping message")
	}
}

// Close stops the worker after draining queued messages.
func (q *Queue) Close() {
	close(q.ch)
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for msg := range q.ch {
		q.deliver(msg)
	}
}

func (q *Queue) deliver(msg Message) {
	wait := q.backoff
	for attempt := 1; ; attempt++ {
		err := q.sender.Send(msg)
		if err == nil {
			return
		}
		if attempt > q.retries {
			q.log.WithFields(logrus.Fields{
				"to":       msg.To,
				"subject":  msg.Subject,
				"attempts": attempt,
			}).WithError(err).Error("mail delivery failed, giving up")
			return
		}
		q.log.WithFields(logrus.Fields{"to": msg.To, "attempt": attempt}).
			WithError(err).Warn("mail delivery failed, retrying")
		time.Sleep(wait)
		wait *= 2
	}
}

// LogSender is the default Sender when SMTP is not configured: it records the
// message instead of delivering it.
type LogSender struct {
	Log *logrus.Logger
}

func (s *LogSender) Send(msg Message) error {
	s.Log.WithFields(logrus.Fields{"to": msg.To, "subject": msg.Subject}).Info("mail (log only)")
	return nil
}
