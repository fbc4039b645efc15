package demo

import "github.com/rs/zerolog"

// Notifier sends person notifications through a structured logger. It is
// a scoped resource: callers close it once they are done sending.
type Notifier struct {
	log    zerolog.Logger
	sent   int
	closed bool
}

// NewNotifier builds a notifier writing through the given logger.
func NewNotifier(log zerolog.Logger) *Notifier {
	return &Notifier{log: log}
}

// Notify records that a person was seen.
func (n *Notifier) Notify(p Person) {
	n.sent++
	n.log.Info().
		Str("person", p.Name).
		Str("id", p.ID.String()).
		Msg("notified")
}

// Sent reports how many notifications went out.
func (n *Notifier) Sent() int {
	return n.sent
}

// Close flushes the notifier. Closing an already closed notifier is a no-op.
func (n *Notifier) Close() error {
	if n.closed {
		return nil
	}
	n.closed = true
	n.log.Debug().Int("sent", n.sent).Msg("notifier closed")
	return nil
}
