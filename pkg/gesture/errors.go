package gesture

import "fmt"

// ProtocolError reports a gesture event received out of sequence or an
// unrecognized gesture phase. It always indicates a caller bug, never a
// recoverable runtime condition: hosts must let it propagate rather
// than swallow it, since ignoring it desynchronizes the visual state
// from the logical grid state.
type ProtocolError struct {
	Gesture string // "drag" or "resize"
	Phase   Phase  // the offending event
	State   string // machine state when the event arrived
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("gesture: %s %s received in state %s", e.Gesture, e.Phase, e.State)
}

// InvalidStateError reports that the gesture geometry could not be
// computed, e.g. a drag start on an element with no positioning
// ancestor. Fatal for that gesture attempt.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "gesture: " + e.Reason
}
