package drs

import (
	"errors"
	"fmt"
)

// ErrDRSNotOwned is returned if the world state is asked for its DRS while
// somebody else holds it, or is handed back a DRS it did not give away.
var ErrDRSNotOwned = errors.New("drs: DRS is not owned by the world state")

// WorldState is the discourse state shared by the sentences of a text: the
// DRS with its referents, the history of event variables in order of
// mention, and the committed time constraints.
//
// A WorldState is not safe for concurrent use.
type WorldState struct {
	drs         *Drs
	lent        bool
	events      int
	history     []string
	constraints []TimeConstraint
	sentences   int
}

// NewWorldState creates an empty world state owning a fresh DRS.
func NewWorldState() *WorldState {
	return &WorldState{drs: New()}
}

// TakeDRS moves the DRS out of the world state. It has to be returned with
// Restore before it may be taken again.
func (ws *WorldState) TakeDRS() (*Drs, error) {
	if ws.lent {
		return nil, fmt.Errorf("cannot take DRS twice: %w", ErrDRSNotOwned)
	}
	ws.lent = true
	d := ws.drs
	ws.drs = nil
	return d, nil
}

// Restore moves a DRS back into the world state.
func (ws *WorldState) Restore(d *Drs) error {
	if !ws.lent {
		return fmt.Errorf("cannot restore DRS which has not been taken: %w", ErrDRSNotOwned)
	}
	if d == nil {
		return errors.New("drs: cannot restore nil DRS")
	}
	ws.drs = d
	ws.lent = false
	return nil
}

// HasDRS is true while the world state owns its DRS.
func (ws *WorldState) HasDRS() bool {
	return !ws.lent
}

// EndSentence is the commit point at a sentence boundary: pending time
// constraints of the DRS are committed and the DRS is reset to its main box.
// Referents stay available for the following sentences.
func (ws *WorldState) EndSentence() error {
	if ws.lent {
		return fmt.Errorf("cannot end sentence while DRS is lent out: %w", ErrDRSNotOwned)
	}
	ws.constraints = append(ws.constraints, ws.drs.takePending()...)
	ws.drs.ResetToMain()
	ws.sentences++
	tracer().Debugf("end of sentence %d, %d time constraints", ws.sentences, len(ws.constraints))
	return nil
}

// NextEventVar creates the next event variable e1, e2, … and appends it to
// the event history.
func (ws *WorldState) NextEventVar() string {
	ws.events++
	e := fmt.Sprintf("e%d", ws.events)
	ws.history = append(ws.history, e)
	return e
}

// EventHistory returns the event variables in order of mention.
func (ws *WorldState) EventHistory() []string {
	return ws.history
}

// TimeConstraints returns the committed time constraints.
func (ws *WorldState) TimeConstraints() []TimeConstraint {
	return ws.constraints
}

// CurrentReferenceTime returns the reference time of the DRS, "S" (speech
// time) if none has been introduced. While the DRS is lent out, it is "S".
func (ws *WorldState) CurrentReferenceTime() string {
	if ws.lent {
		return "S"
	}
	return ws.drs.ReferenceTime()
}

// Sentences counts the committed sentences.
func (ws *WorldState) Sentences() int {
	return ws.sentences
}
