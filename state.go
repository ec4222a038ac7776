package blockcss

import (
	"slices"
	"strings"
)

// Declaration is one pending property:value pair. A declaration with an
// empty Property is raw declaration text and is emitted verbatim.
type Declaration struct {
	Property string
	Value    string
}

// String renders the declaration in minified form.
func (d Declaration) String() string {
	if d.Property == "" {
		return d.Value
	}
	return d.Property + ":" + d.Value + ";"
}

// State is the complete state of one builder. Its methods are pure: they
// return the next state and never modify the receiver.
type State struct {
	Selector    string
	States      []string
	MediaQuery  string
	Pending     []Declaration
	Output      string
	MediaOutput string

	// Emitted counts declarations written to Pending; Suppressed counts
	// values dropped by the empty gate.
	Emitted    int
	Suppressed int
}

// Append returns the state with d added to the pending declarations.
func (s State) Append(d Declaration) State {
	s.Pending = append(slices.Clip(s.Pending), d)
	s.Emitted++
	return s
}

// Suppress returns the state with one more dropped value recorded.
func (s State) Suppress() State {
	s.Suppressed++
	return s
}

// Flush moves the pending declarations into the base output, or into the
// media-query output when a media query is set, and clears them.
func (s State) Flush() State {
	body := s.pendingText()
	s.Pending = nil
	if body == "" {
		return s
	}

	block := s.SelectorOutput() + "{" + body + "}"
	if s.MediaQuery != "" {
		s.MediaOutput += block
	} else {
		s.Output += block
	}
	return s
}

// SwitchSelector flushes under the current selector and activates selector.
// Nothing is flushed before the first selector is set.
func (s State) SwitchSelector(selector string) State {
	if s.Selector != "" {
		s = s.Flush()
	}
	s.Selector = selector
	return s
}

// SelectorOutput is the selector text a flush is written under: the
// selector itself, or one selector+state entry per state joined by commas.
func (s State) SelectorOutput() string {
	if len(s.States) == 0 {
		return s.Selector
	}
	parts := make([]string, 0, len(s.States))
	for _, state := range s.States {
		parts = append(parts, s.Selector+state)
	}
	return strings.Join(parts, ",")
}

func (s State) pendingText() string {
	var b strings.Builder
	for _, d := range s.Pending {
		b.WriteString(d.String())
	}
	return b.String()
}
