package parser

import (
	"fmt"
	"strings"
)

// ModalPreference selects the reading of polysemous modals (may, can,
// could).
type ModalPreference int8

const (
	PreferNone ModalPreference = iota
	PreferEpistemic
	PreferDeontic
)

func (mp ModalPreference) String() string {
	switch mp {
	case PreferEpistemic:
		return "epistemic"
	case PreferDeontic:
		return "deontic"
	}
	return "none"
}

// Config holds the ambiguity-resolution strategy of a parser. A Config is a
// value; it is never changed after it has been created.
type Config struct {
	nounPriority    bool
	ppToNoun        bool
	collective      bool
	wideNegation    bool
	eventAdjectives bool
	modal           ModalPreference
	eventVar        string
}

// Option configures a Config.
type Option func(c *Config)

// NounPriority prefers the noun reading of lexically ambiguous words.
func NounPriority(b bool) Option {
	return func(c *Config) {
		c.nounPriority = b
	}
}

// AttachPPToNoun attaches prepositional phrases to the preceding object
// noun instead of the verb.
func AttachPPToNoun(b bool) Option {
	return func(c *Config) {
		c.ppToNoun = b
	}
}

// Collective reads plural subjects of mixed and collective verbs as groups.
func Collective(b bool) Option {
	return func(c *Config) {
		c.collective = b
	}
}

// WideNegation gives lexically negative verbs ("lack") scope over their
// object quantifier.
func WideNegation(b bool) Option {
	return func(c *Config) {
		c.wideNegation = b
	}
}

// PreferModal sets the preferred reading of polysemous modals.
func PreferModal(mp ModalPreference) Option {
	return func(c *Config) {
		c.modal = mp
	}
}

// EventAdjectives reads adjectives like "beautiful" in front of agentive
// nouns ("a beautiful dancer") as modifiers of the underlying event.
func EventAdjectives(b bool) Option {
	return func(c *Config) {
		c.eventAdjectives = b
	}
}

// EventVar sets the name of the event variable of the sentence. Discourse
// compilation uses this to number events across sentences.
func EventVar(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.eventVar = name
		}
	}
}

// NewConfig creates a configuration. Without options, the parser prefers
// verbs over nouns, attaches PPs to the verb, reads plurals distributively,
// gives negation narrow scope and uses "e" as the event variable.
func NewConfig(opts ...Option) Config {
	c := Config{eventVar: "e"}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// With derives a new configuration from c.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NounPriority is true if noun readings are preferred.
func (c Config) NounPriority() bool { return c.nounPriority }

// AttachPPToNoun is true if PPs attach to object nouns.
func (c Config) AttachPPToNoun() bool { return c.ppToNoun }

// Collective is true for collective plural readings.
func (c Config) Collective() bool { return c.collective }

// WideNegation is true if lexically negative verbs take wide scope.
func (c Config) WideNegation() bool { return c.wideNegation }

// EventAdjectives is true if event-modifying adjective readings are used.
func (c Config) EventAdjectives() bool { return c.eventAdjectives }

// ModalPreference returns the preferred modal reading.
func (c Config) ModalPreference() ModalPreference { return c.modal }

// EventVar returns the event variable name.
func (c Config) EventVar() string {
	if c.eventVar == "" {
		return "e"
	}
	return c.eventVar
}

func (c Config) String() string {
	var flags []string
	if c.nounPriority {
		flags = append(flags, "noun-priority")
	}
	if c.ppToNoun {
		flags = append(flags, "pp-to-noun")
	}
	if c.collective {
		flags = append(flags, "collective")
	}
	if c.wideNegation {
		flags = append(flags, "wide-negation")
	}
	if c.eventAdjectives {
		flags = append(flags, "event-adjectives")
	}
	if c.modal != PreferNone {
		flags = append(flags, c.modal.String())
	}
	return fmt.Sprintf("config[%s|%s]", strings.Join(flags, ","), c.EventVar())
}
