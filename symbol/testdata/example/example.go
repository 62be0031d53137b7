// Package example exercises symbol resolution in tests.
package example

// Answer documents an exported constant.
const Answer = 42

// Greeter produces greeting messages.
//
// # Arguments
//     name: Who to greet.
type Greeter struct {
	// Name is the recipient of the greeting.
	Name string

	// Loud switches the greeting to upper case.
	Loud bool
}

// NewGreeter constructs a Greeter for the named recipient.
func NewGreeter(name string, loud bool) *Greeter {
	return &Greeter{Name: name, Loud: loud}
}

// Greet returns a friendly message.
//
// # Arguments
//     punctuation: Appended to the greeting.
//     extras: Additional lines to include.
//
// # Returns
//     The assembled greeting.
func (g *Greeter) Greet(punctuation string, extras ...string) string {
	out := "hello " + g.Name + punctuation
	for _, e := range extras {
		out += "\n" + e
	}
	return out
}

// Shout renders a greeting in upper case regardless of configuration.
func Shout(g *Greeter) string {
	return "HELLO " + g.Name
}
