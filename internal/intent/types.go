package intent

// Intent is one of the fixed conversation purposes a message routes to.
type Intent string

const (
	Profile  Intent = "profile"
	Events   Intent = "events"
	Document Intent = "document"
	Support  Intent = "support"
	General  Intent = "general"
)

// Parse maps a raw classifier answer to an Intent. Anything outside the valid
// set resolves to General; an unparseable model answer is not an error.
func Parse(raw string) Intent {
	switch Intent(raw) {
	case Profile, Events, Document, Support, General:
		return Intent(raw)
	default:
		return General
	}
}
