// Package cpe derives the CPE class of a vulnerability from a CPE 2.2 URI,
// per spec §4.2: the class is the character at position 6 of the URI
// (e.g. "cpe:/a:..." -> application), or Unknown if no CPE URI was found.
package cpe

// Class is one of the four CPE classes a vulnerability's configuration data
// can resolve to.
type Class string

const (
	// Application is CPE part "a".
	Application Class = "application"
	// OperatingSystem is CPE part "o".
	OperatingSystem Class = "operating_system"
	// Hardware is CPE part "h".
	Hardware Class = "hardware"
	// Unknown is used when no CPE URI was present.
	Unknown Class = "unknown"
)

// partIndex is the fixed position of the part character in a well-formed
// CPE 2.2 URI: "cpe:/" is five characters, so index 5 (0-based) holds it —
// spec §4.2 calls this "position 6", counting from 1.
const partIndex = 5

// FromURI derives the Class from a CPE 2.2 URI such as "cpe:/a:apache:struts".
// A URI too short to contain a part character, or carrying an unrecognized
// part character, resolves to Unknown rather than erroring: CPE class is an
// optional classification hint, never a fatal input per spec §7.
func FromURI(uri string) Class {
	if len(uri) <= partIndex {
		return Unknown
	}
	switch uri[partIndex] {
	case 'a':
		return Application
	case 'o':
		return OperatingSystem
	case 'h':
		return Hardware
	default:
		return Unknown
	}
}
