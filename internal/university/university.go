package university

import "strings"

// University is one of the institutions the document index covers.
type University string

const (
	Sabanci           University = "sabanci"
	Bilgi             University = "bilgi"
	Bogazici          University = "bogazici"
	Koc               University = "koc"
	IstanbulTechnical University = "istanbul technical"
)

// DisplayName returns the institution name as shown in replies.
func (u University) DisplayName() string {
	switch u {
	case Sabanci:
		return "Sabancı University"
	case Bilgi:
		return "Istanbul Bilgi University"
	case Bogazici:
		return "Boğaziçi University"
	case Koc:
		return "Koç University"
	case IstanbulTechnical:
		return "Istanbul Technical University"
	default:
		return string(u)
	}
}

// aliases is hand-tuned and replaceable; matching is substring-based over the
// lowered query, so multi-word aliases come before their prefixes.
var aliases = map[University][]string{
	Sabanci:           {"sabanci", "sabancı", "sabanci university"},
	Bilgi:             {"bilgi", "istanbul bilgi", "ibu", "bilgi university"},
	Bogazici:          {"bogazici", "boğaziçi", "boun", "bogazici university"},
	Koc:               {"koc", "koç", "koc university"},
	IstanbulTechnical: {"itu", "istanbul technical", "istanbul teknik"},
}

// detection order is fixed so overlapping aliases resolve deterministically
var detectionOrder = []University{Sabanci, Bilgi, Bogazici, Koc, IstanbulTechnical}

// Detect returns the institution named in text, or "" when none matches.
func Detect(text string) University {
	lowered := strings.ToLower(text)
	for _, u := range detectionOrder {
		for _, alias := range aliases[u] {
			if containsToken(lowered, alias) {
				return u
			}
		}
	}
	return ""
}

// containsToken matches alias as a whole token so "koc" does not fire inside
// words like "kocaeli" by accident. Short aliases would otherwise be noisy.
func containsToken(lowered, alias string) bool {
	idx := 0
	for {
		i := strings.Index(lowered[idx:], alias)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isWordByte(lowered[i-1])
		afterIdx := i + len(alias)
		after := afterIdx >= len(lowered) || !isWordByte(lowered[afterIdx])
		if before && after {
			return true
		}
		idx = i + len(alias)
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
