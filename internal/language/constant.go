package language

import "regexp"

// WorkingLanguage is the internal language all classification, memory and
// retrieval logic operates on. User text is bridged to and from it.
const WorkingLanguage = "en"

// SupportedLanguages maps ISO 639-1 codes to display names.
var SupportedLanguages = map[string]string{
	"en": "English",
	"tr": "Turkish",
	"ar": "Arabic",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"it": "Italian",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"hi": "Hindi",
	"ur": "Urdu",
	"fa": "Persian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"sv": "Swedish",
	"no": "Norwegian",
	"da": "Danish",
	"fi": "Finnish",
}

// IsSupported reports whether code is a supported language code.
func IsSupported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// Hand-tuned detection signals. Generic statistical detectors fail on short,
// code-mixed or ASCII-only inputs, so explicit high-precedence signals run
// first and the detector is only a fallback.
var (
	arabicScript = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}]`)

	spanishChars = []rune{'ñ', 'á', 'é', 'í', 'ó', 'ú', '¿', '¡'}
	spanishWords = []string{
		"¿", "¡", "qué", "cómo", "dónde", "cuándo", "por qué", "hola", "gracias",
		"por favor", "sí", "solicito", "permiso", "residencia", "me llamo", "tengo", "soy",
	}

	turkishChars = []rune{'ç', 'ğ', 'ı', 'ö', 'ş', 'ü'}
	turkishWords = []string{"merhaba", "nasıl", "nerede", "yaşıyorum", "adım", "ben", "var", "yok"}

	frenchChars = []rune{'à', 'è', 'é', 'ê', 'ë', 'î', 'ï', 'ô', 'ù', 'û', 'ü', 'ÿ', 'ç'}
	frenchWords = []string{
		"comment", "où", "quand", "pourquoi", "bonjour", "merci", "je", "tu", "il",
		"elle", "nous", "vous", "suis", "êtes", "avec", "dans", "pour", "sur",
	}

	englishWords = []string{
		"the", "and", "or", "but", "that", "this", "what", "how", "when", "where", "why", "who",
		"can", "will", "would", "should", "could", "may", "might", "must",
		"about", "application", "university", "deadline", "requirement", "document", "need", "want", "help", "please",
		"are", "is", "was", "were", "have", "has", "had", "do", "does", "did", "for", "to", "of", "in", "on", "at",
	}

	englishPhrases = []string{
		"what are", "what is", "how do", "how can", "when is", "where is", "why is", "what about", "how about",
	}

	englishPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(what|how|when|where|why|who)\s+(are|is|do|can|will|would|should|could)\b`),
		regexp.MustCompile(`\b(the|a|an)\s+\w+\b`),
		regexp.MustCompile(`\b\w+ing\b`),
		regexp.MustCompile(`\b\w+ed\b`),
		regexp.MustCompile(`\b(application|university|deadline|requirement)\b`),
	}

	// meaningfulChars keeps letters plus the script ranges we care about;
	// everything else is stripped before the minimum-length check.
	meaningfulChars = regexp.MustCompile(`[^\w\s\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}\x{00C0}-\x{017F}\x{0100}-\x{024F}¿¡]`)
)

// Language-change request detection.
var (
	changeRequestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:change|switch|set).*(?:language|lang)`),
		regexp.MustCompile(`(?i)speak.*(?:turkish|arabic|french|german|spanish|english)`),
		regexp.MustCompile(`(?i)(?:türkçe|العربية|français|deutsch|español|english).*(?:speak|talk|chat)`),
		regexp.MustCompile(`(?i)dil.*(?:değiştir|seç)`),
		regexp.MustCompile(`لغة.*(?:تغيير|اختيار)`),
	}

	// requestedLanguage maps names of a language (in several languages) to its
	// code. Order matters: first match wins.
	requestedLanguage = []struct {
		pattern *regexp.Regexp
		code    string
	}{
		{regexp.MustCompile(`(?i)turkish|türkçe|turkce`), "tr"},
		{regexp.MustCompile(`(?i)arabic|عربي|العربية`), "ar"},
		{regexp.MustCompile(`(?i)english|ingilizce|İngilizce`), "en"},
		{regexp.MustCompile(`(?i)french|français|fransızca`), "fr"},
		{regexp.MustCompile(`(?i)german|deutsch|almanca`), "de"},
		{regexp.MustCompile(`(?i)spanish|español|ispanyolca`), "es"},
		{regexp.MustCompile(`(?i)italian|italiano|italyanca`), "it"},
		{regexp.MustCompile(`(?i)russian|русский|rusça`), "ru"},
		{regexp.MustCompile(`(?i)chinese|中文|çince`), "zh"},
		{regexp.MustCompile(`(?i)japanese|日本語|japonca`), "ja"},
		{regexp.MustCompile(`(?i)korean|한국어|korece`), "ko"},
		{regexp.MustCompile(`(?i)hindi|हिन्दी|hintçe`), "hi"},
		{regexp.MustCompile(`(?i)urdu|اردو|urduca`), "ur"},
		{regexp.MustCompile(`(?i)persian|فارسی|farsça`), "fa"},
		{regexp.MustCompile(`(?i)portuguese|português|portekizce`), "pt"},
	}
)
