package intent

import "regexp"

const zeroShotPrompt = `You are an intent classifier for StudyBuddy, an AI assistant for international students in Turkey.

Classify this student message into exactly one category:

Categories:
- profile: Questions about personal information (name, age, location)
- events: Questions about local events and activities
- document: Questions about university admissions, visas, permits, applications, requirements
- support: Emotional support, mental health, cultural adjustment, homesickness
- general: General knowledge, greetings, math, definitions, casual chat

Student message: "%s"

Reply with exactly one word: profile, events, document, support, or general.`

const fewShotExamples = `Examples:
   "What's my name?"                                   → profile
   "How old am I?"                                     → profile
   "List events happening in October."                  → events
   "What events are there in August?"                   → events
   "How do I apply for a residence permit?"             → document
   "What documents are required for Istanbul Bilgi admission?" → document
   "What are Sabancı University's undergrad requirements?" → document
   "Which docs do Boğaziçi University candidates need?" → document
   "How can I become a Garanti BBVA customer remotely?" → document
   "How do I become an Albaraka customer?"                → document
   "How do I pre-apply to Kuveyt Türk?"                 → document
   "What should I do after arriving in Istanbul?"       → document
   "What is 2+2?"                                      → general
   "I'm feeling homesick, can you help?"               → support
   "I'm stressed about my visa, what should I do?"     → support
   "why do Turkish people drink tea a lot, can you give me some difference between Turkish culture and American culture?"     → support
   "What does LOL mean?"                               → general
   "Hi, how are you today?"                            → general`

const fewShotPrompt = `You are StudyBuddy's router. Last intent: %s.

Decide which of these 5 categories the user is asking:
• profile   – their personal info (name, age, location)
• events    – local events in a given month
• document  – answered by the uploaded PDF documents
• support   – emotional/mental-health support and cultural adjustment questions
• general   – world knowledge, math, abbreviations, chit-chat

%s

User question:
"""%s"""

Reply with exactly one word: profile, events, document, support, or general.`

// simplePatterns mark inputs confident enough for the zero-shot pass.
var simplePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(hi|hello|hey|thanks?|thank you)\b`),
	regexp.MustCompile(`(?i)^what('?s| is) my (name|age|location)\b`),
	regexp.MustCompile(`(?i)^(good morning|good evening|goodbye|bye)\b`),
}

// maxSimpleTokens is the word count below which zero-shot classification runs.
const maxSimpleTokens = 4

// documentKeywords force the document intent over a spurious events answer and
// feed the continuation rule. Hand-tuned, replaceable.
var documentKeywords = []string{
	"admission", "application", "deadline", "requirements", "university",
	"tuition", "fee", "scholarship", "visa", "document", "transcript",
	"gpa", "toefl", "ielts", "program", "department", "faculty",
}

// continuationKeywords is the wider set the document-continuation rule accepts,
// including institution names and residency vocabulary.
var continuationKeywords = []string{
	"admission", "application", "deadline", "requirements", "university",
	"tuition", "fee", "scholarship", "visa", "document", "transcript",
	"gpa", "toefl", "ielts", "program", "department", "faculty",
	"permit", "residence", "website", "apply", "sabanci", "bilgi", "bogazici", "koc",
}

// followUpCues signal that an ambiguous message continues the previous thread.
var followUpCues = []string{
	"what about", "and for", "how about", "what if", "also",
	"website", "link", "where", "how", "when can i",
}

// nonDocumentIndicators mark clear greetings/general questions that break a
// document continuation, unless document vocabulary appears alongside them.
var nonDocumentIndicators = []string{
	"what is", "what does", "tell me about", "explain",
	"hi", "hello", "how are you", "thanks", "thank you",
}

var nonDocumentEscapeKeywords = []string{
	"university", "admission", "deadline", "application", "requirement", "document", "visa", "permit",
}

// profileQueryPatterns are authoritative over the model for the profile
// intent, in every supported pattern language.
var profileQueryPatterns = []*regexp.Regexp{
	// English
	regexp.MustCompile(`(?i)what('?s| is) my (name|age|location)`),
	regexp.MustCompile(`(?i)who am i`),
	regexp.MustCompile(`(?i)tell me about myself`),
	// Spanish
	regexp.MustCompile(`(?i)cuál es mi (nombre|edad)`),
	regexp.MustCompile(`(?i)dónde vivo`),
	regexp.MustCompile(`(?i)quién soy`),
	// Turkish
	regexp.MustCompile(`(?i)benim (adım|yaşım) nedir`),
	regexp.MustCompile(`(?i)kim(im|sin)`),
	regexp.MustCompile(`(?i)nerede yaşıyorum`),
	// Arabic
	regexp.MustCompile(`ما اسمي`),
	regexp.MustCompile(`كم عمري`),
	regexp.MustCompile(`أين أسكن`),
	regexp.MustCompile(`من أنا`),
	// French
	regexp.MustCompile(`(?i)quel est mon (nom|âge)`),
	regexp.MustCompile(`(?i)où j'habite`),
	regexp.MustCompile(`(?i)qui suis-je`),
	// German
	regexp.MustCompile(`(?i)wie heiße ich`),
	regexp.MustCompile(`(?i)wie alt bin ich`),
	regexp.MustCompile(`(?i)wo wohne ich`),
	regexp.MustCompile(`(?i)wer bin ich`),
}
