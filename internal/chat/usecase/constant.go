package usecase

import "regexp"

const (
	// DefaultLanguage is the language a new session starts with.
	DefaultLanguage = "en"

	// EventsPageSize is how many events are listed per page.
	EventsPageSize = 10

	// DocumentTopK is how many chunks feed the document answer.
	DocumentTopK = 5

	// historyTail caps the raw chat history lines fed to the general branch
	// when no relevant context was computed.
	historyTail = 40
)

// apologyReply is the single user-facing reply for any unexpected internal
// fault; the triggering condition is logged, never surfaced.
const apologyReply = "I'm sorry, I encountered an error processing your message. Please try again."

const documentApology = "I apologize, but I encountered an error while processing your question. Please try rephrasing it."

const capabilityReply = `I'm StudyBuddy, your AI assistant for navigating life as an international student in Turkey. Here's what I can help you with:

1. **Residence Permit & Visa**
   • Explain application steps, required documents, and timelines.
   • Answer questions about renewals, travel permissions, and visa types.

2. **University Admissions**
   • Walk you through international-student requirements at Bilgi, Boğaziçi, Sabancı, and more.
   • Clarify deadlines, language tests, and application materials.

3. **Bank Account Setup**
   • Guide you through opening an account at Garanti, Albaraka, Kuveyt Türk, etc.
   • Explain required ID, proof of address, and online banking activation.

4. **Transportation**
   • Show you how to get and top-up your İstanbulkart, and use buses/trams/metro.
   • Explain student discounts and monthly passes.

5. **Document Q&A**
   • Pull answers straight from the indexed guides (residency guides, admission rules, bank brochures).

6. **Local Events & Campus Life**
   • List cultural events, fairs, or student-club activities by month.

7. **General Questions**
   • Anything else about living in Turkey—language tips, cost of living, phone SIMs, neighborhood advice, etc.

**Language Support**: I can communicate with you in multiple languages including Turkish, Arabic, French, German, Spanish, and many more. Just ask me to switch languages!

What do you need help with today?`

const supportPromptTemplate = `You are a kind and supportive chatbot for international students in Turkey.
You help with mental health struggles and cultural differences.
Only answer questions about those topics. Be warm and helpful.

Student says: "%s"

Your response:`

const documentPromptTemplate = `You are StudyBuddy, a helpful AI assistant for international students in Turkey.

The user is asking specifically about %s. Focus your answer on information about this university only.

Context from %s documents:
%s

Question: %s

Provide a specific answer about %s. If you cannot find the information in the context, say so clearly.`

const genericDocumentPromptTemplate = `You are StudyBuddy, a helpful AI assistant for international students in Turkey.
Answer the question using only the provided context. If the context does not
contain the answer, say so clearly.

Context:
%s

Question: %s`

var (
	capabilityPattern   = regexp.MustCompile(`(?i)\bhow can you help me\??\s*$`)
	eventsFollowUp      = regexp.MustCompile(`(?i)\b(other|more|another|next)\b.*\bevents?\b`)
	markdownBoldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
)
