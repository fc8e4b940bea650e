package usecase

import (
	"context"
	"fmt"
	"strings"
)

// answerDocument answers from the document index, scoped to the institution
// the question names.
func (uc *implUseCase) answerDocument(ctx context.Context, text, contextText string) string {
	query := text
	if contextText != "" {
		// Context lines naming a different institution were already filtered
		// out by the relevance predicate; keep the enriched query short.
		if len(contextText) < 200 {
			query = fmt.Sprintf("Previous context: %s\n\nCurrent question: %s", strings.ReplaceAll(contextText, "\n", " "), text)
		}
	}

	docs, detected := uc.retriever.RelevantDocuments(ctx, query, DocumentTopK)
	if len(docs) == 0 {
		if detected != "" {
			return fmt.Sprintf("I don't have specific information about that for %s in my current documents. I recommend checking the official university website or contacting their admissions office directly for the most up-to-date information.", detected.DisplayName())
		}
		return "I don't have specific information about that topic in my current documents."
	}

	var chunks []string
	for _, doc := range docs {
		chunks = append(chunks, doc.Content)
	}
	docContext := strings.Join(chunks, "\n\n")

	var prompt string
	if detected != "" {
		name := detected.DisplayName()
		prompt = fmt.Sprintf(documentPromptTemplate, name, name, docContext, query, name)
	} else {
		prompt = fmt.Sprintf(genericDocumentPromptTemplate, docContext, query)
	}

	answer, err := uc.llm.Invoke(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "chat.answerDocument: model call failed: %v", err)
		return documentApology
	}
	answer = strings.TrimSpace(answer)

	// Guard against answers that silently drift to the wrong institution.
	if detected != "" && !strings.Contains(strings.ToLower(answer), strings.ToLower(string(detected))) {
		answer = fmt.Sprintf("Regarding %s: %s", detected.DisplayName(), answer)
	}
	return answer
}
