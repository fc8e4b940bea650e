package usecase

import (
	"studybuddy/internal/chat/repository"
)

// convertMarkdown converts **bold** markdown into HTML bold tags for chat
// clients that render HTML.
func convertMarkdown(text string) string {
	return markdownBoldPattern.ReplaceAllString(text, "<b>$1</b>")
}

func repositoryUpdate(lastIntent string, params map[string]string) repository.UpdateSessionOptions {
	opt := repository.UpdateSessionOptions{LastIntent: &lastIntent}
	if params != nil {
		opt.LastParams = params
	}
	return opt
}

func userLanguageUpdate(lang string) repository.UpdateSessionOptions {
	return repository.UpdateSessionOptions{UserLanguage: &lang}
}

func profileUpdate(profile map[string]string) repository.UpdateSessionOptions {
	return repository.UpdateSessionOptions{UserProfile: profile}
}
