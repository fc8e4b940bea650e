package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"studybuddy/internal/chat"
	"studybuddy/internal/model"
)

// Profile fact extraction patterns, per language. A matched capture that is
// really an emotional state ("I am tired") must not become a name.
var (
	nameStopWords = map[string]struct{}{
		"feeling": {}, "going": {}, "doing": {}, "thinking": {}, "looking": {},
		"working": {}, "studying": {}, "living": {}, "depressed": {}, "happy": {},
		"sad": {}, "angry": {}, "tired": {}, "fine": {}, "okay": {}, "good": {}, "bad": {},
		"stressed": {},
	}

	profileFieldPattern = regexp.MustCompile(`(?i)my (name|age|location)`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:my name is|call me|i am called|i'm called)\s+([A-Za-z\x{0600}-\x{06FF}]+)(?:\s|$)`),
		regexp.MustCompile(`(?i)(?:^|\s)i am\s+([A-Za-z][a-z]+)(?:\s|$)`),
		regexp.MustCompile(`(?i)(?:me llamo|mi nombre es|soy)\s+([A-Za-z\x{00C0}-\x{017F}]+)(?:\s|$)`),
		regexp.MustCompile(`(?i)(?:adım|ismim|benim adım)\s+([A-Za-zÇĞıİÖŞÜçğiöşü]+)(?:\s|$)`),
		regexp.MustCompile(`اسمي\s+([\x{0600}-\x{06FF}]+)`),
		regexp.MustCompile(`(?i)(?:je m'appelle|mon nom est)\s+([A-Za-zÀ-ÿ]+)(?:\s|$)`),
		regexp.MustCompile(`(?i)(?:ich heiße|mein name ist)\s+([A-Za-zÄÖÜäöüß]+)(?:\s|$)`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:I live in|I am from|I'm from)\s+([A-Za-z\x{0600}-\x{06FF}\s]+?)(?:[.,!?]|$)`),
		regexp.MustCompile(`(?i)(?:vivo en|soy de|vengo de)\s+([A-Za-z\x{00C0}-\x{017F}\s]+?)(?:[.,!?]|$)`),
		regexp.MustCompile(`(?i)(?:أسكن في|أنا من|أعيش في)\s+([\x{0600}-\x{06FF}\s]+?)(?:[.,!?]|$)`),
	}

	agePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:I am|I'm)\s+(\d{1,2})\s*(?:years old|yo)(?:\s|$)`),
		regexp.MustCompile(`(?i)(?:tengo)\s+(\d{1,2})\s*(?:años)(?:\s|$)`),
		regexp.MustCompile(`(?i)(\d{1,2})\s*(?:yaşındayım|yaşında)(?:\s|$)`),
		regexp.MustCompile(`(?:عمري|أنا عمري)\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)(?:j'ai)\s+(\d{1,2})\s*(?:ans)(?:\s|$)`),
	}
)

// ExtractProfileFacts pulls self-declared name/location/age facts out of a
// working-language message. Empty map means nothing was found.
func ExtractProfileFacts(text string) map[string]string {
	facts := make(map[string]string)

	for _, re := range namePatterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		candidate := strings.TrimSpace(match[1])
		if _, stop := nameStopWords[strings.ToLower(candidate)]; stop {
			continue
		}
		facts["name"] = candidate
		break
	}

	for _, re := range locationPatterns {
		if match := re.FindStringSubmatch(text); match != nil {
			facts["location"] = strings.TrimSpace(match[1])
			break
		}
	}

	for _, re := range agePatterns {
		if match := re.FindStringSubmatch(text); match != nil {
			facts["age"] = match[1]
			break
		}
	}

	return facts
}

// acknowledgeFacts merges new facts into the profile, persists it, and
// replies with one fixed acknowledgement per fact.
func (uc *implUseCase) acknowledgeFacts(ctx context.Context, sc model.Scope, session model.Session, lang string, facts map[string]string) (chat.ProcessMessageOutput, error) {
	profile := session.UserProfile
	if profile == nil {
		profile = make(map[string]string)
	}
	for k, v := range facts {
		profile[k] = v
	}

	if err := uc.repo.UpdateSession(ctx, sc, profileUpdate(profile)); err != nil {
		return chat.ProcessMessageOutput{}, err
	}
	uc.l.Infof(ctx, "chat.acknowledgeFacts: user=%s session=%s facts=%v", sc.UserID, sc.SessionID, facts)

	var parts []string
	if name, ok := facts["name"]; ok {
		parts = append(parts, fmt.Sprintf("Got it—I'll call you %s.", name))
	}
	if age, ok := facts["age"]; ok {
		parts = append(parts, fmt.Sprintf("Nice! I'll remember you're %s years old.", age))
	}
	if location, ok := facts["location"]; ok {
		parts = append(parts, fmt.Sprintf("Thanks, I'll remember you live in %s.", location))
	}

	return uc.respond(ctx, sc, lang, "", strings.Join(parts, " "))
}

// answerProfile looks the asked field up in the stored profile.
func (uc *implUseCase) answerProfile(ctx context.Context, session model.Session, text string) string {
	field := extractProfileField(text)
	uc.l.Debugf(ctx, "chat.answerProfile: field=%s", field)

	if value, ok := session.UserProfile[field]; ok && field != "" {
		return fmt.Sprintf("Your %s is %s.", field, value)
	}
	return "I don't yet have that info—how should I refer to you?"
}

// extractProfileField maps a profile question to the profile key it asks for.
func extractProfileField(text string) string {
	if m := profileFieldPattern.FindStringSubmatch(text); m != nil {
		return strings.ToLower(m[1])
	}
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "who am i"), strings.Contains(lowered, "nombre"), strings.Contains(lowered, "nom"):
		return "name"
	case strings.Contains(lowered, "edad"), strings.Contains(lowered, "yaş"), strings.Contains(lowered, "old am i"), strings.Contains(lowered, "âge"):
		return "age"
	case strings.Contains(lowered, "where do i live"), strings.Contains(lowered, "nerede"), strings.Contains(lowered, "vivo"):
		return "location"
	}
	return ""
}
