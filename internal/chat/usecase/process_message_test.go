package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"studybuddy/internal/chat"
	"studybuddy/internal/model"
	"studybuddy/internal/retrieval"
	"studybuddy/pkg/ticketmaster"
)

func testScope() model.Scope {
	return model.Scope{UserID: "user-1", SessionID: "session-1"}
}

func TestProcessMessage_EmptyMessage(t *testing.T) {
	f := newFixtures()

	_, err := f.uc.ProcessMessage(context.Background(), testScope(), chat.ProcessMessageInput{Text: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestProcessMessage_LanguageChange(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()

	out, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "Can you speak Spanish please?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.classifier.callCount() != 0 {
		t.Errorf("language change must not run classification, classifier called %d times", f.classifier.callCount())
	}
	if out.Language != "es" {
		t.Errorf("expected language es, got %q", out.Language)
	}
	if !strings.Contains(out.Reply, "Spanish") {
		t.Errorf("expected acknowledgement naming Spanish, got %q", out.Reply)
	}

	session, err := f.uc.GetSession(ctx, sc)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if session.UserLanguage != "es" {
		t.Errorf("expected session language es, got %q", session.UserLanguage)
	}
}

func TestProcessMessage_UnsupportedLanguageChange(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()

	out, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "Please switch the language to Klingon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "couldn't understand which language") {
		t.Errorf("expected clarification reply, got %q", out.Reply)
	}

	session, err := f.uc.GetSession(ctx, sc)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if session.UserLanguage != DefaultLanguage {
		t.Errorf("session language changed to %q on unrecognized request", session.UserLanguage)
	}
}

func TestProcessMessage_Capability(t *testing.T) {
	f := newFixtures()

	out, err := f.uc.ProcessMessage(context.Background(), testScope(), chat.ProcessMessageInput{Text: "How can you help me?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.classifier.callCount() != 0 {
		t.Errorf("capability answer must not run classification, classifier called %d times", f.classifier.callCount())
	}
	if !strings.Contains(out.Reply, "<b>Residence Permit & Visa</b>") {
		t.Errorf("expected converted bold markup in capability reply, got %.120q", out.Reply)
	}
}

func TestProcessMessage_ProfileRoundTrip(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()
	f.classifier.invoke = func(string) (string, error) { return "profile", nil }

	out, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "My name is Alex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "Alex") {
		t.Errorf("expected acknowledgement naming Alex, got %q", out.Reply)
	}
	if f.classifier.callCount() != 0 {
		t.Errorf("fact statement must not run classification, classifier called %d times", f.classifier.callCount())
	}

	session, err := f.uc.GetSession(ctx, sc)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if session.UserProfile["name"] != "Alex" {
		t.Fatalf("expected stored name Alex, got %q", session.UserProfile["name"])
	}

	out, err = f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "What is my name?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "Your name is Alex." {
		t.Errorf("expected profile answer, got %q", out.Reply)
	}

	msgs, err := f.uc.ListMessages(ctx, sc)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 4 {
		t.Errorf("expected 4 persisted messages, got %d", len(msgs))
	}
}

func TestProcessMessage_UnknownProfileField(t *testing.T) {
	f := newFixtures()
	f.classifier.invoke = func(string) (string, error) { return "profile", nil }

	out, err := f.uc.ProcessMessage(context.Background(), testScope(), chat.ProcessMessageInput{Text: "What is my name?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "don't yet have that info") {
		t.Errorf("expected missing-info reply, got %q", out.Reply)
	}
}

func TestProcessMessage_EventsPagination(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()
	f.classifier.invoke = func(string) (string, error) { return "events", nil }
	f.events.search = func(params ticketmaster.SearchParams) ([]ticketmaster.Event, error) {
		return []ticketmaster.Event{
			{Name: "Jazz Night " + strconv.Itoa(params.Page), LocalDate: "2026-09-02", Venue: "Zorlu PSM"},
		}, nil
	}

	out, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "What events are happening this week?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "Jazz Night 0") {
		t.Errorf("expected first page listing, got %q", out.Reply)
	}

	out, err = f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "Any more events this week?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "Jazz Night 1") {
		t.Errorf("expected second page listing, got %q", out.Reply)
	}

	if len(f.events.calls) != 2 {
		t.Fatalf("expected 2 event searches, got %d", len(f.events.calls))
	}
	if f.events.calls[0].Page != 0 || f.events.calls[1].Page != 1 {
		t.Errorf("expected pages 0 then 1, got %d then %d", f.events.calls[0].Page, f.events.calls[1].Page)
	}
	if f.events.calls[0].City != "Istanbul" {
		t.Errorf("expected city Istanbul, got %q", f.events.calls[0].City)
	}
}

func TestProcessMessage_EventsFailureKeepsPage(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()
	f.classifier.invoke = func(string) (string, error) { return "events", nil }

	fail := false
	f.events.search = func(params ticketmaster.SearchParams) ([]ticketmaster.Event, error) {
		if fail {
			return nil, errors.New("upstream down")
		}
		return []ticketmaster.Event{{Name: "Art Fair", LocalDate: "2026-09-03"}}, nil
	}

	if _, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "What events are happening this week?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fail = true
	out, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "Any more events this week?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "couldn't fetch events") {
		t.Errorf("expected failure reply, got %q", out.Reply)
	}

	// the failed follow-up must not burn the page: retrying continues from
	// the last page actually shown
	fail = false
	if _, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "Any more events this week?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := f.events.calls[len(f.events.calls)-1]
	if last.Page != 1 {
		t.Errorf("expected retry on page 1, got %d", last.Page)
	}
}

func TestProcessMessage_DocumentPrefixGuard(t *testing.T) {
	f := newFixtures()
	f.classifier.invoke = func(string) (string, error) { return "document", nil }
	f.searcher.search = func(query string, k int) ([]retrieval.Document, error) {
		return []retrieval.Document{
			{Content: "Undergraduate applicants submit transcripts and an English proficiency score.", Source: "admissions.pdf"},
		}, nil
	}
	f.llm.invoke = func(string) (string, error) {
		return "Applicants need transcripts and an English proficiency score.", nil
	}

	out, err := f.uc.ProcessMessage(context.Background(), testScope(), chat.ProcessMessageInput{Text: "What are the admission requirements for Sabanci?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.Reply, "Regarding Sabancı University:") {
		t.Errorf("expected institution prefix on drifting answer, got %q", out.Reply)
	}
}

func TestProcessMessage_DocumentNoResults(t *testing.T) {
	f := newFixtures()
	f.classifier.invoke = func(string) (string, error) { return "document", nil }

	out, err := f.uc.ProcessMessage(context.Background(), testScope(), chat.ProcessMessageInput{Text: "What are the admission requirements for Sabanci?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "Sabancı University") || !strings.Contains(out.Reply, "don't have specific information") {
		t.Errorf("expected no-documents reply naming the university, got %q", out.Reply)
	}
	if f.llm.callCount() != 0 {
		t.Errorf("no-documents reply must not call the model, got %d calls", f.llm.callCount())
	}
}

func TestProcessMessage_PanicBecomesApology(t *testing.T) {
	f := newFixtures()
	f.classifier.invoke = func(string) (string, error) { return "general", nil }
	f.llm.invoke = func(string) (string, error) { panic("provider blew up") }

	out, err := f.uc.ProcessMessage(context.Background(), testScope(), chat.ProcessMessageInput{Text: "Tell me a fun fact about Istanbul"})
	if err != nil {
		t.Fatalf("expected nil error after recovery, got %v", err)
	}
	if out.Reply != apologyReply {
		t.Errorf("expected apology reply, got %q", out.Reply)
	}
	if out.Language != "en" {
		t.Errorf("expected working language on recovery, got %q", out.Language)
	}
}

func TestProcessMessage_SpanishRoundTrip(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()

	f.translator.translate = func(text, sourceLang, targetLang string) (string, error) {
		switch targetLang {
		case "en":
			return "where is the university?", nil
		case "es":
			return "La universidad está en Tuzla.", nil
		}
		return text, nil
	}
	f.classifier.invoke = func(string) (string, error) { return "general", nil }
	f.llm.invoke = func(string) (string, error) { return "The university is in Tuzla.", nil }

	out, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "¿dónde está la universidad?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Language != "es" {
		t.Errorf("expected reply language es, got %q", out.Language)
	}
	if out.Reply != "La universidad está en Tuzla." {
		t.Errorf("expected translated reply, got %q", out.Reply)
	}

	msgs, err := f.uc.ListMessages(ctx, sc)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Language != "es" || msgs[0].WorkingContent != "where is the university?" {
		t.Errorf("user turn not bridged: language=%q working=%q", msgs[0].Language, msgs[0].WorkingContent)
	}
}

func TestProcessMessage_GeneralPromptCarriesProfile(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()
	f.classifier.invoke = func(string) (string, error) { return "general", nil }

	var prompt string
	f.llm.invoke = func(p string) (string, error) {
		prompt = p
		return "Sure!", nil
	}

	if _, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "My name is Alex"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "Can you recommend a good neighborhood for students?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "name=Alex") {
		t.Errorf("expected profile in prompt, got %.200q", prompt)
	}
	if !strings.Contains(prompt, "User: can you recommend") && !strings.Contains(prompt, "User: Can you recommend") {
		t.Errorf("expected current question in prompt, got %.200q", prompt)
	}
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	sc := testScope()

	if _, err := f.uc.GetSession(ctx, sc); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound before start, got %v", err)
	}

	session, err := f.uc.StartSession(ctx, sc)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.UserLanguage != DefaultLanguage {
		t.Errorf("expected default language, got %q", session.UserLanguage)
	}

	// starting again is a no-op, not a reset
	if _, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "Can you speak Spanish please?"}); err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	session, err = f.uc.StartSession(ctx, sc)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.UserLanguage != "es" {
		t.Errorf("restart reset the session language to %q", session.UserLanguage)
	}

	if err := f.uc.TerminateSession(ctx, sc); err != nil {
		t.Fatalf("TerminateSession: %v", err)
	}
	session, err = f.uc.GetSession(ctx, sc)
	if err != nil {
		t.Fatalf("terminated session must stay readable, got %v", err)
	}
	if session.Status != model.SessionStatusTerminated {
		t.Errorf("unexpected status after terminate: %q", session.Status)
	}
	if msgs, err := f.uc.ListMessages(ctx, sc); err != nil || len(msgs) == 0 {
		t.Errorf("history lost on terminate: msgs=%d err=%v", len(msgs), err)
	}
	if _, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "hello"}); !errors.Is(err, chat.ErrSessionTerminated) {
		t.Fatalf("expected ErrSessionTerminated, got %v", err)
	}
	if err := f.uc.TerminateSession(ctx, sc); err != nil {
		t.Fatalf("double terminate must be a no-op, got %v", err)
	}

	session, err = f.uc.LoadSession(ctx, sc)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if session.Status != model.SessionStatusActive {
		t.Errorf("unexpected status after load: %q", session.Status)
	}
	if session.UserLanguage != "es" {
		t.Errorf("load reset the session language to %q", session.UserLanguage)
	}
	if _, err := f.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: "hola, ¿cómo estás?"}); err != nil {
		t.Fatalf("ProcessMessage after load: %v", err)
	}

	if _, err := f.uc.LoadSession(ctx, model.Scope{UserID: "nobody", SessionID: "missing"}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for missing session, got %v", err)
	}

	sessions, err := f.uc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].SessionID != sc.SessionID {
		t.Errorf("unexpected session list: %+v", sessions)
	}
}
