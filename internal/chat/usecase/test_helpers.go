package usecase

import (
	"context"
	"sync"

	"studybuddy/internal/chat/repository/inmemory"
	"studybuddy/internal/intent"
	"studybuddy/internal/language"
	"studybuddy/internal/retrieval"
	"studybuddy/pkg/cache"
	"studybuddy/pkg/datemath"
	"studybuddy/pkg/ticketmaster"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockInvoker records prompts and answers through a scripted function.
type mockInvoker struct {
	mu      sync.Mutex
	prompts []string
	invoke  func(prompt string) (string, error)
}

func (m *mockInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.invoke == nil {
		return "", nil
	}
	return m.invoke(prompt)
}

func (m *mockInvoker) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// mockTranslator passes text through unless scripted.
type mockTranslator struct {
	translate func(text, sourceLang, targetLang string) (string, error)
}

func (m *mockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if m.translate == nil {
		return text, nil
	}
	return m.translate(text, sourceLang, targetLang)
}

// mockTicketmaster records search parameters per call.
type mockTicketmaster struct {
	mu     sync.Mutex
	calls  []ticketmaster.SearchParams
	search func(params ticketmaster.SearchParams) ([]ticketmaster.Event, error)
}

func (m *mockTicketmaster) SearchEvents(ctx context.Context, params ticketmaster.SearchParams) ([]ticketmaster.Event, error) {
	m.mu.Lock()
	m.calls = append(m.calls, params)
	m.mu.Unlock()
	if m.search == nil {
		return nil, nil
	}
	return m.search(params)
}

// mockSearcher answers similarity searches from a scripted function.
type mockSearcher struct {
	search func(query string, k int) ([]retrieval.Document, error)
}

func (m *mockSearcher) SimilaritySearch(ctx context.Context, query string, k int) ([]retrieval.Document, error) {
	if m.search == nil {
		return nil, nil
	}
	return m.search(query, k)
}

// fixtures bundles the usecase under test with every mock behind it.
type fixtures struct {
	uc         *implUseCase
	repo       *inmemory.Store
	classifier *mockInvoker
	llm        *mockInvoker
	translator *mockTranslator
	events     *mockTicketmaster
	searcher   *mockSearcher
}

func newFixtures() *fixtures {
	l := &mockLogger{}
	f := &fixtures{
		repo:       inmemory.New(),
		classifier: &mockInvoker{},
		llm:        &mockInvoker{},
		translator: &mockTranslator{},
		events:     &mockTicketmaster{},
		searcher:   &mockSearcher{},
	}
	f.uc = New(
		l,
		f.repo,
		language.NewBridge(l, f.translator, cache.New(0)),
		intent.NewRouter(l, f.classifier),
		retrieval.NewRouter(l, f.searcher),
		f.llm,
		f.events,
		nil,
		datemath.NewParser("UTC"),
		"Istanbul",
		"",
	)
	return f
}
