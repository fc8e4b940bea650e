package usecase

import (
	"sync"

	"studybuddy/internal/chat/repository"
	"studybuddy/internal/intent"
	"studybuddy/internal/language"
	"studybuddy/internal/model"
	"studybuddy/internal/retrieval"
	"studybuddy/pkg/datemath"
	"studybuddy/pkg/gcalendar"
	"studybuddy/pkg/llmprovider"
	pkgLog "studybuddy/pkg/log"
	"studybuddy/pkg/ticketmaster"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	bridge    *language.Bridge
	intents   *intent.Router
	retriever *retrieval.Router
	llm       llmprovider.Invoker
	events    ticketmaster.ITicketmaster
	campus    *gcalendar.Client // optional campus events calendar
	dateMath  *datemath.Parser
	city      string
	calendar  string // campus calendar ID

	// Per-session serialization: session state is read-modify-write across
	// the whole turn, so two turns for the same session must not interleave.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	bridge *language.Bridge,
	intents *intent.Router,
	retriever *retrieval.Router,
	llm llmprovider.Invoker,
	events ticketmaster.ITicketmaster,
	campus *gcalendar.Client,
	dateMath *datemath.Parser,
	city string,
	calendar string,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		bridge:    bridge,
		intents:   intents,
		retriever: retriever,
		llm:       llm,
		events:    events,
		campus:    campus,
		dateMath:  dateMath,
		city:      city,
		calendar:  calendar,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (uc *implUseCase) sessionLock(sc model.Scope) *sync.Mutex {
	key := sc.UserID + "/" + sc.SessionID
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lock, ok := uc.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		uc.locks[key] = lock
	}
	return lock
}
