package chatService

import (
	catalogRepository "AutoPartsBot/internal/api/catalog/repository"
	chatRepository "AutoPartsBot/internal/api/chat/repository"
	"AutoPartsBot/internal/entity"
	"AutoPartsBot/pkg/dataset"
	"AutoPartsBot/pkg/gemini"
	"AutoPartsBot/pkg/nlp"
	redisPkg "AutoPartsBot/pkg/redis"
	"AutoPartsBot/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"AutoPartsBot/internal/api/chat"
)

type IChatService interface {
	HandleMessage(ctx context.Context, sessionID, message string) (chat.ChatResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
	GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error)
}

// Options are the dialogue tuning knobs. Zero values fall back to defaults
// so callers only set what they need to change.
type Options struct {
	// ContextTimeout is how many consecutive unresolved turns a session may
	// accumulate before its slots are cleared.
	ContextTimeout int
	// IntentCapacity bounds the previous-intents history.
	IntentCapacity int
	// UnknownEscalation is how many consecutive unknown intents trigger an
	// escalation offer.
	UnknownEscalation int
	// AbuseEscalation is how many consecutive abusive turns move the session
	// to the escalated state.
	AbuseEscalation int
	// LeadMaxAttempts bounds re-prompts per lead capture stage.
	LeadMaxAttempts int
	// MaxResults is how many matches a product search presents.
	MaxResults int
	// AlternativeLimit caps the stocked alternatives shown on a stock miss.
	AlternativeLimit int
}

func (o Options) withDefaults() Options {
	if o.ContextTimeout <= 0 {
		o.ContextTimeout = 5
	}
	if o.IntentCapacity <= 0 {
		o.IntentCapacity = 3
	}
	if o.UnknownEscalation <= 0 {
		o.UnknownEscalation = 3
	}
	if o.AbuseEscalation <= 0 {
		o.AbuseEscalation = 3
	}
	if o.LeadMaxAttempts <= 0 {
		o.LeadMaxAttempts = 3
	}
	if o.MaxResults <= 0 {
		o.MaxResults = 3
	}
	if o.AlternativeLimit <= 0 {
		o.AlternativeLimit = 5
	}
	return o
}

type chatService struct {
	log         *logrus.Logger
	chatRepo    chatRepository.Repository
	sessions    redisPkg.ISessionStore
	catalogRepo catalogRepository.Repository
	matcher     *nlp.Matcher
	llm         gemini.IGemini
	datasets    *dataset.Datasets
	utils       utils.IUtils
	opts        Options
}

// New wires the dialogue controller. chatRepo and llm may be nil: without a
// database the transcript and leads are not persisted, without an LLM the
// rule-based classifier and canned templates carry the conversation.
func New(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	sessions redisPkg.ISessionStore,
	catalogRepo catalogRepository.Repository,
	matcher *nlp.Matcher,
	llm gemini.IGemini,
	datasets *dataset.Datasets,
	utils utils.IUtils,
	opts Options,
) IChatService {
	return &chatService{
		log:         log,
		chatRepo:    chatRepo,
		sessions:    sessions,
		catalogRepo: catalogRepo,
		matcher:     matcher,
		llm:         llm,
		datasets:    datasets,
		utils:       utils,
		opts:        opts.withDefaults(),
	}
}
