package bootstrap

import (
	"context"
	"log"

	"hr-assistant-be/internal/config"
	"hr-assistant-be/internal/constant"
	"hr-assistant-be/internal/controller"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/internal/service"
	"hr-assistant-be/pkg/assistant/access"
	"hr-assistant-be/pkg/assistant/composer"
	"hr-assistant-be/pkg/assistant/contextual"
	"hr-assistant-be/pkg/assistant/responder"
	"hr-assistant-be/pkg/docrender"
	"hr-assistant-be/pkg/llm/factory"
	pktNats "hr-assistant-be/pkg/nats"
	"hr-assistant-be/pkg/speech"
	"hr-assistant-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	DocumentController  controller.IDocumentController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Model providers
	registry, err := factory.NewRegistry(cfg)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM providers: %v", err)
	}
	log.Printf("[INFO] Default LLM provider: %s", cfg.Ai.LLMProvider)

	// 4. Speech and storage collaborators
	transcriber := speech.NewWhisperTranscriber(cfg.Ai.SttBaseURL, cfg.Keys.OpenAI, cfg.Ai.SttModel)
	synthesizer := speech.NewElevenLabsSynthesizer(cfg.Ai.TtsBaseURL, cfg.Keys.ElevenLabs, constant.TtsModelID, speech.VoiceSettings{
		Stability:       constant.VoiceStability,
		SimilarityBoost: constant.VoiceSimilarityBoost,
		Style:           constant.VoiceStyle,
		UseSpeakerBoost: constant.VoiceSpeakerBoost,
	})
	store := storage.NewSupabaseStorage(cfg.Storage.BaseURL, cfg.Storage.Bucket, cfg.Storage.APIKey)

	// 5. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 6. Pipeline components
	knowledgeAssembler := contextual.NewAssembler(func(ctx context.Context) ([]contextual.Entry, error) {
		uow := uowFactory.NewUnitOfWork(ctx)
		records, err := uow.KnowledgeEntryRepository().FindAll(ctx,
			specification.ActiveOnly{},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: constant.KnowledgeFetchLimit},
		)
		if err != nil {
			return nil, err
		}
		entries := make([]contextual.Entry, 0, len(records))
		for _, record := range records {
			entries = append(entries, contextual.Entry{
				Title:       record.Title,
				Category:    record.Category,
				Description: record.Description,
				Content:     record.Content,
			})
		}
		return entries, nil
	}, constant.KnowledgeFetchLimit)

	quota := access.NewVerifier(rdb, cfg.Limits.DailyTurns)

	publisherService := service.NewPublisherService(cfg.Keys.TurnTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.TurnTopic, natsPub)

	assistantService := service.NewAssistantService(
		uowFactory,
		registry,
		transcriber,
		synthesizer,
		store,
		knowledgeAssembler,
		responder.NewResponder(constant.HistoryPromptLimit),
		composer.NewComposer(),
		docrender.NewRenderer(),
		quota,
		composer.ExtractTitle,
		publisherService,
		sysLogger,
		cfg.Ai.SttLanguage,
		cfg.Ai.DefaultVoice,
	)
	documentService := service.NewDocumentService()

	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		DocumentController:  controller.NewDocumentController(documentService),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
