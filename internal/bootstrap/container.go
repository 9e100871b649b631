package bootstrap

import (
	"log"
	"time"

	"menu-ai-be/internal/config"
	"menu-ai-be/internal/controller"
	"menu-ai-be/internal/pkg/logger"
	"menu-ai-be/internal/service"
	"menu-ai-be/pkg/llm/factory"
	"menu-ai-be/pkg/menu"
	pktNats "menu-ai-be/pkg/nats"
	"menu-ai-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
)

const feedbackTopic = "feedback.received"

type Container struct {
	// Controllers
	ChatController controller.IChatController
	MenuController controller.IMenuController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional telemetry: an empty URL or a dead connection
	// downgrades to local-only.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	// 3. Domain State
	sessionStore := session.NewStore()
	catalog := menu.NewCatalog()
	feedbackStore := cache.New(7*24*time.Hour, time.Hour)

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider == nil {
		log.Printf("[INFO] No LLM Provider configured, running in fallback-only mode")
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	llmTimeout := time.Duration(cfg.Ai.TimeoutSeconds) * time.Second

	// 4. Services
	chatService := service.NewChatService(
		sessionStore,
		llmProvider,
		llmTimeout,
		sysLogger,
		feedbackStore,
		pubSub,
		feedbackTopic,
		natsPub,
	)
	menuService := service.NewMenuService(catalog, llmProvider, llmTimeout, sysLogger)
	consumerService := service.NewConsumerService(pubSub, feedbackTopic, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService, cfg.Sessions.DefaultMaxAgeHours),
		MenuController:  controller.NewMenuController(menuService),
		ConsumerService: consumerService,
	}
}
