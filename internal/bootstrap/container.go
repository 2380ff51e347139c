package bootstrap

import (
	"ai-notebook-be/internal/config"
	"ai-notebook-be/internal/controller"
	"ai-notebook-be/internal/pkg/logger"
	"ai-notebook-be/internal/service"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/internal/websocket"
	"ai-notebook-be/pkg/extract"
	"ai-notebook-be/pkg/gemini"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	NotebookController controller.INotebookController
	ChatController     controller.IChatController
	StudioController   controller.IStudioController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Event push
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisher := service.NewPublisherService(pubSub)

	// Gateway
	gatewayOptions := []gemini.Option{
		gemini.WithChatModel(cfg.Ai.ChatModel),
		gemini.WithTTSModel(cfg.Ai.TTSModel),
		gemini.WithVoice(cfg.Ai.TTSVoice),
	}
	if cfg.Ai.BaseURL != "" {
		gatewayOptions = append(gatewayOptions, gemini.WithBaseURL(cfg.Ai.BaseURL))
	}
	gateway := gemini.NewClient(cfg.Keys.GoogleGemini, gatewayOptions...)

	// State
	notebooks := store.NewNotebookStore()
	guides := store.NewGuideStore(cfg.Ai.GuideTTL)
	summaries := store.NewSummaryCache(cfg.Ai.GuideTTL)

	if cfg.App.SeedNotebooks {
		service.SeedNotebooks(notebooks)
	}

	// Event push hub
	hub := websocket.NewHub(sysLogger)

	// Services
	extractor := extract.NewExtractor()
	notebookService := service.NewNotebookService(notebooks, summaries, extractor, publisher, hub, sysLogger)
	chatService := service.NewChatService(notebooks, gateway, hub, sysLogger)
	guideService := service.NewGuideService(notebooks, guides, gateway, hub, sysLogger)
	audioService := service.NewAudioService(notebooks, gateway, sysLogger)
	consumerService := service.NewConsumerService(pubSub, notebooks, summaries, gateway, hub, sysLogger)

	return &Container{
		NotebookController: controller.NewNotebookController(notebookService),
		ChatController:     controller.NewChatController(chatService),
		StudioController:   controller.NewStudioController(guideService, audioService),
		ConsumerService:    consumerService,
		WebSocketHub:       hub,
		Logger:             sysLogger,
	}
}
