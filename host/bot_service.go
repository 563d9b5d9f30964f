package host

import (
	"log"

	"github.com/lixenwraith/clicklive/audio"
	"github.com/lixenwraith/clicklive/bot"
	"github.com/lixenwraith/clicklive/config"
)

// BotService owns the dispatcher and wires it to the audio service
type BotService struct {
	audio *audio.AudioService
	cfg   *config.Config
	bot   *bot.Bot
}

// NewBotService creates a bot service playing through as
func NewBotService(as *audio.AudioService) *BotService {
	return &BotService{audio: as}
}

// Name implements Service
func (s *BotService) Name() string {
	return "bot"
}

// Dependencies implements Service
func (s *BotService) Dependencies() []string {
	return []string{"audio"}
}

// Init implements Service
// args: *config.Config; defaults are used when absent
func (s *BotService) Init(args ...any) error {
	s.cfg = config.Default()
	for _, arg := range args {
		if cfg, ok := arg.(*config.Config); ok && cfg != nil {
			s.cfg = cfg
			break
		}
	}
	return nil
}

// Start implements Service
// Builds the bot and loads the configured clickpack; a failed load is logged
// and leaves the bot without a clickpack
func (s *BotService) Start() error {
	var player bot.Player
	if p := s.audio.Player(); p != nil {
		player = p
	}
	s.bot = bot.New(s.cfg, player)

	if s.cfg.ClickpackPath == "" {
		log.Printf("host: no clickpack configured")
		return nil
	}
	if err := s.bot.LoadClickpack(s.cfg.ClickpackPath, s.cfg.LoadFor); err != nil {
		log.Printf("host: %v", err)
	}
	return nil
}

// Stop implements Service
func (s *BotService) Stop() error {
	if s.bot != nil {
		s.bot.OnExit()
	}
	return nil
}

// Bot returns the dispatcher, nil before Start
func (s *BotService) Bot() *bot.Bot {
	return s.bot
}
