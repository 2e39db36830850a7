package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/clio/internal/adapter"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/internal/player"
	"github.com/MKhiriev/clio/internal/store"
	"github.com/MKhiriev/clio/models"
)

// clickTimeout bounds click registration so a slow directory does not delay
// playback.
const clickTimeout = 3 * time.Second

type playbackService struct {
	directory adapter.DirectoryAdapter
	history   store.HistoryRepository
	player    Player
	logger    *logger.Logger

	// mu serializes calls into the player. gen is bumped by every Play, Stop
	// and Close; a Play whose generation is stale by the time its side
	// effects finish never reaches the player.
	mu  sync.Mutex
	gen uint64
}

// NewPlaybackService returns a [PlaybackService] driving p.
func NewPlaybackService(directory adapter.DirectoryAdapter, history store.HistoryRepository, p Player, logger *logger.Logger) PlaybackService {
	return &playbackService{directory: directory, history: history, player: p, logger: logger}
}

func (p *playbackService) Play(ctx context.Context, station models.Station) error {
	gen := p.nextGen()
	streamURL := station.StreamURL()
	log := p.logger.With().Str("func", "playbackService.Play").Uint64("gen", gen).Logger()

	// The controller rejects an empty URL and reports it on the status line.
	if streamURL != "" {
		clickCtx, cancel := context.WithTimeout(ctx, clickTimeout)
		if err := p.directory.RegisterClick(clickCtx, station.StationUUID); err != nil {
			log.Warn().Err(err).Str("station_uuid", station.StationUUID).Msg("click registration failed")
		}
		cancel()

		if p.superseded(gen) {
			log.Debug().Msg("newer playback request arrived during click registration")
			return ErrPlaySuperseded
		}

		if err := p.history.RecordPlay(ctx, station); err != nil {
			log.Warn().Err(err).Msg("failed to record play")
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		log.Debug().Msg("newer playback request arrived before start")
		return ErrPlaySuperseded
	}
	if err := p.player.Play(streamURL, station.DisplayName()); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	return nil
}

func (p *playbackService) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	return p.player.Stop()
}

func (p *playbackService) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	return p.player.Close()
}

func (p *playbackService) State() player.State {
	return p.player.State()
}

func (p *playbackService) nextGen() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	return p.gen
}

func (p *playbackService) superseded(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen != gen
}
