package player

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/podcastr/podcastr/pkg/model"
)

// State is a snapshot of the player.
type State struct {
	Episodes  []model.Episode `json:"episodes"`
	Current   int             `json:"current"`
	IsPlaying bool            `json:"isPlaying"`
}

// Player holds the audio player state shared by all pages. It is created by
// the owner of the web handler and passed to it; Play is the only way to
// change it.
type Player struct {
	lock  sync.RWMutex
	state State
}

func New() *Player {
	return &Player{}
}

// Play replaces the playlist with the given episode and starts playing it.
func (p *Player) Play(episode model.Episode) {
	p.lock.Lock()
	defer p.lock.Unlock()

	log.WithField("episode_id", episode.ID).Debug("playing episode")

	p.state = State{
		Episodes:  []model.Episode{episode},
		Current:   0,
		IsPlaying: true,
	}
}

// State returns a copy of the current state.
func (p *Player) State() State {
	p.lock.RLock()
	defer p.lock.RUnlock()

	state := p.state
	state.Episodes = append([]model.Episode(nil), p.state.Episodes...)
	return state
}
