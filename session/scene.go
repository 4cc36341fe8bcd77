package session

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/input"
	"github.com/milk9111/walkthedog/obstacle"
	"github.com/milk9111/walkthedog/player"
	"github.com/milk9111/walkthedog/render"
	"github.com/milk9111/walkthedog/segment"
	"github.com/milk9111/walkthedog/sound"
)

// Assets is everything a scene is built from. Textures and sounds are shared
// read-only with every object that uses them.
type Assets struct {
	CharacterSheet render.Sheet
	CharacterImage render.Texture
	TilesSheet     render.Sheet
	TilesImage     render.Texture
	Background     render.Texture
	Stone          render.Texture
	Jump           *sound.Sound
	Music          *sound.Sound
}

// Scene is the world of one run: the character, the scrolling backgrounds and
// the obstacles ahead.
type Scene struct {
	player      *player.Player
	backgrounds [2]render.Image
	obstacles   []obstacle.Obstacle
	timeline    int16
	generator   *segment.Generator
	board       *soundBoard
	debug       bool
	distance    int
	logger      *log.Logger
}

func newScene(a Assets, audio sound.Audio, generator *segment.Generator, opts Options) (*Scene, error) {
	board := newSoundBoard(audio, a.Jump, a.Music, opts.Logger)
	p, err := player.New(render.NewSpriteSheet(a.CharacterSheet, a.CharacterImage), board)
	if err != nil {
		return nil, err
	}

	width := int16(a.Background.Width())
	s := &Scene{
		player: p,
		backgrounds: [2]render.Image{
			render.NewImage(a.Background, common.Point{}),
			render.NewImage(a.Background, common.Point{X: width}),
		},
		generator: generator,
		board:     board,
		debug:     opts.Debug,
		logger:    opts.Logger,
	}
	if err := s.placeStartingObstacles(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new run in place: a fresh idle character and the opening
// segment. Backgrounds stay where they are and loaded assets are kept.
func (s *Scene) Reset() error {
	s.player = s.player.Reset()
	s.distance = 0
	return s.placeStartingObstacles()
}

func (s *Scene) placeStartingObstacles() error {
	batch, err := s.generator.Starting(common.CanvasSize)
	if err != nil {
		return fmt.Errorf("session: starting segment: %w", err)
	}
	s.obstacles = batch
	s.timeline = obstacle.Rightmost(batch) + segment.ObstacleBuffer
	return nil
}

// generateNextSegment places a segment at the timeline and moves the
// timeline past it.
func (s *Scene) generateNextSegment() error {
	batch, err := s.generator.Generate(s.timeline)
	if err != nil {
		return fmt.Errorf("session: generate segment: %w", err)
	}
	s.timeline = obstacle.Rightmost(batch) + segment.ObstacleBuffer
	s.obstacles = append(s.obstacles, batch...)
	return nil
}

func (s *Scene) horizontalVelocity() int16 {
	return -s.player.WalkingSpeed()
}

// walk advances one frame of running.
func (s *Scene) walk(keys input.KeyState) {
	velocity := s.horizontalVelocity()
	if keys.IsPressed(input.ArrowUp) {
		s.player.Jump()
	}
	if keys.IsPressed(input.ArrowDown) {
		s.player.Slide()
	}
	s.player.Update()

	s.obstacles = obstacle.Retain(s.obstacles)
	for _, o := range s.obstacles {
		o.MoveHorizontally(velocity)
		o.CheckIntersection(s.player)
	}

	first, second := &s.backgrounds[0], &s.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	if s.timeline < segment.TimelineMinimum {
		if err := s.generateNextSegment(); err != nil {
			s.board.fail(err)
		}
	} else {
		s.timeline += velocity
	}
	s.distance -= int(velocity)
}

func (s *Scene) Draw(r render.Renderer) {
	r.Clear(common.NewRectXY(0, 0, common.CanvasSize, common.CanvasSize))
	for i := range s.backgrounds {
		s.backgrounds[i].Draw(r)
	}
	s.player.Draw(r)
	for _, o := range s.obstacles {
		o.Draw(r)
	}
	if s.debug {
		s.player.DrawBounds(r)
		obstacle.DrawBounds(r, s.obstacles)
	}
}

func (s *Scene) Player() *player.Player {
	return s.player
}

func (s *Scene) Obstacles() []obstacle.Obstacle {
	return s.obstacles
}

func (s *Scene) Timeline() int16 {
	return s.timeline
}

func (s *Scene) Backgrounds() [2]render.Image {
	return s.backgrounds
}

// Distance is how far the world has scrolled since the run started.
func (s *Scene) Distance() int {
	return s.distance
}

func (s *Scene) Generator() *segment.Generator {
	return s.generator
}

// Err is the first playback or generation failure, if any.
func (s *Scene) Err() error {
	return s.board.err
}
