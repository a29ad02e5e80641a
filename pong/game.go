package pong

import "strconv"

const (
	WindowWidth  = 500
	WindowHeight = 400
	// FPS is the frame rate backends cap the loop at
	FPS = 60
)

const (
	initBallRadius   = 5
	initPaddleY      = 175
	initPaddleSpeed  = 10
	InitPaddleWidth  = 10
	InitPaddleHeight = 40
	leftPaddleX      = 100
	rightPaddleX     = 390
	maxScore         = 11
)

var (
	initBallPosition = Vector{X: 250, Y: 200}
	initBallVelocity = Vector{X: 4, Y: 1}
)

// Event is something noteworthy that happened during a frame update
type Event byte

const (
	EventWallBounce Event = iota
	EventPaddleHit
	EventPoint
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventPoint:
		return "point"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Game is one session: a ball, two paddles and their scores
type Game struct {
	state   GameState
	ball    *Ball
	player1 *Paddle
	player2 *Paddle
	closed  bool

	listeners []func(Event)
}

// Snapshot is a copy of the visible game state
type Snapshot struct {
	Player1 Paddle    `json:"player1"`
	Player2 Paddle    `json:"player2"`
	Ball    Ball      `json:"ball"`
	State   GameState `json:"status"`
}

// NewGame creates and initializes a new game
func NewGame() *Game {
	g := &Game{}
	g.init()
	return g
}

func (g *Game) init() {
	g.state = PlayState

	g.player1 = &Paddle{
		Position: Vector{X: leftPaddleX, Y: initPaddleY},
		Speed:    initPaddleSpeed,
		Width:    InitPaddleWidth,
		Height:   InitPaddleHeight,
		Color:    ObjColor,
		Up:       KeyLeftUp,
		Down:     KeyLeftDown,
		MaxY:     WindowHeight - InitPaddleHeight,
	}
	g.player2 = &Paddle{
		Position: Vector{X: rightPaddleX, Y: initPaddleY},
		Speed:    initPaddleSpeed,
		Width:    InitPaddleWidth,
		Height:   InitPaddleHeight,
		Color:    ObjColor,
		Up:       KeyRightUp,
		Down:     KeyRightDown,
		MaxY:     WindowHeight - InitPaddleHeight,
	}
	g.ball = &Ball{
		Position: initBallPosition,
		Velocity: initBallVelocity,
		Radius:   initBallRadius,
		Color:    ObjColor,
		Bounds:   Vector{X: WindowWidth, Y: WindowHeight},
	}
}

// AddListener registers fn to be called for every event, in order, from
// within Frame
func (g *Game) AddListener(fn func(Event)) {
	g.listeners = append(g.listeners, fn)
}

func (g *Game) emit(e Event) {
	for _, fn := range g.listeners {
		fn(e)
	}
}

// State returns the current lifecycle state
func (g *Game) State() GameState { return g.state }

// Closed reports whether a close was requested. It only becomes true inside
// Frame, so callers check it before starting the next frame.
func (g *Game) Closed() bool { return g.closed }

// Scores returns the left and right player's scores
func (g *Game) Scores() (left, right int) {
	return g.player1.Score, g.player2.Score
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Player1: *g.player1,
		Player2: *g.player2,
		Ball:    *g.ball,
		State:   g.state,
	}
}

// Frame runs one iteration of the game loop: input, drawing and, while the
// game is running, the simulation step. Pacing is left to the caller.
func (g *Game) Frame(in Input, s Surface) {
	g.handleEvents(in)
	g.Draw(s)
	if g.state == PlayState {
		g.update()
		g.decideContinue()
	}
}

func (g *Game) handleEvents(in Input) {
	if in.CloseRequested() {
		g.closed = true
	}
	if g.state != PlayState {
		return
	}
	g.player1.Update(in)
	g.player2.Update(in)
}

// Draw updates the game screen elements drawn
func (g *Game) Draw(s Surface) {
	s.Fill(BgColor)
	g.ball.Draw(s)
	g.player1.Draw(s)
	g.player2.Draw(s)
	g.drawScores(s)
}

func (g *Game) drawScores(s Surface) {
	w, _ := s.Size()
	s.DrawText(strconv.Itoa(g.player1.Score), Vector{}, ObjColor)

	right := strconv.Itoa(g.player2.Score)
	s.DrawText(right, Vector{X: w - s.TextWidth(right)}, ObjColor)
}

func (g *Game) update() {
	v := g.ball.Velocity
	g.ball.Move()
	if v != g.ball.Velocity {
		g.emit(EventWallBounce)
	}
	g.collision()
	g.updateScore()
}

// collision bounces the ball back when its center is inside the paddle it
// is travelling towards
func (g *Game) collision() {
	b := g.ball
	hitLeft := b.Velocity.X < 0 && g.player1.Contains(b.Position)
	hitRight := b.Velocity.X > 0 && g.player2.Contains(b.Position)
	if hitLeft || hitRight {
		b.Velocity.X = -b.Velocity.X
		g.emit(EventPaddleHit)
	}
}

func (g *Game) updateScore() {
	b := g.ball
	if b.Position.X < b.Radius {
		g.player2.Score++
		g.emit(EventPoint)
	}
	if b.Position.X > b.Bounds.X-b.Radius {
		g.player1.Score++
		g.emit(EventPoint)
	}
}

func (g *Game) decideContinue() {
	if g.player1.Score == maxScore || g.player2.Score == maxScore {
		g.state = GameOverState
		g.emit(EventGameOver)
	}
}
