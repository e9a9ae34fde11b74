package constant

// Arena
const (
	// WindowWidth and WindowHeight are the logical surface resolution
	WindowWidth  = 1024
	WindowHeight = 768

	// WindowX and WindowY are the requested top-left window position
	WindowX = 100
	WindowY = 100

	// WallThickness is the top/bottom wall height, the paddle width, the ball size,
	// and the right-edge margin of the out-of-bounds check
	WallThickness = 15

	WindowTitle = "Multi Pong"
)

// Paddles
const (
	PaddleHeight = 100.0

	// PaddleSpeed in units per second
	PaddleSpeed = 300.0

	// PaddleOffset is the distance of each paddle from its screen edge
	PaddleOffset = 10.0
)

// Paddle contact band, measured from each side edge
const (
	PaddleContactNear = 20.0
	PaddleContactFar  = 25.0
)

// Balls
const (
	// InitialBallCount is seeded once at construction
	InitialBallCount = 3

	// BallSpeed is the x-velocity magnitude of a randomly spawned ball
	BallSpeed = 200.0

	// BallVelYRange gives a random y-velocity in [-BallVelYRange, -1]
	BallVelYRange = 100
)
