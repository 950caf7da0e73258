package game

const (
	// LegCount is the number of legs every creature is built with.
	LegCount = 8
	// LegsPerSide is the number of rows on each side of the body.
	LegsPerSide = LegCount / 2

	// LegL1 and LegL2 are the upper and lower segment lengths of a regular leg.
	LegL1 = 1.5
	LegL2 = 2.6
	// FrontLegScale shortens the segments of the front "feeler" legs.
	FrontLegScale = 0.92
	// FrontLegRestScale pulls the rest position of the front legs toward the body.
	FrontLegRestScale = 0.8
	// RestSpreadX and RestSpreadZ push rest positions away from the shoulder mounts.
	RestSpreadX = 2.8
	RestSpreadZ = 1.5

	// MaxStride is the longest velocity lead a step target may be pushed by.
	MaxStride = 3.5
	// CriticalReachFactor is the fraction of a leg's reach past which it must step.
	CriticalReachFactor = 0.9
	// StepHeightJitter is the relative random variation applied to each step's height.
	StepHeightJitter = 0.1
	// HomeLeadTime is how far ahead (seconds) the home position is predicted while walking.
	HomeLeadTime = 0.1
	// HomeLeadMinSpeed is the desired speed above which home positions are predicted.
	HomeLeadMinSpeed = 0.1

	// ArrivalRadius is the horizontal distance under which the body is considered arrived.
	ArrivalRadius = 0.1
	// ArrivalDeceleration scales the remaining distance into a speed cap near the target.
	ArrivalDeceleration = 1.5
	// Acceleration and Friction are the per-second smoothing rates of the body velocity.
	Acceleration = 3.0
	Friction     = 5.0
	// HeightSmoothing is the per-second smoothing rate of the body height.
	HeightSmoothing = 3.0
	// HeadingMinSpeedSqr is the squared speed under which the body keeps its heading.
	HeadingMinSpeedSqr = 0.1

	// BreathingRate and BreathingAmp shape the idle body bob.
	BreathingRate = 2.0
	BreathingAmp  = 0.05

	// GazeProximity is the distance to the target under which the head looks ahead instead.
	GazeProximity = 8.0
	// GazeLookAhead is how far ahead of the body the look-ahead point is placed.
	GazeLookAhead = 20.0
	// GazeHeightOffset raises every look point above the terrain.
	GazeHeightOffset = 1.0
	// GazeIdleJitter is the half-width of the random idle gaze offset on each horizontal axis.
	GazeIdleJitter = 3.0
	// GazeIdleMinInterval and GazeIdleIntervalRange bound the time between idle glances.
	GazeIdleMinInterval   = 0.5
	GazeIdleIntervalRange = 2.0
	// GazeTrackRate and GazeIdleRate are the per-second head slerp rates.
	GazeTrackRate = 5.0
	GazeIdleRate  = 2.0
)
