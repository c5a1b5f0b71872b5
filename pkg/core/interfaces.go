package core

// Camera turns normalized device coordinates in [-1,1]² into primary rays
type Camera interface {
	GenerateRay(ndc Vec2) Ray
	TMin() float64
}
