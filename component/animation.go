package component

// AnimationComponent holds immutable seed parameters of a time-driven update rule
// All values Q32.32; units depend on the owning entity
type AnimationComponent struct {
	Speed     int64
	Amplitude int64
	Phase     int64
}
