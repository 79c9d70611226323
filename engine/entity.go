package engine

// EntityID identifies a member of the update list
type EntityID uint32

// Kind enumerates the scene entity variants
type Kind uint8

const (
	KindCenterpiece Kind = iota
	KindLabel
	KindParticle
	KindSparkle
)

func (k Kind) String() string {
	switch k {
	case KindCenterpiece:
		return "centerpiece"
	case KindLabel:
		return "label"
	case KindParticle:
		return "particle"
	case KindSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// Entity owns its per-frame update rule
// Update must not block and must not read other entities
type Entity interface {
	Kind() Kind
	Update(f Frame) error
}
