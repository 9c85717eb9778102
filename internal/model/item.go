package model

// Item is implemented by every extraction-tree node kind. The marker
// method restricts implementations to this package, keeping the kind set
// closed so the emitter's dispatch can be exhaustive.
type Item interface {
	item()

	// Suppressed reports whether the node is excluded from emission,
	// either by the extraction stage or by a stub-only ignore flag.
	Suppressed() bool

	// Access returns the member protection level. Module-level items
	// report public.
	Access() Protection
}

// Protection is the member visibility recorded by the extraction stage.
// Private members are filtered out upstream and never reach this module.
type Protection int

const (
	Public Protection = iota
	Protected
)

// String returns a human-readable protection name.
func (p Protection) String() string {
	switch p {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "unknown"
	}
}

// ItemBase holds the flags shared by every node kind. It is embedded by
// all concrete node types.
type ItemBase struct {
	// Ignored excludes the node and all its descendants from every
	// generator backend.
	Ignored bool

	// StubIgnored excludes the node from stub generation only.
	StubIgnored bool

	// Protection is the visibility of the node when it is a class member.
	Protection Protection
}

func (ItemBase) item() {}

// Suppressed reports whether the node should produce no output.
func (b ItemBase) Suppressed() bool { return b.Ignored || b.StubIgnored }

// Access returns the recorded protection level.
func (b ItemBase) Access() Protection { return b.Protection }
