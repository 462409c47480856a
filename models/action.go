package models

import "fmt"

// Kind enumerates the closed set of player actions.
type Kind int

const (
	KindFire Kind = iota
	KindHit
	KindSink
	KindUnfire
	KindUnsink
	KindUndo
)

// Kinds lists every action kind in parse/help order.
func Kinds() []Kind {
	return []Kind{KindFire, KindHit, KindSink, KindUnfire, KindUnsink, KindUndo}
}

// Name is the stable lowercase command token for the kind.
func (k Kind) Name() string {
	switch k {
	case KindFire:
		return "fire"
	case KindHit:
		return "hit"
	case KindSink:
		return "sink"
	case KindUnfire:
		return "unfire"
	case KindUnsink:
		return "unsink"
	default:
		return "undo"
	}
}

// ParseKind resolves a command token to its action kind.
func ParseKind(token string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Name() == token {
			return k, true
		}
	}
	return 0, false
}

// Action is one player command. Coordinate actions (fire, hit, unfire) carry
// Coord; length actions (sink, unsink) carry Length. Resolved marks whether
// the argument is known yet — a bare command stays unresolved until context
// fills it in. Undo never takes an argument and is always resolved.
//
// SunkCells is filled in when a sink executes: it records which cells the
// sink marked, so the derived unsink can restore them exactly.
type Action struct {
	Kind      Kind
	Coord     Coordinate
	Length    int
	Resolved  bool
	SunkCells []Coordinate
}

func Fire(c Coordinate) Action   { return Action{Kind: KindFire, Coord: c, Resolved: true} }
func Hit(c Coordinate) Action    { return Action{Kind: KindHit, Coord: c, Resolved: true} }
func Sink(length int) Action     { return Action{Kind: KindSink, Length: length, Resolved: true} }
func Unfire(c Coordinate) Action { return Action{Kind: KindUnfire, Coord: c, Resolved: true} }
func Unsink(length int) Action   { return Action{Kind: KindUnsink, Length: length, Resolved: true} }
func Undo() Action               { return Action{Kind: KindUndo, Resolved: true} }

// Bare returns an action of the given kind with its argument still unknown.
func Bare(kind Kind) Action {
	return Action{Kind: kind, Resolved: kind == KindUndo}
}

func (a Action) Name() string {
	return a.Kind.Name()
}

// Opposite returns the inverse action, carrying the argument over.
// Undo has no inverse; asking for one is a bug in the caller.
func (a Action) Opposite() Action {
	switch a.Kind {
	case KindFire, KindHit:
		a.Kind = KindUnfire
	case KindSink:
		a.Kind = KindUnsink
	case KindUnfire:
		a.Kind = KindFire
	case KindUnsink:
		a.Kind = KindSink
	default:
		panic("models: undo has no opposite")
	}
	return a
}

func (a Action) ExpectedArgCount() int {
	switch a.Kind {
	case KindFire, KindHit, KindUnfire:
		return 2
	case KindSink, KindUnsink:
		return 1
	default:
		return 0
	}
}

// CanInferArgs reports whether a bare command may have its argument filled in
// from context. Only sink is excluded: a ship length is never inferable.
func (a Action) CanInferArgs() bool {
	return a.Kind != KindSink
}

// SyntaxHelp is the per-command usage text shown on startup.
func (a Action) SyntaxHelp() string {
	switch a.Kind {
	case KindFire:
		return "'fire <column> <row>' [1-index] Fires at the specified coordinate.\n\tDefault: Executes most recent recommendation."
	case KindHit:
		return "'hit <column> <row>' [1-index] Marks the specified coordinate as hit.\n\tDefault: Marks the most recently fired at coordinate as hit."
	case KindSink:
		return "'sink <ship length>' Removes one ship of the specified length from the list.\n\tUnfortunately the length cannot logically be inferred."
	case KindUnfire:
		return "'unfire <column> <row>' [1-index] Removes specified firing marker.\n\tDefault: Undoes most recent fire command."
	case KindUnsink:
		return "'unsink <ship length>' Adds one ship of the specified length to the list.\n\tDefault: Undoes the most recent sink command."
	default:
		return "'undo' Undoes the most recent action."
	}
}

// SuccessMessage is the confirmation shown after the action executes. It
// requires a resolved argument; undo reports the message of the action it
// reverses instead of one of its own. Violating either is a caller bug.
func (a Action) SuccessMessage() string {
	if a.Kind == KindUndo {
		panic("models: undo reports the message of the action it reverses")
	}
	if !a.Resolved {
		panic("models: no success message for an unresolved action")
	}
	switch a.Kind {
	case KindFire:
		return fmt.Sprintf("Fired at %s.", a.Coord)
	case KindHit:
		return fmt.Sprintf("Set hit marker at %s.", a.Coord)
	case KindSink:
		return fmt.Sprintf("Sunk a ship of length %d.", a.Length)
	case KindUnfire:
		return fmt.Sprintf("Removed fire marker at %s.", a.Coord)
	default:
		return fmt.Sprintf("Added a ship of length %d to the roster.", a.Length)
	}
}
