package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// AccessClass restricts which requesters may enter a node or traverse an edge.
type AccessClass uint8

const (
	// Unconstrained is compatible with every other class.
	Unconstrained AccessClass = iota
	// ClassA admits only class A requesters.
	ClassA
	// ClassB admits only class B requesters.
	ClassB
	// Infeasible marks two constraints that no requester can satisfy together.
	Infeasible
)

// Tighten combines two constraints into the narrowest class satisfying both.
func Tighten(a, b AccessClass) AccessClass {
	switch {
	case a == Infeasible || b == Infeasible:
		return Infeasible
	case a == Unconstrained:
		return b
	case b == Unconstrained, a == b:
		return a
	default:
		return Infeasible
	}
}

// Admits reports whether a requester of class c may use a route tagged with other.
func (c AccessClass) Admits(other AccessClass) bool {
	return Tighten(c, other) != Infeasible
}

// String returns the short tag used in dumps and configuration files.
func (c AccessClass) String() string {
	switch c {
	case Unconstrained:
		return "any"
	case ClassA:
		return "a"
	case ClassB:
		return "b"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// ParseAccessClass parses a configuration or command-line access tag.
func ParseAccessClass(s string) (AccessClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "unconstrained":
		return Unconstrained, nil
	case "a", "classa":
		return ClassA, nil
	case "b", "classb":
		return ClassB, nil
	default:
		return Unconstrained, zerr.With(zerr.Wrap(ErrUnknownAccessClass, "invalid access tag"), "access", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c AccessClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Infeasible is never accepted from text.
func (c *AccessClass) UnmarshalText(text []byte) error {
	parsed, err := ParseAccessClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
