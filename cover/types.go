// Package cover defines core types and sentinel errors for describing
// exact-cover problems with multiplicities and colors.
package cover

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by Problem validation.
var (
	// ErrEmptyName indicates an item or color name is the empty string.
	ErrEmptyName = errors.New("cover: item and color names must be non-empty")

	// ErrReservedChar indicates an item or color name contains ':', which
	// is reserved as the item:color separator in option references.
	ErrReservedChar = errors.New("cover: names must not contain ':'")

	// ErrDuplicateName indicates the same name was declared twice, either
	// among the items (primary and secondary share one namespace) or
	// among the colors.
	ErrDuplicateName = errors.New("cover: duplicate name")

	// ErrBadMultiplicity indicates a primary item whose multiplicity
	// interval is not 1 ≤ U ≤ V.
	ErrBadMultiplicity = errors.New("cover: primary multiplicity must satisfy 1 <= u <= v")

	// ErrUnknownItem indicates an option references an item that was
	// never declared.
	ErrUnknownItem = errors.New("cover: option references undeclared item")

	// ErrUnknownColor indicates an option references a color that was
	// never declared.
	ErrUnknownColor = errors.New("cover: option references undeclared color")

	// ErrColorOnPrimary indicates an option attaches a color to a primary
	// item; colors are only meaningful on secondary items.
	ErrColorOnPrimary = errors.New("cover: colors may only be attached to secondary items")
)

// PrimaryItem is a primary item declaration. A valid solution must use
// the item between U and V times (1 ≤ U ≤ V).
type PrimaryItem struct {
	Name string // item name; non-empty, no ':'
	U    int    // minimum multiplicity
	V    int    // maximum multiplicity
}

// Slack is the item's multiplicity slack V − U.
func (it PrimaryItem) Slack() int { return it.V - it.U }

// Problem is an immutable-once-validated description of an exact-cover
// problem with multiplicities and colors. The zero value is an empty,
// valid problem with no items and no options.
//
// Primary   – primary items in declaration order.
// Secondary – secondary item names in declaration order.
// Colors    – permitted color names.
// Options   – each option is an ordered list of item references;
//
//	a reference is "name" or "name:color".
type Problem struct {
	Primary   []PrimaryItem
	Secondary []string
	Colors    []string
	Options   [][]string
}

// New returns an empty Problem ready for AddPrimary/AddSecondary/
// AddColors/AddOption calls.
func New() *Problem {
	return &Problem{}
}

// AddPrimary declares a primary item that must be covered between u and
// v times. Declaration order is the solver's tie-break order.
func (p *Problem) AddPrimary(name string, u, v int) {
	p.Primary = append(p.Primary, PrimaryItem{Name: name, U: u, V: v})
}

// AddPrimaryOnce declares a primary item with u = v = 1, the classical
// exact-cover multiplicity.
func (p *Problem) AddPrimaryOnce(name string) {
	p.AddPrimary(name, 1, 1)
}

// AddSecondary declares one or more secondary items.
func (p *Problem) AddSecondary(names ...string) {
	p.Secondary = append(p.Secondary, names...)
}

// AddColors declares one or more permitted colors.
func (p *Problem) AddColors(names ...string) {
	p.Colors = append(p.Colors, names...)
}

// AddOption appends an option built from the given item references and
// returns its option index (options are identified by insertion order).
func (p *Problem) AddOption(refs ...string) int {
	p.Options = append(p.Options, refs)

	return len(p.Options) - 1
}

// SplitRef splits an option reference into its item name and color name.
// The color is empty for an uncolored reference.
func SplitRef(ref string) (item, color string) {
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[:i], ref[i+1:]
	}

	return ref, ""
}

// FormatOption renders option idx as its space-joined references,
// e.g. "p q x:C y:A".
func (p *Problem) FormatOption(idx int) string {
	return strings.Join(p.Options[idx], " ")
}

// FormatSolution renders one solution (a list of option indices) with
// one "  idx: refs..." line per chosen option.
func (p *Problem) FormatSolution(sol []int) string {
	var b strings.Builder
	for _, idx := range sol {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(idx))
		b.WriteString(": ")
		b.WriteString(p.FormatOption(idx))
		b.WriteByte('\n')
	}

	return b.String()
}
