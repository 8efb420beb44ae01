// Package cover defines the problem model for exact covering with
// multiplicities and colors, plus a seeded random problem generator
// for testing and benchmarking.
//
// Overview:
//
//   - A Problem is a value-typed description: primary items (each with
//     a multiplicity interval [U,V]), secondary items, a color palette,
//     and options. Every option is an ordered list of item references.
//   - An item reference is either "name" (a primary or secondary item)
//     or "name:color" (a secondary item asserting a color).
//   - Problems are built programmatically and validated once with
//     Validate before being handed to a solver.
//
// Validation rules (sentinel errors):
//
//   - ErrEmptyName        if any item or color name is empty.
//   - ErrReservedChar     if any item or color name contains ':'.
//   - ErrDuplicateName    if an item name is declared twice (across both
//     the primary and the secondary lists) or a color is declared twice.
//   - ErrBadMultiplicity  if a primary item has U < 1 or U > V.
//   - ErrUnknownItem      if an option references an undeclared item.
//   - ErrUnknownColor     if an option references an undeclared color.
//   - ErrColorOnPrimary   if an option attaches a color to a primary item.
//
// Determinism:
//
//   - Item and option order is significant: solvers branch and report in
//     declaration order, so two identical Problems always produce
//     identical solution sequences.
//   - Generate takes an explicit seed for the same reason.
//
// Example usage:
//
//	p := cover.New()
//	p.AddPrimary("p", 1, 1)
//	p.AddSecondary("x", "y")
//	p.AddColors("A", "B")
//	p.AddOption("p", "x:A")
//	if err := p.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package cover
