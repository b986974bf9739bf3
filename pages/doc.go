// Package pages assembles one page of an analysis response.
//
// An [Assembler] walks the blocks of a page once. PAGE blocks give the page
// geometry, TABLE blocks become tables and KEY blocks become form pairs.
// LINE blocks become running text unless every child they list is claimed
// by a table, cell or form pair on the same page:
//
//	a := pages.NewAssembler(builder.DefaultConfig(), layout.DefaultConfig())
//	page, report, err := a.Assemble(1, nodes, graph)
//
// The lines that survive are handed to the layout reconstructor. Page
// content lists the resulting paragraphs first, then tables in encounter
// order, then the form when it holds at least one pair.
package pages
