// Package containerkit is a collection of generic in-memory container engines
// and the iteration tooling around them.
//
// The containers live in pkg/datastruct,
// lazy sequence composition in pkg/iterkit,
// and the shared building blocks in pkg/arena, pkg/compare, pkg/slicekit,
// pkg/errorkit and pkg/option.
package containerkit
