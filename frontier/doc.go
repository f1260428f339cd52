// Package frontier tracks which exits of a partially explored grid map
// have been traveled and decides where an explorer should go next.
//
// A Tracker keeps a discovery map (node → exit → discovered flag) and a set
// of scanned nodes next to a shared *core.Graph:
//
//   - RecordScan adds the exits seen at a node as undiscovered.
//   - RecordTraversal marks an exit discovered after it has been traveled.
//   - RecordUnveiled marks both ends of a remotely revealed path discovered.
//   - NextDirection claims a local undiscovered exit or, failing that, heads
//     along the shortest usable route toward the nearest unfinished node.
//
// A node's Status only moves forward: Unknown → Pending → Discovered. A node
// stays Pending until it has been scanned, so Status and Frontier agree.
//
// The fallback search asks a RouteFinder once per candidate. The default is
// a dijkstra.Router over the same graph; WithRouteFinder swaps in another
// strategy (for example a multi-source search) without changing callers.
package frontier
