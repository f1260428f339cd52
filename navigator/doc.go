// Package navigator is the decision layer of a grid explorer.
//
// A Navigator owns a core.Graph, a frontier.Tracker and a dijkstra.Router
// and is driven by reports:
//
//	Scan / ScanRelative  exits seen at the current node
//	Estimate             the path expected from local odometry
//	Travel               the authoritative report of the path just traveled
//	Correct              a later weight correction of a known path
//	Unveil               a path revealed by a remote party
//
// Next returns a Decision: ModeTarget while a route to the target exists,
// ModeExplore while the tracker still finds undiscovered exits, ModeDone
// once the target is reached or nothing reachable is left. Depart turns the
// pose toward the chosen exit.
//
// A blocked path is reported with End equal to Start and weight -1; after
// it the explorer stands on the same node facing back.
package navigator
