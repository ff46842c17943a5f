package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingNode is reported when an endpoint or edge references a node absent from the world.
	ErrMissingNode = zerr.New("node does not exist in the world")

	// ErrInvalidDepthLimit is reported when a search is started with a non-positive depth limit.
	ErrInvalidDepthLimit = zerr.New("depth limit must be positive")

	// ErrInfeasibleAccess is reported when access constraints along a route cannot all be satisfied.
	ErrInfeasibleAccess = zerr.New("access constraints are infeasible")

	// ErrUnreachableDestination is reported when a search exhausts the graph without reaching the target.
	ErrUnreachableDestination = zerr.New("destination is unreachable")

	// ErrUnexpectedFailure is reported when a search panics.
	ErrUnexpectedFailure = zerr.New("unexpected failure during search")

	// ErrNodeExcluded is reported when an endpoint is excluded from routing.
	ErrNodeExcluded = zerr.New("node is excluded from routing")

	// ErrUnknownAccessClass is returned when an access tag cannot be parsed.
	ErrUnknownAccessClass = zerr.New("unknown access class, expected 'a', 'b' or 'any'")

	// ErrWorldNotFound is returned when no world file can be discovered.
	ErrWorldNotFound = zerr.New("world file not found")

	// ErrWorldReadFailed is returned when the world file cannot be read.
	ErrWorldReadFailed = zerr.New("failed to read world file")

	// ErrWorldParseFailed is returned when the world file cannot be parsed.
	ErrWorldParseFailed = zerr.New("failed to parse world file")

	// ErrUnsupportedWorldVersion is returned when the world file declares an unknown version.
	ErrUnsupportedWorldVersion = zerr.New("unsupported world file version")

	// ErrEmptyNodeName is returned when a node or edge has an empty name.
	ErrEmptyNodeName = zerr.New("node name must not be empty")

	// ErrInvalidPreseedDepth is returned when the configured pre-seed depth is negative.
	ErrInvalidPreseedDepth = zerr.New("preseed depth must not be negative")

	// ErrNoRoute is returned when a query resolves to no path.
	ErrNoRoute = zerr.New("no route found")

	// ErrBatchReadFailed is returned when a batch file cannot be read.
	ErrBatchReadFailed = zerr.New("failed to read batch file")

	// ErrBatchParseFailed is returned when a batch file cannot be parsed.
	ErrBatchParseFailed = zerr.New("failed to parse batch file")

	// ErrWatcherFailed is returned when the world watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch world file")

	// ErrNoWorldLoaded is returned when an operation needs a world before any epoch began.
	ErrNoWorldLoaded = zerr.New("no world loaded")
)
