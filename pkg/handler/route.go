package handler

// Route type
type Route string

const (
	// RouteList list the names of all stored skeletons
	RouteList Route = "skeletons"
	// RouteGet get one skeleton as canonical json
	RouteGet Route = "get"
	// RouteStats get summary stats for one skeleton
	RouteStats Route = "stats"
)
