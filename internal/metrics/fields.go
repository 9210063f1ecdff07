package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrBackend   = "backend"
	AttrOperation = "operation"
	AttrResult    = "result"
)

// Login attempt outcomes recorded under AttrResult.
const (
	LoginAccepted    = "accepted"
	LoginRejected    = "rejected"
	LoginRateLimited = "rate_limited"
)
