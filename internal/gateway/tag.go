package gateway

// Tag is the cache-invalidation grouping key. Every successful mutation
// invalidates the whole cached collection for its tag, and every subscriber
// watching that tag is told to re-read. Coarse on purpose: correctness over
// efficiency.
type Tag string

const (
	TagProduct  Tag = "Product"
	TagCustomer Tag = "Customer"
	TagUser     Tag = "User"
)
