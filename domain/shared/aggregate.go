package shared

// AggregateRoot is the entry point of a consistency boundary.
// All reads and writes to the objects it owns flow through it.
type AggregateRoot interface {
	// ID returns the aggregate's globally unique identifier.
	ID() string
}

// ValueObject is an immutable type defined entirely by its data.
// Equality is value-based; mutators return new instances.
// Go cannot enforce immutability, so implementations keep fields private and
// expose factories as the only construction path.
type ValueObject interface {
	// Equals compares by value, not identity.
	Equals(other interface{}) bool
}
