package extraction

// Technique is a single stateless heuristic that extracts field values
// from one HTML document.
type Technique interface {
	// Extract runs the heuristic against a raw HTML string. A technique
	// that finds nothing returns an empty Fields value, never an error;
	// errors are reserved for input that cannot be processed at all.
	Extract(html string) (*Fields, error)

	// Name returns the technique's registry identifier (e.g., "open_graph").
	Name() string
}

// TechniqueConstructor builds a new Technique instance. Techniques are
// constructed per extraction call and hold no state across calls.
type TechniqueConstructor func() Technique

// TechniqueRegistry maps technique names to constructors, so callers
// can configure an extractor with an ordered list of technique names.
type TechniqueRegistry interface {
	// Register adds a constructor under a name.
	// If the name is already registered, the constructor is replaced.
	Register(name string, constructor TechniqueConstructor)

	// Get constructs the technique registered under name.
	// Returns ENOTFOUND if no technique is registered under name.
	Get(name string) (Technique, error)

	// List returns all registered technique names in sorted order.
	List() []string
}
