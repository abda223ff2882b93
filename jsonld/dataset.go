package jsonld

// Dataset is an in-memory collection of quads. Quads are kept in insertion
// order, which makes context derivation deterministic for a given dataset.
type Dataset struct {
	quads []Quad
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

// Add appends a quad to the dataset.
func (d *Dataset) Add(q Quad) {
	d.quads = append(d.quads, q)
}

// AddTriple appends a triple to the default graph.
func (d *Dataset) AddTriple(t Triple) {
	d.quads = append(d.quads, t.ToQuad())
}

// Quads returns all quads in insertion order.
// The returned slice is shared with the dataset; callers must not modify it.
func (d *Dataset) Quads() []Quad {
	return d.quads
}

// DefaultGraph returns the quads of the default graph in insertion order.
func (d *Dataset) DefaultGraph() []Quad {
	out := make([]Quad, 0, len(d.quads))
	for _, q := range d.quads {
		if q.InDefaultGraph() {
			out = append(out, q)
		}
	}
	return out
}

// Len returns the number of quads in the dataset.
func (d *Dataset) Len() int {
	return len(d.quads)
}
