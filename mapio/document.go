package mapio

// Document is a serialized map.
type Document struct {
	SpawnRate float64     `json:"SpawnRate" yaml:"spawnRate"`
	Vertices  []VertexDoc `json:"Vertices" yaml:"vertices"`
	Edges     []EdgeDoc   `json:"Edges" yaml:"edges"`
}

// VertexDoc is a control point. ChildText is the label drawn next to it.
type VertexDoc struct {
	Name      string  `json:"Name" yaml:"name"`
	Interest  int64   `json:"Interest" yaml:"interest"`
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	ChildText string  `json:"ChildText" yaml:"childText,omitempty"`
}

// EdgeDoc is an undirected road between two named vertices.
type EdgeDoc struct {
	Weight           int64  `json:"Weight" yaml:"weight"`
	FirstVertexName  string `json:"FirstVertexName" yaml:"from"`
	SecondVertexName string `json:"SecondVertexName" yaml:"to"`
}

// Start returns the name of the start vertex, or "" for an empty document.
func (d *Document) Start() string {
	if len(d.Vertices) == 0 {
		return ""
	}

	return d.Vertices[0].Name
}

// TotalInterest sums the interest of every vertex.
func (d *Document) TotalInterest() int64 {
	var sum int64
	for _, v := range d.Vertices {
		sum += v.Interest
	}

	return sum
}
