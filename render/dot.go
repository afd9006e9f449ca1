package render

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"github.com/katalvlaran/orienteer/core"
)

// Scale converts map units to Graphviz points.
const Scale = 0.75

const (
	usedColor   = "red"
	unusedColor = "cyan"
)

type node struct {
	ID    string
	Label string
	Pos   string
	Shape string
}

type edge struct {
	From, To string
	Label    string
	Color    string
	Width    string
}

type view struct {
	Nodes []node
	Edges []edge
}

const tmplMap = `graph Map {
	layout="neato";
	splines="line";
	node [shape="circle" style="filled" fillcolor="white" fontname="Verdana" fontsize="10"];
	edge [fontname="Verdana" fontsize="9"];
{{range .Nodes}}	{{printf "%q" .ID}} [label={{printf "%q" .Label}} pos={{printf "%q" .Pos}} shape={{printf "%q" .Shape}}];
{{end}}{{range .Edges}}	{{printf "%q" .From}} -- {{printf "%q" .To}} [label={{printf "%q" .Label}} color={{printf "%q" .Color}} penwidth={{printf "%q" .Width}}];
{{end}}}
`

var mapTemplate = template.Must(template.New("map").Parse(tmplMap))

// DOT returns the Graphviz description of g. Vertices and roads appear in
// insertion order so the output is stable.
func DOT(g *core.Graph) ([]byte, error) {
	start := g.Start()
	var v view
	for _, id := range g.Vertices() {
		vx, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("render: vertex %q: %w", id, err)
		}
		n := node{
			ID:    id,
			Label: nodeLabel(vx),
			Pos:   fmt.Sprintf("%s,%s!", coord(vx.X), coord(vx.Y)),
			Shape: "circle",
		}
		if id == start {
			n.Shape = "doublecircle"
		}
		v.Nodes = append(v.Nodes, n)
	}
	for _, e := range g.Edges() {
		ed := edge{From: e.From, To: e.To, Label: strconv.FormatInt(e.Weight, 10), Color: unusedColor, Width: "1"}
		if e.Used {
			ed.Color, ed.Width = usedColor, "2.5"
		}
		v.Edges = append(v.Edges, ed)
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}

// nodeLabel is the vertex ID over its label, or over its interest when
// it has no label.
func nodeLabel(v *core.Vertex) string {
	if v.Label != "" {
		return v.ID + "\n" + v.Label
	}

	return v.ID + "\n" + strconv.FormatInt(v.Interest, 10)
}

func coord(c float64) string {
	return strconv.FormatFloat(c*Scale, 'f', -1, 64)
}
