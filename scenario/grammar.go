package scenario

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/gridmap/core"
)

// Edge notation:
//
//	(0,0) N -> (0,1) S : 1
//	(0,2) north -> (0,3) south : blocked
var sEdgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `->`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[(),:]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type edgeExpr struct {
	From   *endpointExpr `parser:"@@ '->'"`
	To     *endpointExpr `parser:"@@ ':'"`
	Weight *weightExpr   `parser:"@@"`
}

type endpointExpr struct {
	Node *nodeExpr `parser:"@@"`
	Dir  string    `parser:"@Ident"`
}

type nodeExpr struct {
	X int `parser:"'(' @Int ','"`
	Y int `parser:"@Int ')'"`
}

type weightExpr struct {
	Blocked bool `parser:"  @'blocked'"`
	Value   *int `parser:"| @Int"`
}

var (
	sParseEdge = participle.MustBuild[edgeExpr](
		participle.Lexer(sEdgeLexer),
		participle.CaseInsensitive("Ident"),
	)
	sParseEndpoint = participle.MustBuild[endpointExpr](
		participle.Lexer(sEdgeLexer),
	)
	sParseNode = participle.MustBuild[nodeExpr](
		participle.Lexer(sEdgeLexer),
	)
)

// ParseEdge parses one edge in "(x,y) D -> (x,y) D : weight" notation.
func ParseEdge(s string) (Edge, error) {
	expr, err := sParseEdge.ParseString("", s)
	if err != nil {
		return Edge{}, errors.Wrapf(ErrSyntax, "%q: %v", s, err)
	}
	from, err := expr.From.endpoint()
	if err != nil {
		return Edge{}, errors.Wrapf(err, "%q", s)
	}
	to, err := expr.To.endpoint()
	if err != nil {
		return Edge{}, errors.Wrapf(err, "%q", s)
	}
	w, err := expr.Weight.weight()
	if err != nil {
		return Edge{}, errors.Wrapf(err, "%q", s)
	}

	return Edge{From: from, To: to, Weight: w}, nil
}

// ParseEndpoint parses a pose such as "(0,0) N".
func ParseEndpoint(s string) (core.Endpoint, error) {
	expr, err := sParseEndpoint.ParseString("", s)
	if err != nil {
		return core.Endpoint{}, errors.Wrapf(ErrSyntax, "%q: %v", s, err)
	}

	return expr.endpoint()
}

// ParseNode parses a node such as "(0,2)".
func ParseNode(s string) (core.Node, error) {
	expr, err := sParseNode.ParseString("", s)
	if err != nil {
		return core.Node{}, errors.Wrapf(ErrSyntax, "%q: %v", s, err)
	}

	return expr.node(), nil
}

func (n *nodeExpr) node() core.Node { return core.Node{X: n.X, Y: n.Y} }

func (e *endpointExpr) endpoint() (core.Endpoint, error) {
	d, err := core.ParseDirection(e.Dir)
	if err != nil {
		return core.Endpoint{}, err
	}

	return core.Endpoint{Node: e.Node.node(), Direction: d}, nil
}

func (w *weightExpr) weight() (core.Weight, error) {
	if w.Blocked {
		return core.Blocked, nil
	}
	v := core.Weight(*w.Value)
	if !v.Valid() {
		return 0, errors.Wrapf(core.ErrInvalidWeight, "weight %d", v)
	}

	return v, nil
}
