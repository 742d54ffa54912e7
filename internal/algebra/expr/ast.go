// Package expr parses restricted infix expressions into a tree and evaluates,
// prints and rearranges them. It replaces any "evaluate string as code"
// approach: only numbers, identifiers, + - * / ^, parentheses, √, ², ³ and a
// fixed set of functions are accepted, with implicit multiplication (2x,
// 3(1+i), 2pi, (a)(b)).
package expr

// Node is an expression tree node. Trees are immutable once built.
type Node interface {
	node()
}

// Num is a real numeric literal.
type Num struct {
	Value float64
}

// Var is an identifier that is not called as a function. Constants such as
// pi or i are Vars too; they are resolved at evaluation time.
type Var struct {
	Name string
}

// Neg is unary minus.
type Neg struct {
	X Node
}

// Binary is one of + - * / ^.
type Binary struct {
	Op byte
	L  Node
	R  Node
}

// Call is a single-argument function application.
type Call struct {
	Func string
	Arg  Node
}

func (Num) node()    {}
func (Var) node()    {}
func (Neg) node()    {}
func (Binary) node() {}
func (Call) node()   {}

// Functions lists the callable names.
var Functions = map[string]bool{
	"sqrt": true,
	"abs":  true,
	"sin":  true,
	"cos":  true,
	"tan":  true,
	"exp":  true,
	"ln":   true,
	"log":  true,
}

func add(l, r Node) Node { return Binary{Op: '+', L: l, R: r} }
func sub(l, r Node) Node { return Binary{Op: '-', L: l, R: r} }
func mul(l, r Node) Node { return Binary{Op: '*', L: l, R: r} }
func div(l, r Node) Node { return Binary{Op: '/', L: l, R: r} }
func pow(l, r Node) Node { return Binary{Op: '^', L: l, R: r} }

// Add, Sub, Mul, Div and Pow build binary nodes.
func Add(l, r Node) Node { return add(l, r) }
func Sub(l, r Node) Node { return sub(l, r) }
func Mul(l, r Node) Node { return mul(l, r) }
func Div(l, r Node) Node { return div(l, r) }
func Pow(l, r Node) Node { return pow(l, r) }

// Contains reports whether the identifier name occurs in n.
func Contains(n Node, name string) bool {
	return Count(n, name) > 0
}

// Count returns how many times the identifier name occurs in n.
func Count(n Node, name string) int {
	switch v := n.(type) {
	case Var:
		if v.Name == name {
			return 1
		}
	case Neg:
		return Count(v.X, name)
	case Binary:
		return Count(v.L, name) + Count(v.R, name)
	case Call:
		return Count(v.Arg, name)
	}
	return 0
}

// Identifiers returns the distinct identifier names of n in order of first
// appearance, constants included.
func Identifiers(n Node) []string {
	var names []string
	seen := map[string]bool{}
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Var:
			if !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		case Neg:
			walk(v.X)
		case Binary:
			walk(v.L)
			walk(v.R)
		case Call:
			walk(v.Arg)
		}
	}
	walk(n)
	return names
}

// FreeVariables returns Identifiers(n) without the names of built-in constants.
func FreeVariables(n Node) []string {
	var out []string
	for _, name := range Identifiers(n) {
		if _, ok := constants[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}
