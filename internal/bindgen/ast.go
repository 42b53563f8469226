package bindgen

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Node is the subset of clang's -ast-dump=json node schema the generator reads.
type Node struct {
	ID                  string    `json:"id"`
	Kind                string    `json:"kind"`
	Name                string    `json:"name"`
	IsImplicit          bool      `json:"isImplicit"`
	Type                *QualType `json:"type"`
	TagUsed             string    `json:"tagUsed"`
	CompleteDefinition  bool      `json:"completeDefinition"`
	IsBitfield          bool      `json:"isBitfield"`
	Variadic            bool      `json:"variadic"`
	Value               string    `json:"value"`
	Opcode              string    `json:"opcode"`
	FixedUnderlyingType *QualType `json:"fixedUnderlyingType"`
	OwnedTagDecl        *DeclRef  `json:"ownedTagDecl"`
	Decl                *DeclRef  `json:"decl"`
	Inner               []*Node   `json:"inner"`
}

// QualType is a clang type spelling.
type QualType struct {
	QualType          string `json:"qualType"`
	DesugaredQualType string `json:"desugaredQualType"`
}

// DeclRef points at another node by id.
type DeclRef struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func (n *Node) typeSpelling() string {
	if n.Type == nil {
		return ""
	}
	return n.Type.QualType
}

// DecodeAST reads a clang JSON AST dump rooted at a TranslationUnitDecl.
func DecodeAST(r io.Reader) (*Node, error) {
	var root Node
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode clang AST: %w", err)
	}
	if root.Kind != "TranslationUnitDecl" {
		return nil, fmt.Errorf("decode clang AST: root is %q, want TranslationUnitDecl", root.Kind)
	}
	return &root, nil
}

// findTagRef returns the id of the first tag declaration referenced below n.
// Typedefs of anonymous enums and records point at their tag this way.
func findTagRef(n *Node) string {
	for _, c := range n.Inner {
		if c.OwnedTagDecl != nil {
			return c.OwnedTagDecl.ID
		}
		if c.Decl != nil && (c.Decl.Kind == "EnumDecl" || c.Decl.Kind == "RecordDecl" || c.Decl.Kind == "CXXRecordDecl") {
			return c.Decl.ID
		}
		if id := findTagRef(c); id != "" {
			return id
		}
	}
	return ""
}

// constValue evaluates the integer a node tree denotes, as far as clang has
// already folded it.
func constValue(n *Node) (int64, bool) {
	switch n.Kind {
	case "ConstantExpr", "IntegerLiteral":
		if n.Value != "" {
			if v, ok := parseIntLiteral(n.Value); ok {
				return v, true
			}
			// Unsigned 64-bit values keep their bit pattern.
			if u, ok := parseUintLiteral(n.Value); ok {
				return int64(u), true
			}
		}
	case "UnaryOperator":
		if len(n.Inner) == 1 {
			if v, ok := constValue(n.Inner[0]); ok {
				switch n.Opcode {
				case "-":
					return -v, true
				case "~":
					return ^v, true
				case "+":
					return v, true
				}
			}
		}
		return 0, false
	case "BinaryOperator":
		if len(n.Inner) != 2 {
			return 0, false
		}
		l, lok := constValue(n.Inner[0])
		r, rok := constValue(n.Inner[1])
		if !lok || !rok {
			return 0, false
		}
		switch n.Opcode {
		case "+":
			return l + r, true
		case "-":
			return l - r, true
		case "*":
			return l * r, true
		case "|":
			return l | r, true
		case "&":
			return l & r, true
		case "<<":
			return l << uint(r), true
		case ">>":
			return l >> uint(r), true
		}
		return 0, false
	}
	for _, c := range n.Inner {
		if v, ok := constValue(c); ok {
			return v, true
		}
	}
	return 0, false
}
