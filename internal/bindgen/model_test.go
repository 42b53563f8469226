package bindgen

import (
	"strings"
	"testing"
)

func decodeUnit(t *testing.T, js string) *Unit {
	t.Helper()
	root, err := DecodeAST(strings.NewReader(js))
	if err != nil {
		t.Fatalf("DecodeAST: %v", err)
	}
	return BuildUnit(root)
}

func TestBuildUnitCompletesForwardDeclaration(t *testing.T) {
	u := decodeUnit(t, `{"id":"0x1","kind":"TranslationUnitDecl","inner":[
		{"id":"0x2","kind":"RecordDecl","name":"CUpti_Node","tagUsed":"struct"},
		{"id":"0x3","kind":"RecordDecl","name":"CUpti_Node","tagUsed":"struct","completeDefinition":true,"inner":[
			{"id":"0x4","kind":"FieldDecl","name":"next","type":{"qualType":"struct CUpti_Node *"}}
		]}
	]}`)
	if len(u.Decls) != 1 {
		t.Fatalf("expected one declaration, got %d", len(u.Decls))
	}
	d, ok := u.Lookup("CUpti_Node")
	if !ok {
		t.Fatal("CUpti_Node not found")
	}
	r := d.(*Record)
	if !r.Complete || len(r.Fields) != 1 {
		t.Fatalf("forward declaration was not completed: %+v", r)
	}
}

func TestBuildUnitLooseConstants(t *testing.T) {
	u := decodeUnit(t, `{"id":"0x1","kind":"TranslationUnitDecl","inner":[
		{"id":"0x2","kind":"EnumDecl","inner":[
			{"id":"0x3","kind":"EnumConstantDecl","name":"CUPTI_A"},
			{"id":"0x4","kind":"EnumConstantDecl","name":"CUPTI_B","inner":[
				{"id":"0x5","kind":"ConstantExpr","value":"-2","inner":[
					{"id":"0x6","kind":"UnaryOperator","opcode":"-","inner":[{"id":"0x7","kind":"IntegerLiteral","value":"2"}]}
				]}
			]},
			{"id":"0x8","kind":"EnumConstantDecl","name":"CUPTI_C"}
		]}
	]}`)
	want := []EnumConst{{"CUPTI_A", 0}, {"CUPTI_B", -2}, {"CUPTI_C", -1}}
	if len(u.Loose) != len(want) {
		t.Fatalf("loose constants = %+v", u.Loose)
	}
	for i := range want {
		if u.Loose[i] != want[i] {
			t.Errorf("constant %d = %+v, want %+v", i, u.Loose[i], want[i])
		}
	}
}

func TestConstValueOperators(t *testing.T) {
	lit := func(v string) *Node { return &Node{Kind: "IntegerLiteral", Value: v} }
	tests := []struct {
		name string
		node *Node
		want int64
	}{
		{"shift", &Node{Kind: "BinaryOperator", Opcode: "<<", Inner: []*Node{lit("1"), lit("4")}}, 16},
		{"or", &Node{Kind: "BinaryOperator", Opcode: "|", Inner: []*Node{lit("1"), lit("6")}}, 7},
		{"not", &Node{Kind: "UnaryOperator", Opcode: "~", Inner: []*Node{lit("0")}}, -1},
		{"paren", &Node{Kind: "ParenExpr", Inner: []*Node{lit("0x20")}}, 32},
		{"unsigned", lit("18446744073709551615"), -1},
	}
	for _, tt := range tests {
		got, ok := constValue(tt.node)
		if !ok || got != tt.want {
			t.Errorf("%s: constValue = %d, %v; want %d", tt.name, got, ok, tt.want)
		}
	}
}
