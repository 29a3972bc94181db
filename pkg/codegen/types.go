package codegen

import "github.com/raymyers/sharpen/pkg/ast"

// primitiveTypes maps source primitive spellings to C# types. Other names are
// user types and pass through.
var primitiveTypes = map[string]string{
	"str": "string",
	"i8":  "sbyte",
	"u8":  "byte",
	"i16": "int",
	"u16": "uint",
	"i32": "long",
	"u32": "ulong",
	"i64": "long",
	"u64": "ulong",
	"f32": "float",
	"f64": "double",
}

// TypeName renders a type descriptor. Array dimensions beyond the first are
// not represented: T[,] renders as T[].
func TypeName(t ast.Type) string {
	switch t := t.(type) {
	case ast.SymbolType:
		if name, ok := primitiveTypes[t.Name]; ok {
			return name
		}
		return t.Name
	case ast.ArrayType:
		return TypeName(t.Elem) + "[]"
	}
	return "object"
}
