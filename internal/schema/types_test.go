package schema

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseVarType(t *testing.T) {
	tests := []struct {
		input  string
		want   VarType
		wantOK bool
	}{
		{"str", TypeString, true},
		{"int", TypeInteger, true},
		{"float", TypeFloat, true},
		{"bool", TypeBoolean, true},
		{"any", TypeAny, true},
		{"  int  ", TypeInteger, true},
		{`"float"`, TypeFloat, true},
		{`'bool'`, TypeBoolean, true},
		{` "any" `, TypeAny, true},
		{"Str", 0, false},
		{"INT", 0, false},
		{"string", 0, false},
		{"", 0, false},
		{`"int'`, 0, false},
		{`""int""`, 0, false},
		{"bogus", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVarType(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseVarType(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseVarType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVarType_Validate(t *testing.T) {
	tests := []struct {
		typ   VarType
		value string
		want  bool
	}{
		{TypeString, "hello", true},
		{TypeString, " ", true},
		{TypeString, "", false},

		{TypeInteger, "123", true},
		{TypeInteger, "-123", true},
		{TypeInteger, "0", true},
		{TypeInteger, "12.3", false},
		{TypeInteger, "abc", false},
		{TypeInteger, "", false},
		{TypeInteger, "1,000", false},
		{TypeInteger, " 1", false},

		{TypeFloat, "1.23", true},
		{TypeFloat, "-1.23", true},
		{TypeFloat, "123", true},
		{TypeFloat, "abc", false},
		{TypeFloat, "1e400", true},
		{TypeFloat, "-1e400", true},
		{TypeFloat, "0x1p4", false},
		{TypeFloat, "-0X1p4", false},
		{TypeFloat, "1_000", false},
		{TypeFloat, "1_000.5", false},
		{TypeFloat, "", false},

		{TypeBoolean, "true", true},
		{TypeBoolean, "false", true},
		{TypeBoolean, "True", false},
		{TypeBoolean, "1", false},
		{TypeBoolean, "yes", false},
		{TypeBoolean, "", false},

		{TypeAny, "", true},
		{TypeAny, "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.value, func(t *testing.T) {
			if got := tt.typ.Validate(tt.value); got != tt.want {
				t.Errorf("%v.Validate(%q) = %v, want %v", tt.typ, tt.value, got, tt.want)
			}
		})
	}
}

func TestVarType_String(t *testing.T) {
	for typ, name := range varTypeNames {
		if typ.String() != name {
			t.Errorf("String() = %q, want %q", typ.String(), name)
		}
		parsed, ok := ParseVarType(name)
		if !ok || parsed != typ {
			t.Errorf("ParseVarType(%q) = %v, %v; want %v", name, parsed, ok, typ)
		}
	}
	if got := VarType(42).String(); got != "VarType(42)" {
		t.Errorf("unknown VarType String() = %q", got)
	}
}

// Property: quoting and padding a valid token never changes the parsed type.
func TestParseVarType_QuotedTokens_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("quoted and padded tokens parse to the same type", prop.ForAll(
		func(token string, quote string, pad string) bool {
			want, _ := ParseVarType(token)
			got, ok := ParseVarType(pad + quote + token + quote + pad)
			return ok && got == want
		},
		gen.OneConstOf("str", "int", "float", "bool", "any"),
		gen.OneConstOf("", `"`, "'"),
		gen.OneConstOf("", " ", "\t", "  "),
	))

	properties.Property("integers validate as int and float", prop.ForAll(
		func(n int64) bool {
			s := strconv.FormatInt(n, 10)
			return TypeInteger.Validate(s) && TypeFloat.Validate(s)
		},
		gen.Int64(),
	))

	properties.Property("any accepts every string", prop.ForAll(
		func(s string) bool {
			return TypeAny.Validate(s)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
