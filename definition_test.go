package enumext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefinitionAssignsOrdinals(t *testing.T) {
	def, err := NewDefinition("Status", []VariantSpec{
		Spec("Pending"),
		Spec("InQA"),
		Spec("Done"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Status", def.TypeName())
	assert.Equal(t, 3, def.Len())
	assert.False(t, def.Discriminated())
	for i, v := range def.Variants() {
		assert.Equal(t, i, v.Ordinal)
		_, has := v.Discriminant()
		assert.False(t, has)
	}
}

func TestNewDefinitionErrors(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		specs    []VariantSpec
		opts     []Option
		wantCode ErrorCode
	}{
		{
			name:     "empty enum",
			typeName: "Empty",
			specs:    nil,
			wantCode: CodeEmptyEnum,
		},
		{
			name:     "blank name",
			typeName: "Blank",
			specs:    []VariantSpec{Spec("A"), Spec("")},
			wantCode: CodeInvalidName,
		},
		{
			name:     "duplicate name",
			typeName: "Dup",
			specs:    []VariantSpec{Spec("A"), Spec("B"), Spec("A")},
			wantCode: CodeDuplicateName,
		},
		{
			name:     "mixed discriminants without opt-in",
			typeName: "Mixed",
			specs:    []VariantSpec{SpecValue("A", 1), Spec("B")},
			wantCode: CodeInconsistentDiscriminants,
		},
		{
			name:     "duplicate discriminant",
			typeName: "DupDisc",
			specs:    []VariantSpec{SpecValue("A", 5), SpecValue("B", 5)},
			wantCode: CodeDuplicateDiscriminant,
		},
		{
			name:     "negative value in unsigned default type",
			typeName: "Neg",
			specs:    []VariantSpec{SpecValue("A", -1)},
			wantCode: CodeDiscriminantOutOfRange,
		},
		{
			name:     "value too wide for int8",
			typeName: "Wide",
			specs:    []VariantSpec{SpecValue("A", 200)},
			opts:     []Option{WithIntType(Int8)},
			wantCode: CodeDiscriminantOutOfRange,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDefinition(tc.typeName, tc.specs, tc.opts...)
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, CodeOf(err))
		})
	}
}

func TestNewDefinitionImplicitSuccessors(t *testing.T) {
	def, err := NewDefinition("Level", []VariantSpec{
		SpecValue("Low", 5),
		Spec("Mid"),
		Spec("High"),
		SpecValue("Max", 100),
	}, WithImplicitDiscriminants())
	require.NoError(t, err)
	require.True(t, def.Discriminated())

	want := []int64{5, 6, 7, 100}
	for i, v := range def.Variants() {
		d, has := v.Discriminant()
		require.True(t, has)
		assert.Equal(t, want[i], d)
	}
}

func TestNewDefinitionImplicitStartsAtZero(t *testing.T) {
	// First variant unset: successor rule starts the sequence at zero.
	def, err := NewDefinition("Seq", []VariantSpec{
		Spec("A"),
		SpecValue("B", 10),
		Spec("C"),
	}, WithImplicitDiscriminants())
	require.NoError(t, err)

	var got []int64
	for _, v := range def.Variants() {
		d, _ := v.Discriminant()
		got = append(got, d)
	}
	assert.Equal(t, []int64{0, 10, 11}, got)
}

func TestNewDefinitionImplicitDuplicateCollision(t *testing.T) {
	// Successor of 4 collides with the explicit 5.
	_, err := NewDefinition("Collide", []VariantSpec{
		SpecValue("A", 4),
		Spec("B"),
		SpecValue("C", 5),
	}, WithImplicitDiscriminants())
	require.Error(t, err)
	assert.Equal(t, CodeDuplicateDiscriminant, CodeOf(err))
}

func TestNewDefinitionSignedBounds(t *testing.T) {
	def, err := NewDefinition("Temp", []VariantSpec{
		SpecValue("Freezing", -40),
		SpecValue("Boiling", 100),
	}, WithIntType(Int16))
	require.NoError(t, err)
	assert.Equal(t, Int16, def.IntType())
}

func TestParseIntType(t *testing.T) {
	tests := []struct {
		in   string
		want IntType
	}{
		{"", IntAuto},
		{"int8", Int8},
		{"i8", Int8},
		{"uint32", Uint32},
		{"u32", Uint32},
		{"isize", Int},
		{"usize", Uint},
		{"int", Int},
		{"uint", Uint},
	}
	for _, tc := range tests {
		got, err := ParseIntType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"i128", "u128", "float64", "words"} {
		_, err := ParseIntType(bad)
		require.Error(t, err, bad)
		assert.Equal(t, CodeInvalidIntType, CodeOf(err), bad)
	}
}

func TestVariantsReturnsCopy(t *testing.T) {
	def, err := NewDefinition("Copy", []VariantSpec{Spec("A"), Spec("B")})
	require.NoError(t, err)

	vs := def.Variants()
	vs[0].Name = "mutated"
	assert.Equal(t, "A", def.Variants()[0].Name)
}
