package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindObject, "object"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected Kind
	}{
		{"null", Null{}, KindNull},
		{"bool", Bool(true), KindBool},
		{"number", Number(3.14), KindNumber},
		{"string", String("hello"), KindString},
		{"array", Array{Number(1), Number(2)}, KindArray},
		{"object", Object{"a": Null{}}, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Kind())
		})
	}
}

func TestValue_NestedComposition(t *testing.T) {
	// A tree assembled by hand should compare equal to an identically
	// shaped tree; maps and slices compare structurally.
	a := Object{
		"items": Array{Number(1), String("two"), Bool(false), Null{}},
		"meta":  Object{"count": Number(4)},
	}
	b := Object{
		"items": Array{Number(1), String("two"), Bool(false), Null{}},
		"meta":  Object{"count": Number(4)},
	}
	assert.Equal(t, a, b)
}
