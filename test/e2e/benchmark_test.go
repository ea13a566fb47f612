package e2e_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/parser"
)

// generateNestedJSON creates a deeply nested JSON structure for benchmarking
func generateNestedJSON(depth int, width int) map[string]interface{} {
	if depth <= 0 {
		return map[string]interface{}{
			"leaf_value": "data",
			"count":      rand.Intn(100),
			"enabled":    rand.Intn(2) == 1,
		}
	}

	result := make(map[string]interface{})
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedJSON(depth-1, width)
	}
	return result
}

// generateWideJSON creates a JSON object with many fields at the same level
func generateWideJSON(fieldCount int) map[string]interface{} {
	result := make(map[string]interface{})
	for i := 0; i < fieldCount; i++ {
		switch i % 4 {
		case 0:
			result[fmt.Sprintf("string_field_%d", i)] = fmt.Sprintf("value_%d", i)
		case 1:
			result[fmt.Sprintf("int_field_%d", i)] = i
		case 2:
			result[fmt.Sprintf("bool_field_%d", i)] = i%2 == 0
		case 3:
			result[fmt.Sprintf("float_field_%d", i)] = float64(i) + 0.5
		}
	}
	return result
}

func marshalInput(b *testing.B, v interface{}) string {
	b.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		b.Fatalf("failed to build benchmark input: %v", err)
	}
	return string(data)
}

// BenchmarkDeepNesting benchmarks performance with deeply nested documents
func BenchmarkDeepNesting(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}

	input := marshalInput(b, generateNestedJSON(6, 3))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.ParseString(input); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWideObject benchmarks performance with many sibling fields
func BenchmarkWideObject(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}

	input := marshalInput(b, generateWideJSON(2000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.ParseString(input); err != nil {
			b.Fatal(err)
		}
	}
}

// TestBenchmarkInputsParse sanity-checks the generated inputs outside of
// benchmark mode
func TestBenchmarkInputsParse(t *testing.T) {
	nested, err := json.Marshal(generateNestedJSON(3, 2))
	require.NoError(t, err)
	_, err = parser.ParseString(string(nested))
	require.NoError(t, err)

	wide, err := json.Marshal(generateWideJSON(100))
	require.NoError(t, err)
	_, err = parser.ParseString(string(wide))
	require.NoError(t, err)
}
