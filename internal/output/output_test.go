package output_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResult(t *testing.T) {
	var buf bytes.Buffer

	err := output.Write(&buf, output.ErrorResult{Message: "No fan information"})
	require.NoError(t, err)
	assert.Equal(t, "{\"error\": \"No fan information\"}\n", buf.String())
}

func TestNewErrorResult(t *testing.T) {
	result := output.NewErrorResult(errors.New().New(errors.ErrNoGPU))
	assert.Equal(t, "No GPU found", result.Message)
}

func TestMarshalSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"array", []int{1, 2, 3}, `[1, 2, 3]`},
		{"nested", map[string]any{"a": []any{1, "x"}, "b": nil}, `{"a": [1, "x"], "b": null}`},
		{"separators inside strings", map[string]string{"k": "a,b:c"}, `{"k": "a,b:c"}`},
		{"escaped quote", []string{`say "hi", ok`}, `["say \"hi\", ok"]`},
		{"html kept", []string{"<a&b>"}, `["<a&b>"]`},
		{"non ascii", []string{"café"}, `["caf\u00e9"]`},
		{"astral", []string{"\U0001F321"}, `["\ud83c\udf21"]`},
		{"control", []string{"a\bb\fc\n"}, `["a\bb\fc\n"]`},
		{"empty", map[string]any{}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := output.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestMarshalOutputIsValidJSON(t *testing.T) {
	out, err := output.Marshal(map[string]any{"label": "Überhitzung, \"hot\"", "values": []float64{1.5, 2}})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Überhitzung, \"hot\"", decoded["label"])
}

func TestMarshalUnsupportedValue(t *testing.T) {
	_, err := output.Marshal(math.NaN())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrEncodeOutput))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, output.WriteText(&buf, output.InvalidMethod))
	assert.Equal(t, "Invalid method\n", buf.String())
}

func TestOrderedMap(t *testing.T) {
	m := output.NewOrderedMap[any]()
	m.Set("zeta", 1)
	m.Set("alpha", "Unknown")
	m.Set("mid", []int{})
	m.Set("zeta", 3)

	v, ok := m.Get("zeta")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	out, err := output.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta": 3, "alpha": "Unknown", "mid": []}`, string(out))

	empty, err := output.Marshal(output.NewOrderedMap[int]())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}
