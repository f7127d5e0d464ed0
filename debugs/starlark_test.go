package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

type testCell int32

func TestToStarlarkValue(t *testing.T) {
	cellDict := func(pairs ...int) starlark.Value {
		d := starlark.NewDict(len(pairs) / 2)
		for i := 0; i < len(pairs); i += 2 {
			d.SetKey(starlark.MakeInt(pairs[i]), starlark.MakeInt(pairs[i+1]))
		}
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "Input: ", starlark.String("Input: ")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt(42)},
		{"named int32", testCell(29999), starlark.MakeInt(29999)},
		{"uint8", uint8(7), starlark.MakeInt(7)},
		{"cells", []testCell{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"non zero cells", map[int]testCell{0: 65}, cellDict(0, 65)},
		{"pointer", func() *testCell { c := testCell(3); return &c }(), starlark.MakeInt(3)},
		{"nil pointer", (*testCell)(nil), starlark.None},
		{"starlark value", starlark.String("x"), starlark.String("x")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, expected %v", actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(i int) int { return i })
		if _, ok := v.(starlark.Callable); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
