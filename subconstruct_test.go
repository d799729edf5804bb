package construct

import "testing"

func TestExprAdapterRoundTrip(t *testing.T) {
	doubled := ExprAdapter(FormatField("n", '<', 'B'),
		func(v any, ctx *Container) (any, error) { n, _ := toInt64(v); return n * 2, nil },
		func(v any, ctx *Container) (any, error) { n, _ := toInt64(v); return n / 2, nil },
	)
	v, err := doubled.Parse([]byte{10})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.(int64) != 5 {
		t.Errorf("Parse() = %v, want 5", v)
	}
	data, err := doubled.Build(int64(5))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if data[0] != 10 {
		t.Errorf("Build() = %v, want [10]", data)
	}
}

func TestAdapterInheritsChildNameAndSize(t *testing.T) {
	child := FormatField("value", '<', 'I')
	a := ExprAdapter(child, func(v any, ctx *Container) (any, error) { return v, nil }, func(v any, ctx *Container) (any, error) { return v, nil })
	if a.Name() != "value" {
		t.Errorf("Name() = %q, want value", a.Name())
	}
	n, err := a.SizeOf()
	if err != nil || n != 4 {
		t.Fatalf("SizeOf() = %d, %v, want 4, nil", n, err)
	}
}
