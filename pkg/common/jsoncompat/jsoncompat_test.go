package jsoncompat

import (
	"bytes"
	"testing"
)

type sample struct {
	Name  string   `json:"name"`
	Year  int      `json:"year"`
	Color []string `json:"color,omitempty"`
}

func TestEncoderMatchesMarshal(t *testing.T) {
	in := sample{Name: "Huracán", Year: 2019, Color: []string{"green"}}
	b, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := bytes.TrimSpace(buf.Bytes()); !bytes.Equal(got, b) {
		t.Fatalf("encoder %s != marshal %s", got, b)
	}
	var out sample
	if err := NewDecoder(bytes.NewReader(b)).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Name != in.Name || out.Year != in.Year || len(out.Color) != 1 {
		t.Fatalf("unexpected decode result %+v", out)
	}
}
