package formtree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func decodeDoc(t *testing.T, entries []Entry) *Object {
	t.Helper()
	doc, err := DecodeSlice(entries, Options{})
	if err != nil {
		t.Fatalf("DecodeSlice error = %v", err)
	}
	return doc
}

func TestMarshalJSONPreservesOrder(t *testing.T) {
	t.Parallel()

	doc := decodeDoc(t, []Entry{
		{Path: "zebra", Value: "1"},
		{Path: "apple", Value: "2"},
		{Path: "mango.inner", Value: "3"},
	})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"zebra":"1","apple":"2","mango":{"inner":"3"}}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestMarshalJSONPadsWithNull(t *testing.T) {
	t.Parallel()

	doc := decodeDoc(t, []Entry{{Path: "a[2]", Value: "x"}})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"a":[null,null,"x"]}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestMarshalJSONCoercedValues(t *testing.T) {
	t.Parallel()

	doc := decodeDoc(t, []Entry{
		{Path: "+n", Value: "1.5"},
		{Path: "&b", Value: "true"},
		{Path: "-z", Value: "ignored"},
	})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"n":1.5,"b":true,"z":null}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestMarshalYAMLPreservesOrder(t *testing.T) {
	t.Parallel()

	doc := decodeDoc(t, []Entry{
		{Path: "zebra", Value: "1"},
		{Path: "apple[]", Value: "2"},
		{Path: "apple[]", Value: "3"},
	})

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	text := string(data)
	if strings.Index(text, "zebra") > strings.Index(text, "apple") {
		t.Fatalf("yaml lost key order:\n%s", text)
	}
}

func TestMarshalJSONFileMetadata(t *testing.T) {
	t.Parallel()

	doc := decodeDoc(t, []Entry{{
		Path: "upload",
		Value: &File{
			Ref:         "ref-1",
			Filename:    "report.pdf",
			ContentType: "application/pdf",
			Size:        3,
			Data:        []byte("pdf"),
		},
	}})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	text := string(data)
	if !strings.Contains(text, `"filename":"report.pdf"`) {
		t.Fatalf("json missing filename: %s", text)
	}
	if strings.Contains(text, `"data"`) {
		t.Fatalf("json leaked file content: %s", text)
	}
}

func TestInterfaceConversion(t *testing.T) {
	t.Parallel()

	doc := decodeDoc(t, []Entry{
		{Path: "a.b", Value: "x"},
		{Path: "c[0]", Value: "y"},
	})

	got := doc.Interface()

	inner, ok := got["a"].(map[string]any)
	if !ok {
		t.Fatalf("a is %T, want map[string]any", got["a"])
	}
	if inner["b"] != "x" {
		t.Fatalf("a.b = %v, want x", inner["b"])
	}

	arr, ok := got["c"].([]any)
	if !ok {
		t.Fatalf("c is %T, want []any", got["c"])
	}
	if len(arr) != 1 || arr[0] != "y" {
		t.Fatalf("c = %v, want [y]", arr)
	}
}
