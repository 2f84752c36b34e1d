package formtree

// Entry is one raw key/value pair from a form body. Value is either a string
// or a *File handle.
type Entry struct {
	Path  string
	Value any
}

// File is an opaque handle for an uploaded file part. The decoder never
// inspects Data; it travels through the tree as a leaf.
type File struct {
	Ref         string `json:"ref" yaml:"ref"`
	Filename    string `json:"filename" yaml:"filename"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Size        int64  `json:"size" yaml:"size"`
	Data        []byte `json:"-" yaml:"-"`
}
