package tinyv2

// RecordKind identifies the type of entry a line describes.
type RecordKind int

const (
	KindClass RecordKind = iota
	KindField
	KindMethod
	KindParameter
	KindComment
)

// String returns a human-readable kind name.
func (k RecordKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	case KindParameter:
		return "parameter"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Line tags for entry records.
const (
	tagClass     = "c"
	tagField     = "f"
	tagMethod    = "m"
	tagParameter = "p"
)

// Record is one parsed entry line. Records arrive in file order; hierarchy is
// implied by kind (a field/method belongs to the most recent class record, a
// parameter to the most recent method record).
type Record struct {
	Kind RecordKind
	// Line is the 1-based source line number, for diagnostics.
	Line int
	// Descriptor is the member type descriptor, set for fields and methods.
	// Descriptors are written in the first (source) namespace of the header.
	Descriptor string
	// ParamIndex is the zero-based parameter slot, set for parameters.
	ParamIndex int
	// Names holds one name per namespace, aligned to the header order.
	// Member and parameter names may be empty ("unnamed in that namespace");
	// class names are always non-empty.
	Names []string
	// Text is the comment body, set for comment records.
	Text string
}
