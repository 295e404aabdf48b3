package tracker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// DecodeError describes why a stored value could not be turned into a State.
type DecodeError struct {
	Path string // JSON path to the offending value, empty for syntax errors
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// stateSchema is compiled once; the schema text is a package constant.
var stateSchema = jsonschema.MustCompileString("henhouse-state.schema.json", stateSchemaJSON)

// Encode serializes the state as compact JSON. A nil state encodes as an
// empty array so that it decodes back to a state.
func Encode(s State) ([]byte, error) {
	if s == nil {
		s = State{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return data, nil
}

// EncodeIndent serializes the state with 2-space indentation and a trailing
// newline.
func EncodeIndent(s State) ([]byte, error) {
	if s == nil {
		s = State{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses and validates a serialized state. Step progress is
// recomputed from the decoded tasks.
func Decode(data []byte) (State, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parse state: %w", err)}
	}

	if err := stateSchema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("decode state: %w", err)}
	}
	Recompute(s)
	return s, nil
}

// schemaError reduces a schema validation failure to its first leaf cause.
func schemaError(err error) *DecodeError {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &DecodeError{Err: err}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &DecodeError{
		Path: jsonPointerToPath(ve.InstanceLocation),
		Err:  errors.New(ve.Message),
	}
}

// jsonPointerToPath turns "/0/tasks/2/done" into "[0].tasks[2].done".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
