package export

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"steam-intake/internal/registration"
)

const (
	MentorFilename = "mentor_form_data.csv"
	MenteeFilename = "mentee_form_data.csv"

	arraySeparator = "; "
)

// Writer produces the single-row CSV snapshot of a submitted registration.
// Every value is quoted and embedded quotes are doubled, which the stdlib csv
// encoder will not do for unremarkable values, so the row is assembled by
// hand.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteMentor writes the mentor snapshot and returns the file path.
func (w *Writer) WriteMentor(p *registration.MentorPayload) (string, error) {
	return w.write(MentorFilename, p)
}

// WriteMentee writes the mentee snapshot and returns the file path.
func (w *Writer) WriteMentee(p *registration.MenteePayload) (string, error) {
	return w.write(MenteeFilename, p)
}

func (w *Writer) write(name string, payload any) (string, error) {
	headers, values, err := Rows(payload)
	if err != nil {
		return "", err
	}
	doc := Encode(headers, values)
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("write csv snapshot: %w", err)
	}
	return path, nil
}

// Encode renders a header row and one data row, every cell quoted.
func Encode(headers, values []string) string {
	var b strings.Builder
	writeRow(&b, headers)
	writeRow(&b, values)
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(c, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// Rows flattens a payload struct into parallel header and value slices in
// field declaration order, using the wire (json tag) names. Embedded structs
// are walked inline so the defaults block keeps its position.
func Rows(payload any) (headers, values []string, err error) {
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("nil payload")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("payload must be a struct, got %s", v.Kind())
	}
	collect(v, &headers, &values)
	return headers, values, nil
}

func collect(v reflect.Value, headers, values *[]string) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collect(v.Field(i), headers, values)
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		*headers = append(*headers, name)
		*values = append(*values, cell(v.Field(i)))
	}
}

// cell renders one value: absent pointers become the empty string, slices
// join their elements with the array separator.
func cell(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return ""
		}
		return cell(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			return ""
		}
		return cell(v.Elem())
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts[i] = cell(v.Index(i))
		}
		return strings.Join(parts, arraySeparator)
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}
