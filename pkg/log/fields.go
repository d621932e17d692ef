package log

import "time"

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field from any value.
func F(key string, value interface{}) Field { return Field{Key: key, Value: value} }

func Str(key, value string) Field                    { return Field{Key: key, Value: value} }
func Int(key string, value int) Field                { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field            { return Field{Key: key, Value: value} }
func Uint64(key string, value uint64) Field          { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field              { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err records err under "error"; a nil error records nothing useful but is allowed.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component tags entries with the owning subsystem.
func Component(name string) Field { return Field{Key: ComponentKey, Value: name} }
