package input

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/janjanko/fcfs/internal/workset"
)

// ReadJSON parses a JSON array of process objects. Key spellings are
// tolerant: "arrival" or "arrival_time", "burst" or "burst_time", with an
// optional "name". Anything else in an element is ignored.
func ReadJSON(data []byte) ([]workset.Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedInput)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: top-level value must be an array", ErrMalformedInput)
	}

	var entries []workset.Entry
	var parseErr error
	i := 0
	parsed.ForEach(func(_, item gjson.Result) bool {
		i++
		if !item.IsObject() {
			parseErr = fmt.Errorf("%w: element %d is not an object", ErrMalformedInput, i)
			return false
		}
		arrival, ok := intField(item, "arrival", "arrival_time")
		if !ok {
			parseErr = fmt.Errorf("%w: element %d has no integer arrival time", ErrMalformedInput, i)
			return false
		}
		burst, ok := intField(item, "burst", "burst_time")
		if !ok {
			parseErr = fmt.Errorf("%w: element %d has no integer burst time", ErrMalformedInput, i)
			return false
		}
		entries = append(entries, workset.Entry{
			Name:    item.Get("name").String(),
			Arrival: arrival,
			Burst:   burst,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return entries, nil
}

// intField returns the first of the named keys that is present, requiring
// a whole number.
func intField(item gjson.Result, keys ...string) (int, bool) {
	for _, key := range keys {
		v := item.Get(key)
		if !v.Exists() {
			continue
		}
		if v.Type != gjson.Number {
			return 0, false
		}
		f := v.Float()
		n := int(f)
		if float64(n) != f {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
