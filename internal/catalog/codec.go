package catalog

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Params holds the caller-supplied arguments for one endpoint call.
// Values must be scalars; they are stringified for query encoding,
// never coerced.
type Params map[string]any

// MissingParameterError reports a required parameter absent from the
// call arguments. Raised before any network I/O.
type MissingParameterError struct {
	Endpoint  string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Endpoint, e.Parameter)
}

// UnknownParameterError reports an argument the endpoint does not
// declare. The API silently drops unrecognized query parameters, so
// letting these through would mask caller typos.
type UnknownParameterError struct {
	Endpoint  string
	Parameter string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: unknown parameter %q", e.Endpoint, e.Parameter)
}

// Encode validates params against the endpoint spec and produces the
// wire query values. Required parameters are checked in declared
// order; unknown keys are reported in lexical order so failures are
// deterministic.
func Encode(spec *Spec, params Params) (url.Values, error) {
	for _, name := range spec.Required {
		if _, ok := params[name]; !ok {
			return nil, &MissingParameterError{Endpoint: spec.Key(), Parameter: name}
		}
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(url.Values, len(params))
	for _, k := range keys {
		if !spec.Allows(k) {
			return nil, &UnknownParameterError{Endpoint: spec.Key(), Parameter: k}
		}
		values.Set(k, formatValue(params[k]))
	}
	return values, nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
