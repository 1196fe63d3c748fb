/*
Package server implements msgpack IPC for name matching services.

Clients write one msgpack map per request to stdin and read one msgpack map per
response from stdout. Requests are processed synchronously and every successful
response carries the processing time in microseconds.

# Requests

Every request has an id and an action:

	{"id": "r1", "action": "match", "name": "አማኑኤል", "query": "amanuel"}
	{"id": "r2", "action": "match", "name": "Abebe", "query": "abeb", "opts": {"fuzzy": true}}
	{"id": "r3", "action": "expand", "query": "amanuel"}
	{"id": "r4", "action": "translit", "text": "amanuel", "partial": false}
	{"id": "r5", "action": "batch_expand", "queries": ["abebe", "hana"]}
	{"id": "r6", "action": "clear_cache"}
	{"id": "r7", "action": "stats"}

Options left out of a request fall back to the [match] and [translit] sections of
the config file.

# Responses

	{"id": "r1", "m": true, "t": 41}
	{"id": "r3", "v": ["amanuel", "አማኑኤል"], "c": 2, "t": 12}
	{"id": "r6", "status": "ok"}
	{"id": "r7", "status": "ok", "stats": {"entries": 66, "cacheLen": 3}, "dict": "9f2c41d07ab3e215"}

Failures are reported as {"id", "e", "c"} where c is 400 for invalid input, 403 for
input rejected by the dangerous pattern check and 500 for internal errors.
*/
package server

// Request is the union of all request shapes. Text fields are decoded as any so
// that a non-string value is reported as an invalid type instead of breaking the
// whole message.
type Request struct {
	ID      string          `msgpack:"id"`
	Action  string          `msgpack:"action"`
	Name    any             `msgpack:"name,omitempty"`
	Query   any             `msgpack:"query,omitempty"`
	Text    any             `msgpack:"text,omitempty"`
	Queries []any           `msgpack:"queries,omitempty"`
	Options *RequestOptions `msgpack:"opts,omitempty"`
	Partial *bool           `msgpack:"partial,omitempty"`
	Cache   *bool           `msgpack:"cache,omitempty"`
	Strict  bool            `msgpack:"strict,omitempty"` // run the dangerous pattern check first
}

// RequestOptions overrides the configured match options field by field.
type RequestOptions struct {
	CaseSensitive *bool    `msgpack:"case_sensitive,omitempty"`
	WholeWord     *bool    `msgpack:"whole_word,omitempty"`
	Fuzzy         *bool    `msgpack:"fuzzy,omitempty"`
	MaxDistance   *float64 `msgpack:"max_distance,omitempty"`
	Phonetic      *bool    `msgpack:"phonetic,omitempty"`
}

// MatchResponse - match verdict
type MatchResponse struct {
	ID        string `msgpack:"id"`
	Matched   bool   `msgpack:"m"`
	TimeTaken int64  `msgpack:"t"`
}

// VariantsResponse - expand and translit results
type VariantsResponse struct {
	ID        string   `msgpack:"id"`
	Variants  []string `msgpack:"v"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// BatchResponse - batch_expand results, in request order
type BatchResponse struct {
	ID        string     `msgpack:"id"`
	Results   [][]string `msgpack:"r"`
	TimeTaken int64      `msgpack:"t"`
}

// StatusResponse - clear_cache and stats
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
	Dict   string         `msgpack:"dict,omitempty"` // dictionary fingerprint, stats only
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Error codes
const (
	CodeBadRequest = 400
	CodeForbidden  = 403
	CodeInternal   = 500
)
