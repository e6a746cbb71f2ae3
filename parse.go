package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/tidwall/gjson"
)

// NamedRequest is one entry of a batch file.
type NamedRequest struct {
	Name    string
	Request solver.Request
}

var errMalformed = errors.New("malformed request")

// parseRequest reads {"stocks": [...], "target": n, "volume": n}. Missing
// numbers decode as zero and are rejected later by validation.
func parseRequest(v gjson.Result) (solver.Request, error) {
	if !v.IsObject() {
		return solver.Request{}, fmt.Errorf("%w: want a JSON object", errMalformed)
	}
	stocks := v.Get("stocks")
	if stocks.Exists() && !stocks.IsArray() {
		return solver.Request{}, fmt.Errorf("%w: stocks must be an array", errMalformed)
	}
	req := solver.Request{
		TargetConcentration: v.Get("target").Float(),
		TotalVolume:         v.Get("volume").Float(),
	}
	var bad error
	stocks.ForEach(func(_, s gjson.Result) bool {
		if s.Type != gjson.Number {
			bad = fmt.Errorf("%w: stock %s is not a number", errMalformed, s.Raw)
			return false
		}
		req.Stocks = append(req.Stocks, s.Float())
		return true
	})
	if bad != nil {
		return solver.Request{}, bad
	}
	return req, nil
}

// parseRequests reads a batch document {"requests": [...]}.
func parseRequests(doc string) ([]NamedRequest, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: invalid JSON", errMalformed)
	}
	list := gjson.Get(doc, "requests")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: missing requests array", errMalformed)
	}

	var out []NamedRequest
	var err error
	list.ForEach(func(_, v gjson.Result) bool {
		n := len(out) + 1
		req, perr := parseRequest(v)
		if perr != nil {
			err = fmt.Errorf("request %d: %w", n, perr)
			return false
		}
		name := v.Get("name").String()
		if name == "" {
			name = fmt.Sprintf("request-%d", n)
		}
		out = append(out, NamedRequest{Name: name, Request: req})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadRequests reads and parses a batch file.
func LoadRequests(path string) ([]NamedRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	reqs, err := parseRequests(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return reqs, nil
}

// FindRequest returns the request with the given name, or nil if not found.
func FindRequest(reqs []NamedRequest, name string) *NamedRequest {
	for i := range reqs {
		if reqs[i].Name == name {
			return &reqs[i]
		}
	}
	return nil
}
