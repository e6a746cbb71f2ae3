//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// handler serves one calculation per Function URL request.
type handler struct {
	solver *solver.Solver
	log    zerolog.Logger
}

func (h *handler) handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	if !gjson.Valid(body) {
		return errResp(400, "invalid JSON")
	}
	req, err := parseRequest(gjson.Parse(body))
	if err != nil {
		return errResp(400, err.Error())
	}

	r, err := runRequest(h.solver, h.log, gjson.Get(body, "name").String(), req)
	switch {
	case errors.Is(err, solver.ErrInvalidInput):
		return errResp(400, err.Error())
	case err != nil:
		return errResp(500, "calculation failed")
	}

	respJSON, _ := json.Marshal(r)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func newHandler() (*handler, error) {
	cfg, err := LoadConfig(os.Getenv("GELCALC_CONFIG"))
	if err != nil {
		return nil, err
	}
	log := NewLogger(cfg.Log, os.Stdout)
	return &handler{solver: solver.New(cfg.Solver, log), log: log}, nil
}

func main() {
	h, err := newHandler()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	lambda.Start(h.handle)
}
