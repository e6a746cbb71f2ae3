//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler() *handler {
	return &handler{solver: solver.New(solver.DefaultConfig(), zerolog.Nop()), log: zerolog.Nop()}
}

func TestHandler_Solve(t *testing.T) {
	resp, err := testHandler().handle(context.Background(), events.LambdaFunctionURLRequest{
		Body: `{"name": "pair", "stocks": [6, 10], "target": 8, "volume": 10}`,
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var r Report
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &r))
	assert.Equal(t, "pair", r.Name)
	assert.NotEmpty(t, r.ID)
	require.NotEmpty(t, r.Solutions)
	assert.InDeltaSlice(t, []float64{5, 1}, r.Solutions[0].Volumes, 1e-9)
	assert.True(t, r.Solutions[0].Integer)
	assert.InDelta(t, 40.0, r.Solutions[0].DiluentPercent, 1e-9)
	assert.Contains(t, resp.Body, `"integer":true`)
}

func TestHandler_Base64(t *testing.T) {
	body := base64.StdEncoding.EncodeToString([]byte(`{"stocks": [8], "target": 20, "volume": 10}`))
	resp, err := testHandler().handle(context.Background(), events.LambdaFunctionURLRequest{
		Body:            body,
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Body, `"solutions":[]`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		req    events.LambdaFunctionURLRequest
		code   int
		errMsg string
	}{
		{"bad base64", events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true}, 400, "invalid base64"},
		{"bad json", events.LambdaFunctionURLRequest{Body: `{"stocks": [`}, 400, "invalid JSON"},
		{"no stocks", events.LambdaFunctionURLRequest{Body: `{"target": 8, "volume": 10}`}, 400, "at least one stock"},
		{"zero volume", events.LambdaFunctionURLRequest{Body: `{"stocks": [8], "target": 8, "volume": 0}`}, 400, "total volume"},
		{"overflow", events.LambdaFunctionURLRequest{Body: `{"stocks": [8], "target": 1e308, "volume": 1e308}`}, 500, "calculation failed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := testHandler().handle(context.Background(), tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Contains(t, body["error"], tc.errMsg)
		})
	}
}
