package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"rag-assistant/pkg/response"
)

const apiTimeout = 2 * time.Minute

func newAPIClient(cmd *cobra.Command) (*resty.Client, error) {
	baseURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, err
	}
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			if r == nil {
				return false
			}
			code := r.StatusCode()
			return code == 502 || code == 503 || code == 504
		}), nil
}

type promptRouting struct {
	Operation        string            `json:"operation"`
	PrimarySource    string            `json:"primary_source"`
	SecondarySources []string          `json:"secondary_sources"`
	Arguments        map[string]string `json:"arguments"`
	Confidence       float64           `json:"confidence"`
}

type promptSource struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	Metadata   map[string]any `json:"metadata"`
	Score      float64        `json:"score"`
}

type promptResult struct {
	Answer  string         `json:"answer"`
	Routing promptRouting  `json:"routing"`
	Sources []promptSource `json:"sources"`
}

// apiError turns a non-2xx response into an error carrying the server's message.
func apiError(res *resty.Response) error {
	switch e := res.Error().(type) {
	case *response.DetailResp:
		if e.Detail != "" {
			return fmt.Errorf("%s: %s", res.Status(), e.Detail)
		}
	case *response.Resp:
		if e.Message != "" {
			return fmt.Errorf("%s: %s", res.Status(), e.Message)
		}
	}
	return fmt.Errorf("unexpected response: %s", res.Status())
}
