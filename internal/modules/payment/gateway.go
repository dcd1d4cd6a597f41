package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// Gateway abstracts the payment provider. The core only depends on
// "initiate" and "did this reference succeed".
type Gateway interface {
	Initialize(ctx context.Context, email, reference, currency string, amount float64) (authorizationURL string, err error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

type VerifyResult struct {
	Success bool
	Amount  float64
}

// RestGateway talks to a Paystack-style REST API. Outbound calls run through
// a circuit breaker so a flapping provider fails fast instead of tying up
// request handlers.
type RestGateway struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	log     *logrus.Logger
}

func NewRestGateway(baseURL, secretKey string, log *logrus.Logger) *RestGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Authorization", "Bearer "+secretKey).
		SetHeader("Content-Type", "application/json")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{"breaker": name, "from": from.String(), "to": to.String()}).
				Warn("circuit breaker state change")
		},
	})

	return &RestGateway{client: client, breaker: breaker, log: log}
}

type initializeResponse struct {
	Status bool `json:"status"`
	Data   struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	} `json:"data"`
	Message string `json:"message"`
}

type verifyResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Status string `json:"status"`
		Amount int64  `json:"amount"`
	} `json:"data"`
	Message string `json:"message"`
}

func (g *RestGateway) Initialize(ctx context.Context, email, reference, currency string, amount float64) (string, error) {
	out, err := g.breaker.Execute(func() (any, error) {
		var body initializeResponse
		resp, err := g.client.R().
			SetContext(ctx).
			SetBody(map[string]any{
				"email":     email,
				"amount":    toMinorUnits(amount),
				"reference": reference,
				"currency":  currency,
			}).
			SetResult(&body).
			Post("/transaction/initialize")
		if err != nil {
			return "", err
		}
		if resp.IsError() || !body.Status {
			return "", fmt.Errorf("%w: initialize status %d: %s", ErrGateway, resp.StatusCode(), body.Message)
		}
		return body.Data.AuthorizationURL, nil
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (g *RestGateway) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	out, err := g.breaker.Execute(func() (any, error) {
		var body verifyResponse
		resp, err := g.client.R().
			SetContext(ctx).
			SetResult(&body).
			Get("/transaction/verify/" + reference)
		if err != nil {
			return nil, err
		}
		if resp.IsError() || !body.Status {
			return nil, fmt.Errorf("%w: verify status %d: %s", ErrGateway, resp.StatusCode(), body.Message)
		}
		return &VerifyResult{
			Success: body.Data.Status == "success",
			Amount:  fromMinorUnits(body.Data.Amount),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return out.(*VerifyResult), nil
}

// The gateway wire format carries amounts in minor units (kobo).
func toMinorUnits(amount float64) int64 { return int64(math.Round(amount * 100)) }

func fromMinorUnits(v int64) float64 { return float64(v) / 100 }
