package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common/cache"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

var logMessage = "[DIRECTORY-CLIENT]"

// Client talks to the account directory service, the system of record for
// the chart of accounts.
type Client interface {
	GetOwnerAccounts(ctx context.Context, ownerID string) ([]models.Account, error)
}

type client struct {
	baseURL    string
	secretKey  string
	httpClient *resty.Client

	cacheList cache.Client[ResponseGetOwnerAccounts]
	ttlCache  time.Duration
}

func New(
	configuration config.HTTPConfiguration,
	cacheList cache.Client[ResponseGetOwnerAccounts],
) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := models.RetryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})

	restyClient = restyClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport)).
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	return client{
		baseURL:    configuration.BaseURL,
		secretKey:  configuration.SecretKey,
		httpClient: restyClient,

		cacheList: cacheList,
		ttlCache:  10 * time.Minute,
	}
}

func (c client) GetOwnerAccounts(ctx context.Context, ownerID string) (accounts []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err := c.cacheList.GetOrSet(ctx, cache.GetOrSetOpts[ResponseGetOwnerAccounts]{
		Key: fmt.Sprintf("entry-engine:directory:owner-accounts:%s", ownerID),
		TTL: c.ttlCache,
		Callback: func() (ResponseGetOwnerAccounts, error) {
			return c.fetchOwnerAccounts(ctx, ownerID)
		},
	})
	if err != nil {
		return nil, err
	}

	accounts = make([]models.Account, 0, len(res.Contents))
	for _, content := range res.Contents {
		accounts = append(accounts, content.toModel())
	}

	return accounts, nil
}

func (c client) fetchOwnerAccounts(ctx context.Context, ownerID string) (res ResponseGetOwnerAccounts, err error) {
	url := fmt.Sprintf("%s/api/v1/owners/%s/accounts", c.baseURL, ownerID)

	logFields := []log.Field{
		log.String("url", url),
		log.String("ownerId", ownerID),
	}

	log.Info(ctx, logMessage, append(logFields, log.String("message", "send request to account directory"))...)

	httpRes, err := c.httpClient.
		R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("X-Request-Id", log.GetCorrelationID(ctx)).
		SetHeader("X-Secret-Key", c.secretKey).
		Get(url)
	if err != nil {
		return res, fmt.Errorf("failed send request: %w", err)
	}

	defer func() {
		if err != nil {
			log.Warn(ctx, logMessage, append(logFields, log.Err(err))...)
		}
	}()

	logFields = append(logFields, log.String("httpStatusCode", httpRes.Status()))

	if httpRes.StatusCode() != http.StatusOK {
		return res, fmt.Errorf("unexpected response from %s: %s", ServiceName, httpRes.Status())
	}

	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return res, fmt.Errorf("failed to decode response body: %w", err)
	}

	log.Info(ctx, logMessage, append(logFields, log.String("message", "account directory responded"))...)

	return res, nil
}
