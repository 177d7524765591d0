package gmailclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/jakechorley/save-a-life/internal/config"
	"github.com/jakechorley/save-a-life/pkg/utils"
)

// Client sends alert emails through the Gmail API on behalf of the authorised account
type Client struct {
	service      *gmail.Service
	sender       string
	lastSendTime time.Time
	sendMutex    sync.Mutex
	interval     time.Duration
	sleep        func(time.Duration)
	now          func() time.Time
}

// NewClient authorises with Google (running the browser flow if no token is cached) and
// returns a client ready to send. sender may be empty, in which case Gmail uses the account address.
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, env, sender string, logger *zap.Logger) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(ctx, oauthConfig, env, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth token: %w", err)
	}

	service, err := gmail.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return newClient(service, sender), nil
}

func newClient(service *gmail.Service, sender string) *Client {
	return &Client{
		service:  service,
		sender:   sender,
		interval: EmailInterval,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}
