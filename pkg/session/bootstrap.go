package session

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"devboard/pkg/client"
)

const authorizeURL = "https://github.com/login/oauth/authorize"

// Options configures a Manager.
type Options struct {
	// GitHubAPIURL is the base URL of the provider's REST API,
	// overridable for tests. Defaults to https://api.github.com.
	GitHubAPIURL string
	ClientID     string
	RedirectURI  string
	Logger       *zap.Logger
}

// Manager gates access on session state and runs the login sequence
// after the OAuth redirect lands with an authorization code.
type Manager struct {
	api    *client.Client
	store  *Store
	github *resty.Client
	opts   Options
	log    *zap.Logger
}

func NewManager(api *client.Client, store *Store, opts Options) *Manager {
	if opts.GitHubAPIURL == "" {
		opts.GitHubAPIURL = "https://api.github.com"
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		api:    api,
		store:  store,
		github: resty.New().SetBaseURL(opts.GitHubAPIURL),
		opts:   opts,
		log:    logger,
	}
}

// AuthURL builds the GitHub authorize URL the login view links to,
// with a fresh state value per call.
func (m *Manager) AuthURL() string {
	q := url.Values{}
	q.Set("client_id", m.opts.ClientID)
	q.Set("redirect_uri", m.opts.RedirectURI)
	q.Set("scope", "user")
	q.Set("state", uuid.NewString())
	return authorizeURL + "?" + q.Encode()
}

// LoggedIn reports whether a token is already stored. Any trouble
// reading the session counts as "not logged in".
func (m *Manager) LoggedIn() bool {
	sess, err := m.store.Load()
	if err != nil {
		return false
	}
	return sess.LoggedIn()
}

// Login completes the authorization-code flow: exchange the code for a
// token, fetch the user profile with it, then persist both in one
// write. On any failure nothing is persisted.
func (m *Manager) Login(ctx context.Context, code string) (*Session, error) {
	token, err := m.api.ExchangeCode(ctx, code)
	if err != nil {
		m.log.Error("login failed during code exchange", zap.Error(err))
		return nil, err
	}

	profile, err := m.fetchProfile(ctx, token)
	if err != nil {
		m.log.Error("login failed fetching user profile", zap.Error(err))
		return nil, err
	}

	sess := &Session{Token: token, Profile: profile}
	if err := m.store.Save(sess); err != nil {
		m.log.Error("login failed saving session", zap.Error(err))
		return nil, err
	}
	return sess, nil
}

// Logout clears the stored token and profile together.
func (m *Manager) Logout() error {
	return m.store.Clear()
}

func (m *Manager) fetchProfile(ctx context.Context, token string) (*Profile, error) {
	var profile Profile
	resp, err := m.github.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&profile).
		Get("/user")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch GitHub user: %s", resp.Status())
	}
	return &profile, nil
}
