package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/blog/internal/config"
	"github.com/bornholm/blog/internal/crypto"
	"github.com/bornholm/blog/internal/http/flash"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs, err := getSessionKeyPairs(conf.HTTP.Session.Keys)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	sessionStore.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = conf.HTTP.Session.Cookie.Path
	sessionStore.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	sessionStore.Options.Secure = conf.HTTP.Session.Cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

var getFlashStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*flash.Store, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session store from config")
	}

	return flash.NewStore(sessionStore), nil
})

// getSessionKeyPairs turns the configured keys into hash-only key pairs.
// The first key signs new cookies, the others are still accepted.
func getSessionKeyPairs(keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		key, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		return [][]byte{key, nil}, nil
	}

	keyPairs := make([][]byte, 0, len(keys)*2)
	for _, k := range keys {
		keyPairs = append(keyPairs, []byte(k), nil)
	}

	return keyPairs, nil
}
