package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Codewith-Raja/securevault/internal/identity/outbound/verifier"
	"github.com/Codewith-Raja/securevault/internal/pkg/clock"
	"github.com/Codewith-Raja/securevault/internal/pkg/config"
	"github.com/Codewith-Raja/securevault/internal/pkg/hash"
	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
	"github.com/Codewith-Raja/securevault/internal/pkg/jwt"
	"github.com/Codewith-Raja/securevault/internal/pkg/mail"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
	"github.com/Codewith-Raja/securevault/internal/pkg/router"
	"github.com/Codewith-Raja/securevault/internal/pkg/uid"
	"github.com/Codewith-Raja/securevault/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	mail      mail.Mail
	registry  otp.Registry
	verifier  *verifier.Client

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initRegistry()
	app.initVerifier()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
