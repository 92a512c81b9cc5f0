package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/claroapp/claro-api/internal/pkg/clock"
	"github.com/claroapp/claro-api/internal/pkg/config"
	"github.com/claroapp/claro-api/internal/pkg/hash"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
	"github.com/claroapp/claro-api/internal/pkg/jwt"
	"github.com/claroapp/claro-api/internal/pkg/router"
	"github.com/claroapp/claro-api/internal/pkg/uid"
	"github.com/claroapp/claro-api/internal/pkg/validator"
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
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	jwt       jwt.Codec

	// resources
	dbConn *pgxpool.Pool

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
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
