package xhttp

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/nimasrn/money-management/pkg/logger"
	"github.com/valyala/fasthttp"
)

// env list:
// HTTP_SERVER_READ_TIMEOUT     milliseconds
// HTTP_SERVER_WRITE_TIMEOUT    milliseconds
// HTTP_SERVER_IDLE_TIMEOUT     milliseconds
// HTTP_SERVER_READ_BUFFER_BYTE
// HTTP_SERVER_WRITE_BUFFER_BYTE

var (
	defaultReadBufferSize  = 1024 * 16
	defaultWriteBufferSize = 1024 * 16
	defaultReadTimeout     = time.Millisecond * 5000
	defaultWriteTimeout    = time.Millisecond * 10000
	defaultIdleTimeout     = time.Millisecond * 10000
)

func init() {
	if v, ok := envInt("HTTP_SERVER_READ_TIMEOUT"); ok {
		defaultReadTimeout = time.Millisecond * time.Duration(v)
	}
	if v, ok := envInt("HTTP_SERVER_WRITE_TIMEOUT"); ok {
		defaultWriteTimeout = time.Millisecond * time.Duration(v)
	}
	if v, ok := envInt("HTTP_SERVER_IDLE_TIMEOUT"); ok {
		defaultIdleTimeout = time.Millisecond * time.Duration(v)
	}
	if v, ok := envInt("HTTP_SERVER_READ_BUFFER_BYTE"); ok && v > 1024 {
		defaultReadBufferSize = v
	}
	if v, ok := envInt("HTTP_SERVER_WRITE_BUFFER_BYTE"); ok && v > 1024 {
		defaultWriteBufferSize = v
	}
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" || raw == "0" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	fmt.Println("xhttp pkg: setting value from env: " + name)
	return v, true
}

type Server = fasthttp.Server

// ServerOption holds the fasthttp settings this service tunes. Everything
// else keeps the fasthttp default.
type ServerOption struct {
	Name string

	// idle connections held open too long end in "too many open files"
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ReadBufferSize also caps the request header size.
	ReadBufferSize  int
	WriteBufferSize int

	// request bodies are small JSON forms
	MaxRequestBodySize int
	Concurrency        int
	MaxConnsPerIP      int

	Logger logger.Logger
}

var DefaultServerOption = ServerOption{
	Name:               "money-management",
	IdleTimeout:        defaultIdleTimeout,
	ReadTimeout:        defaultReadTimeout,
	WriteTimeout:       defaultWriteTimeout,
	ReadBufferSize:     defaultReadBufferSize,
	WriteBufferSize:    defaultWriteBufferSize,
	MaxRequestBodySize: 1 * 1024 * 1024,
	Concurrency:        10_000,
	MaxConnsPerIP:      1_000,
}

type Engine struct {
	*Router
	*Server
	middle []MiddlewareFunc
}

func newServer(options ServerOption) *fasthttp.Server {
	log := options.Logger
	if log == nil {
		log = logger.GetLogger()
	}
	return &fasthttp.Server{
		Name:                         options.Name,
		Concurrency:                  options.Concurrency,
		ReadBufferSize:               options.ReadBufferSize,
		WriteBufferSize:              options.WriteBufferSize,
		ReadTimeout:                  options.ReadTimeout,
		WriteTimeout:                 options.WriteTimeout,
		IdleTimeout:                  options.IdleTimeout,
		MaxConnsPerIP:                options.MaxConnsPerIP,
		MaxRequestBodySize:           options.MaxRequestBodySize,
		TCPKeepalive:                 true,
		DisablePreParseMultipartForm: true,
		NoDefaultServerHeader:        true,
		NoDefaultDate:                true,
		CloseOnShutdown:              true,
		ErrorHandler: func(ctx *RequestCtx, err error) {
			logger.Warn("[xhttp] connection error", "ip", ctx.RemoteIP().String(), "error", err)
		},
		Logger: log,
	}
}

func NewServer(options ServerOption) *Engine {
	return &Engine{
		Server: newServer(options),
		Router: NewRouter(),
	}
}

// CreateServer returns an engine with DefaultServerOption and the default
// router.
func CreateServer() *Engine {
	s := NewServer(DefaultServerOption)
	s.Router = CreateDefaultRouter()
	return s
}

func (e *Engine) ListenAndServe(addr string) error {
	e.Server.Handler = e.Handler()
	e.Server.Logger.Printf("[xhttp] server is listening on %s", addr)
	return e.Server.ListenAndServe(addr)
}

// Handler returns the router wrapped in the registered middleware.
func (e *Engine) Handler() RequestHandler {
	for method, route := range e.Router.List() {
		for _, r := range route {
			e.Server.Logger.Printf("[xhttp] method: %s, path: %s", method, r)
		}
	}
	h := e.Router.Handler
	// wrap from the innermost, the first registered runs first
	for i, m := range slices.Backward(e.middle) {
		h = m(h)
		e.Server.Logger.Printf("[xhttp] middleware %d registered - %s", i+1, runtime.FuncForPC(reflect.ValueOf(m).Pointer()).Name())
	}
	return h
}

// Use adds middleware to the chain which is run for every request. The
// first middleware added is the outermost one.
func (e *Engine) Use(middleware MiddlewareFunc) {
	e.middle = append(e.middle, middleware)
}

// Shutdown waits for active connections to finish before returning.
func (e *Engine) Shutdown() {
	e.Server.Logger.Printf("[xhttp] server is shutting down, process id: %d", os.Getpid())
	if err := e.Server.Shutdown(); err != nil {
		e.Server.Logger.Printf("[xhttp] error while shutting down: %v", err)
	}
}
