package api

import (
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName:      "everest-backend",
			ErrorHandler: errorHandler,
			// Render and similar hosts sit behind a proxy
			ProxyHeader: fiber.HeaderXForwardedFor,
		}),
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Info("Starting API Server")
	log.Infof("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}

func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler renders errors that escaped a handler, such as unknown routes,
// in the same envelope as every other response
func errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		switch e.Code {
		case fiber.StatusNotFound:
			return response.NotFound(c, "Route not found")
		case fiber.StatusMethodNotAllowed:
			return response.Error(c, e.Code, e.Message, "METHOD_NOT_ALLOWED")
		}
		if e.Code < fiber.StatusInternalServerError {
			return response.Error(c, e.Code, e.Message, "BAD_REQUEST")
		}
	}
	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return response.InternalServerError(c, "")
}
