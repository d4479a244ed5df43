package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/majdya/classroom-backend/assignment"
	asghttp "github.com/majdya/classroom-backend/assignment/http"
	ctxlog "github.com/majdya/classroom-backend/logger"
	"github.com/majdya/classroom-backend/submission"
	submhttp "github.com/majdya/classroom-backend/submission/http"
	"github.com/majdya/classroom-backend/user"
	userhttp "github.com/majdya/classroom-backend/user/http"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	userSrvc *user.UserSrvc,
	asgSrvc *assignment.AssignmentSrvc,
	submSrvc *submission.SubmissionSrvc,
	jwtKey []byte,
	corsOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("classroom", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger))
	router.Use(contextLogger(logger.Logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	userhttp.NewUserHttpHandler(userSrvc, jwtKey).RegisterRoutes(router)
	asghttp.NewAssignmentHttpHandler(asgSrvc, jwtKey).RegisterRoutes(router)
	submhttp.NewSubmissionHttpHandler(submSrvc, jwtKey).RegisterRoutes(router)

	return &HttpServer{router: router}
}

// contextLogger puts a request-scoped logger into the context so
// handlers log with the request id attached.
func contextLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxlog.WithLogger(r.Context(), logger)
			ctx = ctxlog.WithRequestID(ctx, middleware.GetReqID(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

func (s *HttpServer) Router() *chi.Mux {
	return s.router
}
