package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/realtime"
	"github.com/taskboard-dev/taskboard/internal/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	accounts *services.AccountService
	projects *services.ProjectService
	tasks    *services.TaskService
	hub      *realtime.Hub
	store    Pinger
	log      zerolog.Logger
}

type Deps struct {
	Accounts *services.AccountService
	Projects *services.ProjectService
	Tasks    *services.TaskService
	Hub      *realtime.Hub
	Store    Pinger
	Logger   zerolog.Logger
}

func New(deps Deps) *Handler {
	return &Handler{
		accounts: deps.Accounts,
		projects: deps.Projects,
		tasks:    deps.Tasks,
		hub:      deps.Hub,
		store:    deps.Store,
		log:      deps.Logger,
	}
}

func init() {
	// Report JSON field names in binding errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON decodes the body into obj. Every failure is an ErrValidation.
func bindJSON(ctx *gin.Context, obj any) error {
	err := ctx.ShouldBindJSON(obj)

	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fe := validationErrs[0]
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: %s is required", errs.ErrValidation, fe.Field())
		}
		return fmt.Errorf("%w: %s is invalid", errs.ErrValidation, fe.Field())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %s has the wrong type", errs.ErrValidation, typeErr.Field)
	}

	return fmt.Errorf("%w: invalid request body", errs.ErrValidation)
}

// respondError writes the status mapped to err. Errors without a mapping get
// status and message instead; store failures append their cause to message.
func respondError(ctx *gin.Context, err error, status int, message string) {
	_ = ctx.Error(err)

	if mapped := errs.StatusFor(err, 0); mapped != 0 {
		ctx.AbortWithStatusJSON(mapped, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, errs.ErrStore) {
		message = message + ": " + err.Error()
	}

	ctx.AbortWithStatusJSON(status, gin.H{"error": message})
}
