package author

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/response"
	"library-catalog/pkg/logger"
)

var (
	ErrAuthorNotFound    = errors.New("author not found")
	ErrInvalidAuthorID   = errors.New("invalid author id")
	ErrAuthorHasBooks    = errors.New("author has books and cannot be deleted")
	ErrBirthDateInFuture = errors.New("birth date cannot be in the future")
	ErrDeathBeforeBirth  = errors.New("death date must be after birth date")
)

var authorErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrAuthorNotFound: {
		Status:  http.StatusNotFound,
		Code:    "AUTHOR_NOT_FOUND",
		Message: "The specified author does not exist",
	},
	ErrInvalidAuthorID: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_AUTHOR_ID",
		Message: "The author id is not a valid identifier",
	},
	ErrAuthorHasBooks: {
		Status:  http.StatusBadRequest,
		Code:    "AUTHOR_HAS_BOOKS",
		Message: "The author still has books in the catalog and cannot be deleted",
	},
	ErrBirthDateInFuture: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_BIRTH_DATE",
		Message: "Birth date cannot be in the future",
	},
	ErrDeathBeforeBirth: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_DEATH_DATE",
		Message: "Death date must be after birth date",
	},
}

// HandleAuthorError translates service errors into HTTP responses.
// Returns true when err was non-nil and a response has been written.
func HandleAuthorError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input data", verrs)
		return true
	}

	for sentinel, cfg := range authorErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled author error", err)
	response.InternalServerError(c, "An unexpected error occurred")
	return true
}
